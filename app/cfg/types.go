package cfg

type Cfg struct {
	// Site configuration
	SiteDir     string
	MountsFile  string
	WatchMounts bool
	DataOrigin  string
	BaseUrl     string

	// Server configuration
	Port         string
	FetchTimeout int

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
