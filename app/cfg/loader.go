package cfg

import (
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Site configuration
	SiteDir     string `long:"site-dir" env:"SITE_DIR" default:"./site" description:"Directory containing the static site and projects.json"`
	MountsFile  string `long:"mounts-file" env:"MOUNTS_FILE" default:"./mounts.yml" description:"YAML file with list/featured mount options"`
	WatchMounts bool   `long:"watch-mounts" env:"WATCH_MOUNTS" description:"Reload the mount options file when it changes"`
	DataOrigin  string `long:"data-origin" env:"DATA_ORIGIN" description:"Origin pages fetch projects.json from (defaults to this server)"`
	BaseUrl     string `long:"base-url" env:"BASE_URL" description:"Public base URL for the site (e.g., https://portfolio.example.com)"`

	// Server configuration
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	FetchTimeout int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"30" description:"Timeout in seconds for fetching projects.json"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Folio/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

func Load() (*Cfg, error) {
	return LoadArgs(nil)
}

// LoadArgs parses the given arguments instead of os.Args when args is not nil.
func LoadArgs(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	var err error
	if args == nil {
		_, err = parser.Parse()
	} else {
		_, err = parser.ParseArgs(args)
	}
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if raw.FetchTimeout < 0 {
		return nil, fmt.Errorf("fetch timeout must be non-negative")
	}

	cfg := &Cfg{
		SiteDir:      raw.SiteDir,
		MountsFile:   raw.MountsFile,
		WatchMounts:  raw.WatchMounts,
		DataOrigin:   strings.TrimSuffix(cmp.Or(raw.DataOrigin, "http://localhost:"+raw.Port), "/"),
		BaseUrl:      strings.TrimSuffix(raw.BaseUrl, "/"),
		Port:         raw.Port,
		FetchTimeout: raw.FetchTimeout,
		UserAgent:    raw.UserAgent,
		Timezone:     raw.Timezone,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	return cfg, nil
}

// PublicURL is the base URL links in generated documents point to.
func (c *Cfg) PublicURL() string {
	if c.BaseUrl != "" {
		return c.BaseUrl
	}
	return "http://localhost:" + c.Port
}

func (c *Cfg) GetFetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeout) * time.Second
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
