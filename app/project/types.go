package project

const (
	DefaultCategory = "Other"
	// AllOption disables the category or tag criterion of a Filter.
	AllOption = "All"
)

// RawRecord is one untrusted element of the projects document as decoded by
// encoding/json. Nothing about its shape is assumed.
type RawRecord = any

type Project struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	Featured    bool     `json:"featured"`
	Date        string   `json:"date"`
	Link        string   `json:"link"`
}

// Raw converts a project back into the loosely typed shape it is loaded from.
func (p Project) Raw() map[string]any {
	tags := make([]any, 0, len(p.Tags))
	for _, tag := range p.Tags {
		tags = append(tags, tag)
	}

	return map[string]any{
		"title":       p.Title,
		"slug":        p.Slug,
		"description": p.Description,
		"thumbnail":   p.Thumbnail,
		"tags":        tags,
		"category":    p.Category,
		"featured":    p.Featured,
		"date":        p.Date,
		"link":        p.Link,
	}
}

func (p Project) IsValid() bool {
	return p.Title != "" && p.Slug != ""
}

func (p Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
