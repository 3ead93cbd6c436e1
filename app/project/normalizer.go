package project

import (
	"cmp"
	"strconv"
	"strings"
)

// Normalize converts one raw record into a Project. It never fails: missing,
// null or wrong-typed fields fall back to their defaults. Callers drop
// records that end up without a title or slug.
func Normalize(raw RawRecord) Project {
	fields, _ := raw.(map[string]any)

	return Project{
		Title:       stringField(fields, "title"),
		Slug:        stringField(fields, "slug"),
		Description: stringField(fields, "description"),
		Thumbnail:   stringField(fields, "thumbnail"),
		Tags:        tagsField(fields, "tags"),
		Category:    cmp.Or(stringField(fields, "category"), DefaultCategory),
		Featured:    truthy(fields["featured"]),
		Date:        dateField(fields, "date"),
		Link:        stringField(fields, "link"),
	}
}

func stringField(fields map[string]any, key string) string {
	s, ok := fields[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func dateField(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return formatNumber(v)
	default:
		return ""
	}
}

func tagsField(fields map[string]any, key string) []string {
	values, ok := fields[key].([]any)
	if !ok {
		return []string{}
	}

	tags := make([]string, 0, len(values))
	for _, value := range values {
		var tag string
		switch v := value.(type) {
		case string:
			tag = strings.TrimSpace(v)
		case float64:
			tag = formatNumber(v)
		case bool:
			tag = strconv.FormatBool(v)
		}
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	default:
		return true
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
