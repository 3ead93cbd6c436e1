package view

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/lysyi3m/folio/app/render"
)

const (
	DefaultListTarget     = "projectsRoot"
	DefaultFeaturedTarget = "featuredRoot"
	DefaultFeaturedLimit  = 6
	DefaultLocale         = "en"
)

type Options struct {
	List        ListOptions     `yaml:"list"`
	Featured    FeaturedOptions `yaml:"featured"`
	Placeholder string          `yaml:"placeholder"`
	Locale      string          `yaml:"locale"`
}

type ListOptions struct {
	Target string `yaml:"target"`
}

type FeaturedOptions struct {
	Target string `yaml:"target"`
	Limit  int    `yaml:"limit"`
}

func DefaultOptions() *Options {
	opts := &Options{}
	opts.setDefaults()
	return opts
}

// LoadOptions reads mount options from a YAML file. A missing file yields
// the defaults.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("Mount options file not found, using defaults", "path", path)
		return DefaultOptions(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("invalid mount options %s: %w", path, err)
	}

	opts.setDefaults()

	return &opts, nil
}

// Language returns the collation locale, falling back to English when the
// configured value is not a valid BCP 47 tag.
func (o *Options) Language() language.Tag {
	tag, err := language.Parse(o.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

func (o *Options) setDefaults() {
	if o.List.Target == "" {
		o.List.Target = DefaultListTarget
	}
	if o.Featured.Target == "" {
		o.Featured.Target = DefaultFeaturedTarget
	}
	if o.Featured.Limit == 0 {
		o.Featured.Limit = DefaultFeaturedLimit
	}
	if o.Placeholder == "" {
		o.Placeholder = render.DefaultPlaceholder
	}
	if o.Locale == "" {
		o.Locale = DefaultLocale
	}
}

func (o *Options) validate() error {
	if o.Featured.Limit < 0 {
		return fmt.Errorf("featured limit must be non-negative")
	}
	if o.Locale != "" {
		if _, err := language.Parse(o.Locale); err != nil {
			return fmt.Errorf("invalid locale %q: %w", o.Locale, err)
		}
	}
	return nil
}
