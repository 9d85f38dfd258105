package tree

import (
	"strings"
	"time"
)

// Settings is the per-page settings bag.
// Keys not listed here are kept in Custom.
type Settings struct {
	Title       string              `yaml:"title" json:"title,omitempty"`
	Slug        string              `yaml:"slug" json:"slug,omitempty"`
	Type        string              `yaml:"type" json:"type,omitempty"`
	Visible     bool                `yaml:"visible" json:"visible"`
	Published   bool                `yaml:"published" json:"published"`
	Module      bool                `yaml:"module" json:"module"`
	Modular     bool                `yaml:"modular" json:"modular"`
	Date        *time.Time          `yaml:"date" json:"date,omitempty"`
	PublishDate *time.Time          `yaml:"publish_date" json:"publish_date,omitempty"`
	Taxonomy    map[string][]string `yaml:"taxonomy" json:"taxonomy,omitempty"`
	Extra       map[string]any      `yaml:"extra" json:"extra,omitempty"`
	Custom      map[string]any      `yaml:",inline" json:"custom,omitempty"`
}

// DefaultSettings returns the settings of a page with no settings document:
// visible and published.
func DefaultSettings() Settings {
	return Settings{Visible: true, Published: true}
}

// HasTaxonomy reports whether value is listed under the taxonomy name.
func (s Settings) HasTaxonomy(name, value string) bool {
	for _, v := range s.Taxonomy[name] {
		if v == value {
			return true
		}
	}
	return false
}

// Lookup returns the setting stored under a dotted key such as "title",
// "taxonomy.tag", "extra.author.name" or a custom key.
func (s Settings) Lookup(key string) (any, bool) {
	head, rest, nested := strings.Cut(key, ".")

	if !nested {
		switch head {
		case "title":
			return s.Title, true
		case "slug":
			return s.Slug, true
		case "type":
			return s.Type, true
		case "visible":
			return s.Visible, true
		case "published":
			return s.Published, true
		case "module":
			return s.Module, true
		case "modular":
			return s.Modular, true
		case "date":
			return optionalTime(s.Date)
		case "publish_date":
			return optionalTime(s.PublishDate)
		case "taxonomy":
			return s.Taxonomy, s.Taxonomy != nil
		case "extra":
			return s.Extra, s.Extra != nil
		}
	}

	switch head {
	case "taxonomy":
		values, ok := s.Taxonomy[rest]
		return values, ok
	case "extra":
		return lookupMap(s.Extra, rest)
	}
	return lookupMap(s.Custom, key)
}

func optionalTime(t *time.Time) (any, bool) {
	if t == nil {
		return nil, false
	}
	return *t, true
}

// lookupMap walks nested maps along a dotted key.
func lookupMap(m map[string]any, key string) (any, bool) {
	var current any = m
	for _, part := range strings.Split(key, ".") {
		next, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = next[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
