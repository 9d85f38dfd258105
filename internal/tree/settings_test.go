package tree

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSettings_DecodeKeepsDefaults(t *testing.T) {
	s := DefaultSettings()
	doc := `
title: Hello
date: 2024-03-01
taxonomy:
  tag: [go, yaml]
extra:
  author:
    name: Ada
layout: wide
`
	require.NoError(t, yaml.Unmarshal([]byte(doc), &s))

	assert.Equal(t, "Hello", s.Title)
	assert.True(t, s.Visible)
	assert.True(t, s.Published)
	require.NotNil(t, s.Date)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *s.Date)
	assert.Equal(t, []string{"go", "yaml"}, s.Taxonomy["tag"])
	assert.Equal(t, "wide", s.Custom["layout"])
}

func TestSettings_Lookup(t *testing.T) {
	s := DefaultSettings()
	s.Title = "Hello"
	s.Taxonomy = map[string][]string{"tag": {"go"}}
	s.Extra = map[string]any{"author": map[string]any{"name": "Ada"}}
	s.Custom = map[string]any{"layout": "wide"}

	tests := []struct {
		key      string
		expected any
		found    bool
	}{
		{"title", "Hello", true},
		{"visible", true, true},
		{"date", nil, false},
		{"taxonomy.tag", []string{"go"}, true},
		{"taxonomy.category", []string(nil), false},
		{"extra.author.name", "Ada", true},
		{"extra.author.age", nil, false},
		{"layout", "wide", true},
		{"layout.width", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, ok := s.Lookup(tt.key)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestSettings_HasTaxonomy(t *testing.T) {
	s := Settings{Taxonomy: map[string][]string{"tag": {"a", "b"}}}
	assert.True(t, s.HasTaxonomy("tag", "a"))
	assert.False(t, s.HasTaxonomy("tag", "c"))
	assert.False(t, s.HasTaxonomy("category", "a"))
}
