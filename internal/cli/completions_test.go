package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestCompletions(t *testing.T) {
	tests := []struct {
		name       string
		fn         func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective)
		toComplete string
		want       []string
	}{
		{"log formats", completeLogFormats, "", []string{"console", "json"}},
		{"log formats prefix", completeLogFormats, "j", []string{"json"}},
		{"output formats", completeOutputFormats, "t", []string{"text"}},
		{"cache drivers", completeCacheDrivers, "", []string{"none", "memory", "postgres"}},
		{"cache drivers prefix", completeCacheDrivers, "p", []string{"postgres"}},
		{"flag values", completeFlagValues, "", []string{"true", "false", "any"}},
		{"modes", completeModes, "a", []string{"and"}},
		{"sort names prefix", completeSortNames, "publish", []string{"publish_date"}},
		{"no match", completeModes, "x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, directive := tt.fn(nil, nil, tt.toComplete)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
		})
	}
}

func TestCompleteDirectories(t *testing.T) {
	got, directive := completeDirectories(nil, nil, "")
	assert.Nil(t, got)
	assert.Equal(t, cobra.ShellCompDirectiveFilterDirs, directive)
}
