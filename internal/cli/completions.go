package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/contree/internal/config"
	"github.com/vvka-141/contree/internal/query"
)

// Values of the --log-format flag.
const (
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

// Values of the --format flags.
const (
	formatText = "text"
	formatJSON = "json"
)

var (
	logFormats   = []string{logFormatConsole, logFormatJSON}
	outputFormat = []string{formatText, formatJSON}
	cacheDrivers = []string{config.DriverNone, config.DriverMemory, config.DriverPostgres}
	flagValues   = []string{"true", "false", "any"}
	modeValues   = []string{"and", "or"}
)

// completeFrom returns the candidates that start with toComplete.
func completeFrom(candidates []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, toComplete) {
			matches = append(matches, c)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeLogFormats provides shell completion for the --log-format flag.
func completeLogFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFrom(logFormats, toComplete)
}

func completeOutputFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFrom(outputFormat, toComplete)
}

func completeCacheDrivers(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFrom(cacheDrivers, toComplete)
}

func completeFlagValues(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFrom(flagValues, toComplete)
}

func completeModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFrom(modeValues, toComplete)
}

// completeSortNames provides shell completion for built-in sorts.
// extra.<key> sorts are not listed.
func completeSortNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFrom(query.SortNames, toComplete)
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}
