package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

const banner = "contree - content tree addressing and querying"

var rootCmd = &cobra.Command{
	Use:   "contree",
	Short: "Resolve paths and query pages of a flat-file content tree",
	Long: banner + `

contree maps a content directory (or a YAML manifest) into a tree of pages,
resolves logical paths, globs and delimited regexes to files, and filters,
sorts and paginates pages.

Path syntax:
  images/logo.png      relative to --parent
  /images/logo.png     absolute, from the content root
  ../cover.jpg         parent references may not escape the root
  images/*.{png,jpg}   globs: * ? {a,b}
  #^blog/.+\.png$#i    delimited regexes: /../ #..# ~..~ (..) {..} [..] <..>

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Path escapes its boundary
  21 - Ambiguous path (strict resolution matched several files)
  22 - Invalid query criterion
  23 - Content tree could not be loaded`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for contree")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("log-format", logFormatConsole, "Log format: console|json")
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", completeLogFormats)
}

// getVerboseFlag retrieves the verbose flag from the command or its parents
func getVerboseFlag(cmd *cobra.Command) bool {
	flag := cmd.Flag("verbose")
	if flag == nil {
		return false
	}
	verbose, err := strconv.ParseBool(flag.Value.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// commandContext returns the command context, or Background when the
// command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
