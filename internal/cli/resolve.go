package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/contree/internal/paths"
	"github.com/vvka-141/contree/internal/resolver"
	"github.com/vvka-141/contree/pkg/contree"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <path>",
	Short: "Resolve a path to a single file",
	Long: `Resolve a logical path to one file of the content tree.

Plain paths are looked up directly. Globs and regexes fall back to a search;
with several matches the first one wins unless --strict is given, in which
case the command fails with exit code 21.

Nothing is printed to stdout when no file matches; the command still
succeeds so scripts can test for empty output.`,
	Example: `  contree resolve images/logo.png
  contree resolve cover.jpg --parent blog/first
  contree resolve '#^images/.+\.png$#' --strict --format json`,
	Args: RequirePathArg,
	RunE: runResolve,
}

var (
	resolveSite   siteFlags
	resolveParent string
	resolveStrict bool
	resolveFormat string
)

func init() {
	rootCmd.AddCommand(resolveCmd)
	addSiteFlags(resolveCmd, &resolveSite)
	resolveCmd.Flags().StringVarP(&resolveParent, "parent", "p", "", "Directory the path is relative to")
	resolveCmd.Flags().BoolVar(&resolveStrict, "strict", false, "Fail when the path matches more than one file")
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "f", formatText, "Output format: text|json")
	_ = resolveCmd.RegisterFlagCompletionFunc("format", completeOutputFormats)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if err := validateFormat(resolveFormat); err != nil {
		return err
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	cfg, err := resolveSiteConfig(resolveSite)
	if err != nil {
		return err
	}
	s, err := openSite(commandContext(cmd), cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	file, err := resolver.FindOne(s.resolver, paths.Parse(args[0]), parentPath(resolveParent), resolveStrict)
	if err != nil {
		return err
	}
	return writeResolved(cmd, args[0], file, resolveFormat)
}

func writeResolved(cmd *cobra.Command, pattern string, file *contree.File, format string) error {
	out := cmd.OutOrStdout()
	if format == formatJSON {
		return writeJSON(out, file)
	}
	if file == nil {
		newRenderer(cmd.ErrOrStderr()).NotFound(pattern)
		return nil
	}
	newRenderer(out).File(*file)
	return nil
}

// parentPath parses a --parent value as a directory.
func parentPath(s string) paths.Path {
	if s == "" {
		return paths.Path{}
	}
	p := paths.Parse(s)
	p.SetDirectory(true)
	return p
}
