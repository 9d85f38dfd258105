package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/contree/internal/paths"
)

var findCmd = &cobra.Command{
	Use:   "find <pattern>",
	Short: "List every file matching a path, glob or regex",
	Long: `List every file of the content root matching a pattern.

A trailing "/" lists the files directly inside a directory. Globs match
one segment per "*" and support {a,b} alternatives. Delimited regexes
match anywhere below --parent.`,
	Example: `  contree find 'images/*.png'
  contree find images/
  contree find '#\.pdf$#i' --parent blog --format json`,
	Args: RequirePathArg,
	RunE: runFind,
}

var (
	findSite   siteFlags
	findParent string
	findFormat string
)

func init() {
	rootCmd.AddCommand(findCmd)
	addSiteFlags(findCmd, &findSite)
	findCmd.Flags().StringVarP(&findParent, "parent", "p", "", "Directory the pattern is relative to")
	findCmd.Flags().StringVarP(&findFormat, "format", "f", formatText, "Output format: text|json")
	_ = findCmd.RegisterFlagCompletionFunc("format", completeOutputFormats)
}

func runFind(cmd *cobra.Command, args []string) error {
	if err := validateFormat(findFormat); err != nil {
		return err
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	cfg, err := resolveSiteConfig(findSite)
	if err != nil {
		return err
	}
	s, err := openSite(commandContext(cmd), cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	files, err := s.resolver.Find(paths.Parse(args[0]), parentPath(findParent))
	if err != nil {
		return err
	}

	if findFormat == formatJSON {
		return writeJSON(cmd.OutOrStdout(), files)
	}
	newRenderer(cmd.OutOrStdout()).Files(files)
	return nil
}
