package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/contree/internal/query"
	"github.com/vvka-141/contree/internal/tree"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Filter, sort and paginate pages of the content tree",
	Long: `Query pages of the content tree.

Pages are traversed from --from (the root by default) in pre-order. Every
criterion must hold for a page to be kept; repeated pattern flags are
alternatives. Comparator expressions take an operator and an operand:

  --depth '<=1'          --files '>0'
  --date 'since 2024-01-01'
  --date '>= -7d'        (relative to now: d days, w weeks)

Sorting and pagination apply after filtering.`,
	Example: `  contree query --name 'blog*' --depth '>=1'
  contree query --taxonomy tag=news,go --mode and --sort date
  contree query --published false --count
  contree query --setting type=modular --format json`,
	Args: cobra.NoArgs,
	RunE: runQuery,
}

var (
	querySite siteFlags

	queryFrom          []string
	queryNames         []string
	queryNotNames      []string
	querySlugs         []string
	queryTitles        []string
	queryTypes         []string
	queryPaths         []string
	queryNotPaths      []string
	queryContains      []string
	queryDepths        []string
	queryDates         []string
	queryFiles         string
	queryTaxonomies    []string
	queryNotTaxonomies []string
	queryMode          string
	querySettings      []string
	queryExtras        []string
	queryPublished     string
	queryVisible       string
	queryModular       string
	querySort          string
	queryLimit         int
	queryOffset        int
	queryCount         bool
	queryFormat        string
)

func init() {
	rootCmd.AddCommand(queryCmd)
	addSiteFlags(queryCmd, &querySite)

	f := queryCmd.Flags()
	f.StringSliceVar(&queryFrom, "from", nil, "Page paths to start traversal from (default /)")
	f.StringArrayVar(&queryNames, "name", nil, "Page name glob or regex (repeatable)")
	f.StringArrayVar(&queryNotNames, "not-name", nil, "Exclude pages whose name matches (repeatable)")
	f.StringArrayVar(&querySlugs, "slug", nil, "Page slug glob or regex (repeatable)")
	f.StringArrayVar(&queryTitles, "title", nil, "Page title glob or regex (repeatable)")
	f.StringArrayVar(&queryTypes, "type", nil, "Content type glob or regex (repeatable)")
	f.StringArrayVar(&queryPaths, "path", nil, "Full page path glob or regex (repeatable)")
	f.StringArrayVar(&queryNotPaths, "not-path", nil, "Exclude pages whose path matches (repeatable)")
	f.StringArrayVar(&queryContains, "contains", nil, "Raw content substring or regex (repeatable)")
	f.StringArrayVar(&queryDepths, "depth", nil, "Depth comparator, e.g. '<=2' (repeatable)")
	f.StringArrayVar(&queryDates, "date", nil, "Modification date comparator, e.g. 'since 2024-01-01' (repeatable)")
	f.StringVar(&queryFiles, "files", "", "Attached file count comparator, e.g. '>0'")
	f.StringArrayVar(&queryTaxonomies, "taxonomy", nil, "Taxonomy filter name=value1,value2 (repeatable)")
	f.StringArrayVar(&queryNotTaxonomies, "not-taxonomy", nil, "Exclude pages matching name=value1,value2 (repeatable)")
	f.StringVar(&queryMode, "mode", "or", "Taxonomy value mode: and|or")
	f.StringArrayVar(&querySettings, "setting", nil, "Setting equality key=value, dotted keys allowed (repeatable)")
	f.StringArrayVar(&queryExtras, "extra", nil, "Extra field comparator key:kind:expr, e.g. rating:number:>=3 (repeatable)")
	f.StringVar(&queryPublished, "published", "any", "Published flag: true|false|any")
	f.StringVar(&queryVisible, "visible", "any", "Visible flag: true|false|any")
	f.StringVar(&queryModular, "modular", "any", "Modular flag: true|false|any")
	f.StringVar(&querySort, "sort", "", "Sort by "+strings.Join(query.SortNames, "|")+" or extra.<key>")
	f.IntVar(&queryLimit, "limit", -1, "Maximum number of pages (default from config, 0 for no limit)")
	f.IntVar(&queryOffset, "offset", 0, "Number of pages to skip")
	f.BoolVar(&queryCount, "count", false, "Print only the number of matching pages")
	f.StringVarP(&queryFormat, "format", "f", formatText, "Output format: text|json")

	_ = queryCmd.RegisterFlagCompletionFunc("mode", completeModes)
	_ = queryCmd.RegisterFlagCompletionFunc("published", completeFlagValues)
	_ = queryCmd.RegisterFlagCompletionFunc("visible", completeFlagValues)
	_ = queryCmd.RegisterFlagCompletionFunc("modular", completeFlagValues)
	_ = queryCmd.RegisterFlagCompletionFunc("sort", completeSortNames)
	_ = queryCmd.RegisterFlagCompletionFunc("format", completeOutputFormats)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if err := validateFormat(queryFormat); err != nil {
		return err
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	cfg, err := resolveSiteConfig(querySite)
	if err != nil {
		return err
	}
	s, err := openSite(commandContext(cmd), cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	finder, err := buildFinder(s.tree)
	if err != nil {
		return err
	}

	limit := queryLimit
	if limit < 0 {
		limit = cfg.Query.Limit
	}
	finder.Limit(limit)

	out := cmd.OutOrStdout()

	if queryCount {
		n, err := finder.Count()
		if err != nil {
			return err
		}
		if queryFormat == formatJSON {
			return writeJSON(out, map[string]int{"count": n})
		}
		newRenderer(out).Count(n)
		return nil
	}

	items, err := finder.Items()
	if err != nil {
		return err
	}

	if queryFormat == formatJSON {
		views := []pageView{}
		for item := range items {
			views = append(views, newPageView(item.Node, item.Depth))
		}
		return writeJSON(out, views)
	}

	r := newRenderer(out)
	count := 0
	for item := range items {
		r.Page(item.Node, item.Depth)
		count++
	}
	r.Summary(count, "page", "pages")
	return nil
}

// buildFinder translates the query flags into a Finder over t.
// Limit is left to the caller.
func buildFinder(t *tree.Tree) (*query.Finder, error) {
	finder := query.New(t)

	roots, err := startPages(t, queryFrom)
	if err != nil {
		return nil, err
	}
	finder.In(roots...)

	finder.Name(queryNames...).NotName(queryNotNames...).
		Slug(querySlugs...).Title(queryTitles...).ContentType(queryTypes...).
		Path(queryPaths...).NotPath(queryNotPaths...).
		Contains(queryContains...).
		Depth(queryDepths...).Date(queryDates...)
	if queryFiles != "" {
		finder.Files(queryFiles)
	}

	mode, err := query.ParseMode(queryMode)
	if err != nil {
		return nil, err
	}
	for _, arg := range queryTaxonomies {
		name, values, err := parseTaxonomyArg("taxonomy", arg)
		if err != nil {
			return nil, err
		}
		finder.Taxonomy(name, values, mode)
	}
	for _, arg := range queryNotTaxonomies {
		name, values, err := parseTaxonomyArg("not-taxonomy", arg)
		if err != nil {
			return nil, err
		}
		finder.NotTaxonomy(name, values, mode)
	}

	settings, err := parseKeyValuePairs("setting", querySettings)
	if err != nil {
		return nil, err
	}
	for key, value := range settings {
		finder.Setting(key, value)
	}

	for _, arg := range queryExtras {
		parts := strings.SplitN(arg, ":", 3)
		if len(parts) != 3 || parts[0] == "" {
			return nil, fmt.Errorf("invalid argument %q for --extra: want key:kind:expr", arg)
		}
		finder.Extra(parts[0], parts[1], parts[2])
	}

	flags := []struct {
		name  string
		value string
		apply func(query.Flag) *query.Finder
	}{
		{"published", queryPublished, finder.Published},
		{"visible", queryVisible, finder.Visible},
		{"modular", queryModular, finder.Modular},
	}
	for _, fl := range flags {
		flag, err := query.ParseFlag(fl.value)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", fl.name, err)
		}
		fl.apply(flag)
	}

	if querySort != "" {
		finder.SortBy(querySort)
	}
	finder.Offset(queryOffset)

	return finder, nil
}

// startPages maps --from page paths to node IDs. No paths means the root.
func startPages(t *tree.Tree, from []string) ([]tree.NodeID, error) {
	if len(from) == 0 {
		return []tree.NodeID{t.Root()}, nil
	}
	repo := tree.NewRepository(t)
	ids := make([]tree.NodeID, 0, len(from))
	for _, p := range from {
		fullPath := "/" + strings.Trim(p, "/")
		page, ok := repo.Lookup(fullPath)
		if !ok {
			return nil, fmt.Errorf("invalid argument %q for --from: no such page", p)
		}
		ids = append(ids, page.ID)
	}
	return ids, nil
}

func parseTaxonomyArg(flag, arg string) (string, []string, error) {
	pairs, err := parseKeyValuePairs(flag, []string{arg})
	if err != nil {
		// "name" alone means the page has the taxonomy at all
		name := strings.TrimSpace(arg)
		if name == "" || strings.Contains(name, "=") {
			return "", nil, err
		}
		return name, nil, nil
	}
	for name, values := range pairs {
		return name, splitValues(values), nil
	}
	return "", nil, nil
}
