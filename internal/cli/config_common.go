package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/contree/internal/config"
	"github.com/vvka-141/contree/internal/logging"
	"github.com/vvka-141/contree/pkg/contree"
)

// siteFlags holds the flags shared by every command that opens a site.
type siteFlags struct {
	configDir      string
	root           string
	tree           string
	metadataSuffix string
	cacheDriver    string
}

func addSiteFlags(cmd *cobra.Command, flags *siteFlags) {
	cmd.Flags().StringVar(&flags.configDir, "config-dir", ".", "Directory containing "+config.ConfigFileName)
	cmd.Flags().StringVar(&flags.root, "root", "", "Content root directory (overrides config and $"+config.EnvRoot+")")
	cmd.Flags().StringVar(&flags.tree, "tree", "", "YAML tree manifest used instead of scanning the root")
	cmd.Flags().StringVar(&flags.metadataSuffix, "metadata-suffix", "", "Sidecar metadata suffix (default "+contree.DefaultMetadataSuffix+")")
	cmd.Flags().StringVar(&flags.cacheDriver, "cache", "", "Resolution cache: none|memory|postgres")

	_ = cmd.RegisterFlagCompletionFunc("config-dir", completeDirectories)
	_ = cmd.RegisterFlagCompletionFunc("root", completeDirectories)
	_ = cmd.RegisterFlagCompletionFunc("cache", completeCacheDrivers)
}

// loadProjectConfig loads contree.yaml from dir.
// A missing file yields the defaults, not an error.
// Loads .env first so environment overrides can live next to the config.
func loadProjectConfig(dir string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(dir)
	if errors.Is(err, config.ErrConfigNotFound) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contree.ErrInvalidConfig, err)
	}
	return cfg, nil
}

// resolveSiteConfig applies config file, environment and flags in that order
// of increasing precedence, then validates the result.
func resolveSiteConfig(flags siteFlags) (*config.ProjectConfig, error) {
	cfg, err := loadProjectConfig(flags.configDir)
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnv(os.LookupEnv)

	if flags.root != "" {
		cfg.Root = flags.root
	}
	if flags.tree != "" {
		cfg.Tree = flags.tree
	}
	if flags.metadataSuffix != "" {
		cfg.MetadataSuffix = flags.metadataSuffix
	}
	if flags.cacheDriver != "" {
		cfg.Cache.Driver = flags.cacheDriver
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger creates the logger selected by --verbose and --log-format.
// Logs go to stderr so stdout stays machine-readable.
func newLogger(cmd *cobra.Command) (contree.Logger, error) {
	verbose := getVerboseFlag(cmd)
	format := logFormatConsole
	if flag := cmd.Flag("log-format"); flag != nil {
		format = flag.Value.String()
	}

	switch format {
	case logFormatConsole:
		return logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose), nil
	case logFormatJSON:
		return logging.NewZerologLogger(cmd.ErrOrStderr(), cmd.Name(), verbose), nil
	default:
		return nil, fmt.Errorf("invalid argument %q for --log-format: want %s or %s", format, logFormatConsole, logFormatJSON)
	}
}
