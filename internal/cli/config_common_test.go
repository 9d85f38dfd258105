package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/contree/internal/config"
	"github.com/vvka-141/contree/internal/logging"
	"github.com/vvka-141/contree/pkg/contree"
)

func clearSiteEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvRoot, "")
	t.Setenv(config.EnvCacheDSN, "")
}

func TestLoadProjectConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadProjectConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadProjectConfig_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte("bogus: true\n"), 0644))

	_, err := loadProjectConfig(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, contree.ErrInvalidConfig))
	assert.Equal(t, contree.ExitConfigError, contree.ExitCodeForError(err))
}

func TestResolveSiteConfig_Precedence(t *testing.T) {
	clearSiteEnv(t)
	dir := t.TempDir()
	content := "root: from-file\ncache:\n  driver: none\nquery:\n  limit: 5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(content), 0644))

	t.Run("config file", func(t *testing.T) {
		cfg, err := resolveSiteConfig(siteFlags{configDir: dir})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "from-file"), cfg.Root)
		assert.Equal(t, config.DriverNone, cfg.Cache.Driver)
		assert.Equal(t, 5, cfg.Query.Limit)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv(config.EnvRoot, "/from-env")
		cfg, err := resolveSiteConfig(siteFlags{configDir: dir})
		require.NoError(t, err)
		assert.Equal(t, "/from-env", cfg.Root)
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv(config.EnvRoot, "/from-env")
		cfg, err := resolveSiteConfig(siteFlags{
			configDir:      dir,
			root:           "/from-flag",
			metadataSuffix: ".meta.yml",
			cacheDriver:    config.DriverMemory,
		})
		require.NoError(t, err)
		assert.Equal(t, "/from-flag", cfg.Root)
		assert.Equal(t, ".meta.yml", cfg.MetadataSuffix)
		assert.Equal(t, config.DriverMemory, cfg.Cache.Driver)
	})
}

func TestResolveSiteConfig_InvalidDriver(t *testing.T) {
	clearSiteEnv(t)
	_, err := resolveSiteConfig(siteFlags{configDir: t.TempDir(), cacheDriver: "redis"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, contree.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "redis")
}

func TestResolveSiteConfig_PostgresWithoutDSN(t *testing.T) {
	clearSiteEnv(t)
	_, err := resolveSiteConfig(siteFlags{configDir: t.TempDir(), cacheDriver: config.DriverPostgres})
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvCacheDSN)
}

func newLoggerTestCommand(t *testing.T, format string, verbose bool) *cobra.Command {
	t.Helper()
	parent := &cobra.Command{Use: "contree"}
	parent.PersistentFlags().BoolP("verbose", "v", false, "")
	parent.PersistentFlags().String("log-format", logFormatConsole, "")
	child := &cobra.Command{Use: "resolve"}
	parent.AddCommand(child)

	require.NoError(t, parent.PersistentFlags().Set("log-format", format))
	if verbose {
		require.NoError(t, parent.PersistentFlags().Set("verbose", "true"))
	}
	return child
}

func TestNewLogger(t *testing.T) {
	t.Run("console", func(t *testing.T) {
		logger, err := newLogger(newLoggerTestCommand(t, logFormatConsole, false))
		require.NoError(t, err)
		assert.IsType(t, &logging.ConsoleLogger{}, logger)
	})

	t.Run("json", func(t *testing.T) {
		cmd := newLoggerTestCommand(t, logFormatJSON, true)
		var stderr bytes.Buffer
		cmd.SetErr(&stderr)

		logger, err := newLogger(cmd)
		require.NoError(t, err)
		require.IsType(t, &logging.ZerologLogger{}, logger)

		logger.Verbose("scanned %d pages", 3)
		assert.Contains(t, stderr.String(), `"message":"scanned 3 pages"`)
		assert.Contains(t, stderr.String(), `"component":"resolve"`)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := newLogger(newLoggerTestCommand(t, "xml", false))
		require.Error(t, err)
		assert.Equal(t, contree.ExitUsageError, contree.ExitCodeForError(err))
	})
}

func TestGetVerboseFlag(t *testing.T) {
	assert.True(t, getVerboseFlag(newLoggerTestCommand(t, logFormatConsole, true)))
	assert.False(t, getVerboseFlag(newLoggerTestCommand(t, logFormatConsole, false)))
	assert.False(t, getVerboseFlag(&cobra.Command{Use: "bare"}))
}
