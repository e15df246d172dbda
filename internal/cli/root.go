// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/interlink/internal/config"
	"github.com/aidanlsb/interlink/internal/logging"
	"github.com/aidanlsb/interlink/internal/ui"
)

var (
	// Global flags
	configPath string
	debugFlag  bool

	// Resolved values
	resolvedConfigPath string
	cfg                *config.Config
	logger             = logging.Nop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ilk",
	Short: "ilk - find the interlink keyword at a cursor",
	Long: `ilk finds the interlink keyword being typed at a cursor: the text after
an unclosed opening marker such as "[" on the cursor's line.

Positions are counted in user-perceived characters, so emoji, flags and
combining sequences each count as one.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}
		// Config commands load the file themselves so they work on a broken config.
		if cmd.Parent() != nil && (cmd.Parent().Name() == "completion" || cmd.Parent().Name() == "config") {
			return nil
		}

		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", resolvedConfigPath, err)
		}

		ui.ConfigureTheme(cfg.UI.Accent)
		logger, err = newLogger(cfg)
		if err != nil {
			return err
		}
		logger.Debug("config loaded", "path", resolvedConfigPath)
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging to stderr")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	resolvedPath := config.ResolveConfigPath(configPath)

	var loadedCfg *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, "", err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}

	return loadedCfg, resolvedPath, nil
}

// newLogger builds the stderr logger. --debug wins over log_level.
func newLogger(c *config.Config) (logging.Logger, error) {
	level, err := logging.ParseLevel(c.GetLogLevel())
	if err != nil {
		return nil, err
	}
	if debugFlag {
		level = logging.DebugLevel
	}
	return logging.New(logging.Config{
		Level:  level,
		Output: os.Stderr,
		Prefix: "ilk",
		JSON:   jsonOutput,
	}), nil
}
