package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/interlink/internal/config"
	"github.com/aidanlsb/interlink/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create the ilk config file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a commented default config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

type configView struct {
	ConfigPath string `json:"config_path"`
	Exists     bool   `json:"exists"`
	Valid      bool   `json:"valid"`
	Problem    string `json:"problem,omitempty"`
	LogLevel   string `json:"log_level"`
	Opening    string `json:"opening"`
	Closing    string `json:"closing"`
	// Accent is the effective highlight color, or "none" when disabled.
	Accent     string `json:"accent"`
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path := config.ResolveConfigPath(configPath)
	_, statErr := os.Stat(path)

	loaded, _, err := loadGlobalConfigWithPath()
	if err != nil {
		return handleError(ErrConfigInvalid, err, "Fix the file or run 'ilk config init' on a new path")
	}

	markers := loaded.GetMarkers()
	view := configView{
		ConfigPath: path,
		Exists:     statErr == nil,
		Valid:      true,
		LogLevel:   loaded.GetLogLevel(),
		Opening:    markers.Opening,
		Closing:    markers.Closing,
	}
	ui.ConfigureTheme(loaded.UI.Accent)
	view.Accent = "none"
	if color, ok := ui.AccentColor(); ok {
		view.Accent = color
	}
	if err := loaded.Validate(); err != nil {
		view.Valid = false
		view.Problem = err.Error()
	}

	if isJSONOutput() {
		outputSuccess(view)
		return nil
	}

	if !view.Exists {
		fmt.Printf("Config file does not exist: %s (using defaults)\n", view.ConfigPath)
		fmt.Println("Run 'ilk config init' to create it.")
	} else {
		fmt.Printf("config: %s\n", view.ConfigPath)
	}
	fmt.Printf("log_level: %s\n", view.LogLevel)
	fmt.Printf("markers.opening: %q\n", view.Opening)
	fmt.Printf("markers.closing: %q\n", view.Closing)
	fmt.Printf("ui.accent: %s\n", view.Accent)
	if !view.Valid {
		fmt.Printf("invalid: %s\n", view.Problem)
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.CreateDefault(config.ResolveConfigPath(configPath))
	if err != nil {
		return handleError(ErrFileWriteError, err, "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{"config_path": path})
		return nil
	}
	fmt.Println(ui.Success("config: " + path))
	return nil
}
