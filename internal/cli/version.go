package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/interlink/interlink"
	"github.com/aidanlsb/interlink/internal/buildinfo"
	"github.com/aidanlsb/interlink/internal/config"
)

type versionInfo struct {
	Version    string `json:"version"`
	Commit     string `json:"commit,omitempty"`
	Date       string `json:"date,omitempty"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
	Opening    string `json:"opening"`
	Closing    string `json:"closing"`
	ConfigPath string `json:"config_path"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show ilk version and the markers it will use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := currentVersionInfo()

		if isJSONOutput() {
			outputSuccess(info)
			return nil
		}

		fmt.Printf("ilk %s (%s, %s)\n", info.Version, info.GoVersion, info.Platform)
		if info.Commit != "" {
			fmt.Printf("commit: %s %s\n", info.Commit, info.Date)
		}
		fmt.Printf("markers: %s %s\n", info.Opening, info.Closing)
		fmt.Printf("config: %s\n", info.ConfigPath)
		return nil
	},
}

// currentVersionInfo reports build metadata and the effective markers. It
// runs without the root config hook, so a broken config falls back to the
// default markers instead of failing.
func currentVersionInfo() versionInfo {
	markers := interlink.DefaultMarkers
	if loaded, _, err := loadGlobalConfigWithPath(); err == nil {
		markers = loaded.GetMarkers()
	}

	return versionInfo{
		Version:    buildinfo.ResolvedVersion(),
		Commit:     buildinfo.Commit,
		Date:       buildinfo.Date,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		Opening:    markers.Opening,
		Closing:    markers.Closing,
		ConfigPath: config.ResolveConfigPath(configPath),
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
