package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitCreatesConfigFile(t *testing.T) {
	isolateGlobals(t)
	configPath = filepath.Join(t.TempDir(), "nested", "config.toml")
	jsonOutput = true

	out := captureStdout(t, func() {
		if err := configInitCmd.RunE(configInitCmd, nil); err != nil {
			t.Fatalf("configInitCmd.RunE: %v", err)
		}
	})
	resp := decodeEnvelope(t, out)
	if !resp.OK {
		t.Fatalf("expected ok=true; out=%s", out)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("expected config file: %v", err)
	}
	if !strings.Contains(string(data), "[markers]") {
		t.Errorf("default config missing markers section:\n%s", data)
	}
}

func TestConfigShowReportsMarkers(t *testing.T) {
	isolateGlobals(t)
	configPath = filepath.Join(t.TempDir(), "config.toml")
	content := "log_level = \"debug\"\n\n[markers]\nopening = \"{\"\nclosing = \"}\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	jsonOutput = true

	out := captureStdout(t, func() {
		if err := configShowCmd.RunE(configShowCmd, nil); err != nil {
			t.Fatalf("configShowCmd.RunE: %v", err)
		}
	})
	var view configView
	if err := json.Unmarshal(decodeEnvelope(t, out).Data, &view); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if !view.Exists || !view.Valid {
		t.Fatalf("expected existing valid config, got %+v", view)
	}
	if view.Opening != "{" || view.Closing != "}" || view.LogLevel != "debug" {
		t.Errorf("unexpected view %+v", view)
	}
	if view.Accent != "#a78bfa" {
		t.Errorf("accent = %q, want the built-in accent", view.Accent)
	}
}

func TestConfigShowReportsEffectiveAccent(t *testing.T) {
	tests := []struct {
		accent string
		want   string
	}{
		{accent: "#abc", want: "#aabbcc"},
		{accent: " 39 ", want: "39"},
		{accent: "off", want: "none"},
	}
	for _, tt := range tests {
		t.Run(tt.accent, func(t *testing.T) {
			isolateGlobals(t)
			configPath = filepath.Join(t.TempDir(), "config.toml")
			content := "[ui]\naccent = \"" + tt.accent + "\"\n"
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			jsonOutput = true

			out := captureStdout(t, func() {
				if err := configShowCmd.RunE(configShowCmd, nil); err != nil {
					t.Fatalf("configShowCmd.RunE: %v", err)
				}
			})
			var view configView
			if err := json.Unmarshal(decodeEnvelope(t, out).Data, &view); err != nil {
				t.Fatalf("unmarshal data: %v", err)
			}
			if view.Accent != tt.want {
				t.Errorf("accent = %q, want %q", view.Accent, tt.want)
			}
		})
	}
}

func TestConfigShowFlagsInvalidMarkers(t *testing.T) {
	isolateGlobals(t)
	configPath = filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[markers]\nopening = \"[[\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	jsonOutput = true

	out := captureStdout(t, func() {
		if err := configShowCmd.RunE(configShowCmd, nil); err != nil {
			t.Fatalf("configShowCmd.RunE: %v", err)
		}
	})
	var view configView
	if err := json.Unmarshal(decodeEnvelope(t, out).Data, &view); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if view.Valid || !strings.Contains(view.Problem, "markers") {
		t.Fatalf("expected invalid markers problem, got %+v", view)
	}
}

func TestConfigShowExplicitMissingFile(t *testing.T) {
	isolateGlobals(t)
	configPath = filepath.Join(t.TempDir(), "absent.toml")
	jsonOutput = true

	out := captureStdout(t, func() {
		if err := configShowCmd.RunE(configShowCmd, nil); err != nil {
			t.Fatalf("configShowCmd.RunE: %v", err)
		}
	})
	resp := decodeEnvelope(t, out)
	// An explicit --config that does not exist is a read error.
	if resp.OK || resp.Error == nil || resp.Error.Code != ErrConfigInvalid {
		t.Fatalf("expected CONFIG_INVALID, got %s", out)
	}
}
