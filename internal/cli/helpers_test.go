package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/aidanlsb/interlink/internal/config"
)

var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	os.Stdout = w

	outputCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		var buf bytes.Buffer
		_, copyErr := io.Copy(&buf, r)
		_ = r.Close()
		if copyErr != nil {
			errCh <- copyErr
			return
		}
		outputCh <- buf.String()
	}()

	fn()

	os.Stdout = orig
	_ = w.Close()
	select {
	case err := <-errCh:
		t.Fatalf("io.Copy: %v", err)
		return ""
	case output := <-outputCh:
		return output
	}
}

// isolateGlobals restores the package-level CLI state after the test.
func isolateGlobals(t *testing.T) {
	t.Helper()
	prevConfigPath := configPath
	prevCfg := cfg
	prevJSON := jsonOutput
	prevDebug := debugFlag
	prevLogger := logger
	t.Cleanup(func() {
		configPath = prevConfigPath
		cfg = prevCfg
		jsonOutput = prevJSON
		debugFlag = prevDebug
		logger = prevLogger
	})
	cfg = &config.Config{}
}

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *ErrorInfo      `json:"error"`
}

func decodeEnvelope(t *testing.T, out string) envelope {
	t.Helper()
	var resp envelope
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	return resp
}
