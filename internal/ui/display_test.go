package ui

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestDisplayForNonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	for name, w := range map[string]io.Writer{
		"buffer": &bytes.Buffer{},
		"file":   f,
	} {
		d := DisplayFor(w)
		if d.IsTTY || d.Width != DefaultTermWidth {
			t.Errorf("%s: got %+v, want non-TTY at default width", name, d)
		}
	}
}
