package interlink

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"
)

type fixtureCase struct {
	Name     string `yaml:"name"`
	Text     string `yaml:"text"`
	Cursor   int    `yaml:"cursor"`
	Opening  string `yaml:"opening"`
	Closing  string `yaml:"closing"`
	Keyword  string `yaml:"keyword"`
	Start    int    `yaml:"start"`
	End      int    `yaml:"end"`
	Truncate int    `yaml:"truncate"`
}

func loadFixtures(t *testing.T) []fixtureCase {
	t.Helper()
	data, err := os.ReadFile("testdata/cases.yaml")
	if err != nil {
		t.Fatalf("read fixtures: %v", err)
	}
	var cases []fixtureCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parse fixtures: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("no fixtures loaded")
	}
	return cases
}

func TestFixtures(t *testing.T) {
	for _, tc := range loadFixtures(t) {
		t.Run(tc.Name, func(t *testing.T) {
			markers := DefaultMarkers
			if tc.Opening != "" {
				markers.Opening = tc.Opening
			}
			if tc.Closing != "" {
				markers.Closing = tc.Closing
			}

			m, ok, err := KeywordAt(tc.Text, tc.Cursor, markers)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.Keyword == "" {
				if ok {
					t.Fatalf("expected no match, got %q", m.Keyword)
				}
				return
			}
			if !ok {
				t.Fatalf("expected keyword %q, got no match", tc.Keyword)
			}

			want := tc.Keyword
			end := tc.End
			if tc.Truncate > 0 {
				// The cursor sits inside the keyword; only the typed part is returned.
				want = want[:tc.Truncate]
				end = tc.Start + tc.Truncate
			}
			if m.Keyword != want {
				t.Fatalf("keyword=%q, want %q", m.Keyword, want)
			}
			if m.Start() != tc.Start || m.End() != end {
				t.Fatalf("span=[%d,%d), want [%d,%d)", m.Start(), m.End(), tc.Start, end)
			}
		})
	}
}
