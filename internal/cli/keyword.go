package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/interlink/interlink"
	"github.com/aidanlsb/interlink/internal/ui"
	"github.com/aidanlsb/interlink/text"
)

var (
	keywordPos     int
	keywordOffset  int
	keywordOpening string
	keywordClosing string
)

var keywordCmd = &cobra.Command{
	Use:   "keyword [file]",
	Short: "Print the interlink keyword at a cursor",
	Long: `Print the interlink keyword being typed at a cursor.

The input is read from file, or from stdin when file is "-" or omitted. The
cursor defaults to the end of the input. --pos counts characters (grapheme
clusters) from the start, --offset counts bytes.

Only the cursor's line is examined. A keyword is found when the line before
the cursor ends in an opening marker followed by text with no closing
marker, and the rest of the line does not close a bracket opened elsewhere.

Examples:
  # What is being typed at the end of a draft?
  ilk keyword draft.md

  # Cursor after "Fre" in "Met [Fred"
  printf 'Met [Fred' | ilk keyword --pos 8

  # Custom markers
  printf 'ping @ali' | ilk keyword --opening @ --closing ' '`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKeyword,
}

func init() {
	rootCmd.AddCommand(keywordCmd)
	keywordCmd.Flags().IntVar(&keywordPos, "pos", 0, "Cursor as a character index (default: end of input)")
	keywordCmd.Flags().IntVar(&keywordOffset, "offset", 0, "Cursor as a byte offset")
	keywordCmd.Flags().StringVar(&keywordOpening, "opening", "", "Opening marker (overrides config)")
	keywordCmd.Flags().StringVar(&keywordClosing, "closing", "", "Closing marker (overrides config)")
}

type keywordResult struct {
	Found  bool          `json:"found"`
	Source string        `json:"source"`
	Cursor int           `json:"cursor"`
	Match  *keywordMatch `json:"match,omitempty"`
}

type keywordMatch struct {
	Keyword   string `json:"keyword"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	ByteStart int    `json:"byte_start"`
	ByteEnd   int    `json:"byte_end"`
}

func runKeyword(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("pos") && cmd.Flags().Changed("offset") {
		return handleError(ErrInvalidInput, errors.New("--pos and --offset cannot be used together"), "")
	}

	source := "-"
	if len(args) == 1 {
		source = args[0]
	}
	content, err := readInput(cmd.InOrStdin(), source)
	if err != nil {
		return handleError(ErrFileReadError, err, "Pass a file path, or pipe text on stdin")
	}
	if !utf8.Valid(content) {
		return handleError(ErrInvalidInput, fmt.Errorf("%s: input is not valid UTF-8", source), "")
	}

	t := text.New(string(content))
	p, err := cursorPosition(cmd, t)
	if err != nil {
		code := ErrInvalidInput
		if errors.Is(err, text.ErrPositionOutOfRange) {
			code = ErrPositionOutOfRange
		}
		return handleError(code, err, "")
	}

	markers := keywordMarkers()
	logger.Debug("keyword query",
		"source", source,
		"bytes", len(content),
		"offset", p.Offset(),
		"opening", markers.Opening,
		"closing", markers.Closing,
	)

	match, found, err := interlink.Keyword(t, p, markers)
	if err != nil {
		if errors.Is(err, interlink.ErrInvalidMarkers) {
			return handleError(ErrInvalidMarkers, err, "Markers must be two different single characters")
		}
		return handleError(ErrInternal, err, "")
	}

	// Character indices are O(offset); this runs once per invocation.
	result := keywordResult{Found: found, Source: source, Cursor: p.Index()}
	if found {
		result.Match = &keywordMatch{
			Keyword:   match.Keyword,
			Start:     match.Start(),
			End:       match.End(),
			ByteStart: match.Span.Start.Offset(),
			ByteEnd:   match.Span.End.Offset(),
		}
	}
	logger.Debug("keyword result", "found", found, "keyword", match.Keyword)

	if isJSONOutput() {
		outputSuccess(result)
		return nil
	}

	if !found {
		fmt.Println(ui.Hint("no keyword at cursor"))
		return nil
	}

	if display := ui.DisplayFor(os.Stdout); display.IsTTY {
		if line, err := renderKeywordLine(t, match, markers.Opening, display.Width); err == nil {
			fmt.Println(line)
		}
	}
	fmt.Printf("keyword: %s\n", result.Match.Keyword)
	fmt.Printf("start: %d\n", result.Match.Start)
	fmt.Printf("end: %d\n", result.Match.End)
	return nil
}

// readInput reads source, or in when source is "-". An interactive stdin is
// rejected rather than waited on.
func readInput(in io.Reader, source string) ([]byte, error) {
	if source != "-" {
		return os.ReadFile(source)
	}
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return nil, errors.New("no input: stdin is a terminal")
	}
	return io.ReadAll(in)
}

func cursorPosition(cmd *cobra.Command, t *text.Text) (text.Position, error) {
	switch {
	case cmd.Flags().Changed("pos"):
		return t.PositionAt(keywordPos)
	case cmd.Flags().Changed("offset"):
		return t.PositionFromOffset(keywordOffset)
	default:
		return t.End(), nil
	}
}

// keywordMarkers resolves markers: flags, then config, then defaults.
func keywordMarkers() interlink.Markers {
	m := getConfig().GetMarkers()
	if keywordOpening != "" {
		m.Opening = keywordOpening
	}
	if keywordClosing != "" {
		m.Closing = keywordClosing
	}
	return m
}

// renderKeywordLine shows the match's line with the keyword highlighted.
func renderKeywordLine(t *text.Text, match interlink.Match, opening string, width int) (string, error) {
	line, err := text.LineAt(t, match.Span.Start)
	if err != nil {
		return "", err
	}
	s := line.Text.String()
	start := match.Span.Start.Offset() - line.Span.Start.Offset()
	end := match.Span.End.Offset() - line.Span.Start.Offset()
	return ui.KeywordLine(s[:start-len(opening)], opening, s[start:end], s[end:], width), nil
}
