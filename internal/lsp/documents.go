package lsp

import (
	"sort"
	"sync"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/aidanlsb/interlink/text"
)

// DocumentManager tracks open documents and their content.
type DocumentManager struct {
	mu        sync.RWMutex
	documents map[string]*Document
}

// Document represents an open document in the editor.
type Document struct {
	URI     string
	Version int
	Text    *text.Text

	// lineStarts holds the byte offset of each LSP line.
	lineStarts []int
}

// NewDocumentManager creates a new document manager.
func NewDocumentManager() *DocumentManager {
	return &DocumentManager{
		documents: make(map[string]*Document),
	}
}

func newDocument(uri, content string, version int) *Document {
	return &Document{
		URI:        uri,
		Version:    version,
		Text:       text.New(content),
		lineStarts: lineStarts(content),
	}
}

// Open registers a newly opened document.
func (dm *DocumentManager) Open(uri, content string, version int) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	dm.documents[uri] = newDocument(uri, content, version)
}

// Update replaces a document's content. Only full document sync is supported.
// Updates for unknown documents are ignored.
func (dm *DocumentManager) Update(uri, content string, version int) bool {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	if _, ok := dm.documents[uri]; !ok {
		return false
	}
	// Documents are replaced rather than mutated so readers holding the
	// previous version keep a consistent snapshot.
	dm.documents[uri] = newDocument(uri, content, version)
	return true
}

// Close removes a document from tracking.
func (dm *DocumentManager) Close(uri string) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	delete(dm.documents, uri)
}

// Get retrieves a document by URI.
func (dm *DocumentManager) Get(uri string) *Document {
	dm.mu.RLock()
	defer dm.mu.RUnlock()

	return dm.documents[uri]
}

// Len returns the number of open documents.
func (dm *DocumentManager) Len() int {
	dm.mu.RLock()
	defer dm.mu.RUnlock()

	return len(dm.documents)
}

// lineStarts splits on "\n", "\r\n" and "\r", the terminators LSP counts.
func lineStarts(s string) []int {
	starts := []int{0}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			starts = append(starts, i+1)
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineEnd returns the byte offset where line's content ends.
func (d *Document) lineEnd(line int) int {
	s := d.Text.String()
	end := len(s)
	if line+1 < len(d.lineStarts) {
		end = d.lineStarts[line+1]
	}
	start := d.lineStarts[line]
	for end > start && (s[end-1] == '\n' || s[end-1] == '\r') {
		end--
	}
	return end
}

// Offset converts an LSP position (line, UTF-16 character) to a byte offset.
// A character past the end of the line is clamped to the line end, as the
// protocol specifies. ok is false for a line outside the document or a
// character that splits a surrogate pair.
func (d *Document) Offset(pos Position) (int, bool) {
	if pos.Line < 0 || pos.Line >= len(d.lineStarts) || pos.Character < 0 {
		return 0, false
	}
	s := d.Text.String()
	off := d.lineStarts[pos.Line]
	end := d.lineEnd(pos.Line)

	units := 0
	for off < end && units < pos.Character {
		r, size := utf8.DecodeRuneInString(s[off:])
		n := utf16.RuneLen(r)
		if n < 0 {
			n = 1
		}
		if units+n > pos.Character {
			return 0, false
		}
		units += n
		off += size
	}
	return off, true
}

// Position converts a byte offset back to an LSP position.
func (d *Document) Position(off int) Position {
	line := sort.Search(len(d.lineStarts), func(i int) bool {
		return d.lineStarts[i] > off
	}) - 1
	if line < 0 {
		line = 0
	}

	s := d.Text.String()
	units := 0
	for i := d.lineStarts[line]; i < off; {
		r, size := utf8.DecodeRuneInString(s[i:])
		n := utf16.RuneLen(r)
		if n < 0 {
			n = 1
		}
		units += n
		i += size
	}
	return Position{Line: line, Character: units}
}
