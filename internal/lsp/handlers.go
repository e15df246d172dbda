package lsp

import (
	"encoding/json"
	"errors"

	"github.com/aidanlsb/interlink/interlink"
	"github.com/aidanlsb/interlink/text"
)

// methodKeyword is the custom request returning the keyword at a position.
const methodKeyword = "interlink/keyword"

// LSP Protocol Types
// Only the subset this server reads or writes.

type InitializeParams struct {
	RootURI string `json:"rootUri"`
}

type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
	ServerInfo   ServerInfo         `json:"serverInfo"`
}

type ServerInfo struct {
	Name string `json:"name"`
}

type ServerCapabilities struct {
	TextDocumentSync int                  `json:"textDocumentSync"`
	Experimental     ExperimentalFeatures `json:"experimental"`
}

// ExperimentalFeatures advertises the custom request and the server's markers.
type ExperimentalFeatures struct {
	InterlinkKeyword bool   `json:"interlinkKeyword"`
	Opening          string `json:"opening"`
	Closing          string `json:"closing"`
}

type TextDocumentIdentifier struct {
	URI string `json:"uri"`
}

type VersionedTextDocumentIdentifier struct {
	URI     string `json:"uri"`
	Version int    `json:"version"`
}

type TextDocumentItem struct {
	URI        string `json:"uri"`
	LanguageID string `json:"languageId"`
	Version    int    `json:"version"`
	Text       string `json:"text"`
}

type DidOpenTextDocumentParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

type DidChangeTextDocumentParams struct {
	TextDocument   VersionedTextDocumentIdentifier  `json:"textDocument"`
	ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
}

type TextDocumentContentChangeEvent struct {
	Text string `json:"text"` // Full content (we use full sync)
}

type DidCloseTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

type TextDocumentPositionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
}

// KeywordParams are the params of interlink/keyword. Opening and Closing
// override the server's markers for this request only.
type KeywordParams struct {
	TextDocumentPositionParams
	Opening string `json:"opening,omitempty"`
	Closing string `json:"closing,omitempty"`
}

// KeywordResult is the keyword being typed and where it sits.
type KeywordResult struct {
	Keyword string `json:"keyword"`
	Range   Range  `json:"range"`
}

type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Handler implementations

func (s *Server) handleInitialize(msg jsonRPCMessage) error {
	var params InitializeParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, codeInvalidParams, "Invalid params")
		}
	}
	s.log.Debug("initialize", "root", params.RootURI)

	return s.sendResult(msg.ID, InitializeResult{
		Capabilities: ServerCapabilities{
			TextDocumentSync: 1, // Full sync
			Experimental: ExperimentalFeatures{
				InterlinkKeyword: true,
				Opening:          s.markers.Opening,
				Closing:          s.markers.Closing,
			},
		},
		ServerInfo: ServerInfo{Name: "ilk"},
	})
}

func (s *Server) handleDidOpen(msg jsonRPCMessage) error {
	var params DidOpenTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}

	s.documents.Open(
		params.TextDocument.URI,
		params.TextDocument.Text,
		params.TextDocument.Version,
	)
	s.log.Debug("opened", "uri", params.TextDocument.URI)

	return nil
}

func (s *Server) handleDidChange(msg jsonRPCMessage) error {
	var params DidChangeTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}

	// We use full sync, so take the last content change
	if len(params.ContentChanges) > 0 {
		content := params.ContentChanges[len(params.ContentChanges)-1].Text
		if !s.documents.Update(params.TextDocument.URI, content, params.TextDocument.Version) {
			s.log.Warn("change for unknown document", "uri", params.TextDocument.URI)
		}
	}

	return nil
}

func (s *Server) handleDidClose(msg jsonRPCMessage) error {
	var params DidCloseTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}

	s.documents.Close(params.TextDocument.URI)
	s.log.Debug("closed", "uri", params.TextDocument.URI)

	return nil
}

func (s *Server) handleKeyword(msg jsonRPCMessage) error {
	var params KeywordParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "Invalid params")
	}

	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return s.sendResult(msg.ID, nil)
	}

	markers := s.markers
	if params.Opening != "" {
		markers.Opening = params.Opening
	}
	if params.Closing != "" {
		markers.Closing = params.Closing
	}

	result, err := keywordAt(doc, params.Position, markers)
	if err != nil {
		return s.sendError(msg.ID, codeInvalidParams, err.Error())
	}
	if result == nil {
		return s.sendResult(msg.ID, nil)
	}

	s.log.Debug("keyword", "uri", doc.URI, "keyword", result.Keyword)
	return s.sendResult(msg.ID, result)
}

var (
	errBadPosition     = errors.New("position is outside the document or splits a surrogate pair")
	errInsideCharacter = errors.New("position falls inside a character")
)

// keywordAt runs the interlink lookup for an LSP position. A nil result with
// a nil error means there is no keyword at the position.
func keywordAt(doc *Document, pos Position, markers interlink.Markers) (*KeywordResult, error) {
	off, ok := doc.Offset(pos)
	if !ok {
		return nil, errBadPosition
	}
	p, err := doc.Text.PositionFromOffset(off)
	if err != nil {
		return nil, err
	}
	// Reject positions between a base character and its combining marks.
	line, err := text.LineAt(doc.Text, p)
	if err != nil {
		return nil, err
	}
	if _, ok := text.ToRelative(p, line); !ok {
		return nil, errInsideCharacter
	}

	m, found, err := interlink.Keyword(doc.Text, p, markers)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return &KeywordResult{
		Keyword: m.Keyword,
		Range:   spanRange(doc, m.Span),
	}, nil
}

func spanRange(doc *Document, sp text.Span) Range {
	return Range{
		Start: doc.Position(sp.Start.Offset()),
		End:   doc.Position(sp.End.Offset()),
	}
}
