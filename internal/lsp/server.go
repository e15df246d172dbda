// Package lsp implements a Language Server Protocol server for interlinks.
//
// Editors send document contents with the usual didOpen/didChange
// notifications and ask for the keyword under the cursor with the custom
// interlink/keyword request, typically once per keystroke.
package lsp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/aidanlsb/interlink/interlink"
	"github.com/aidanlsb/interlink/internal/logging"
)

// JSON-RPC error codes.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// errExit signals that the client sent the exit notification.
var errExit = errors.New("exit requested")

// Options configures a Server.
type Options struct {
	// Markers are used when a request does not name its own.
	Markers interlink.Markers
	Logger  logging.Logger
	Input   io.Reader
	Output  io.Writer
}

// Server is the interlink LSP server.
type Server struct {
	markers interlink.Markers
	log     logging.Logger

	// Document management
	documents *DocumentManager

	// LSP communication
	input  *bufio.Reader
	output io.Writer
	mu     sync.Mutex // Protects output writes

	// Shutdown
	shutdown bool
}

// NewServer creates a new LSP server. Input and Output default to stdin and stdout.
func NewServer(opts Options) *Server {
	if opts.Markers == (interlink.Markers{}) {
		opts.Markers = interlink.DefaultMarkers
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	return &Server{
		markers:   opts.Markers,
		log:       opts.Logger.With("component", "lsp"),
		documents: NewDocumentManager(),
		input:     bufio.NewReader(opts.Input),
		output:    opts.Output,
	}
}

// Run processes messages until the client exits, the input ends or ctx is
// done. Frames are read on a separate goroutine so a cancelled context
// returns promptly even while the client is idle.
func (s *Server) Run(ctx context.Context) error {
	if err := s.markers.Validate(); err != nil {
		return err
	}
	s.log.Info("server started", "opening", s.markers.Opening, "closing", s.markers.Closing)

	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()
	frames := make(chan inbound)
	go s.readFrames(readCtx, frames)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var f inbound
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f = <-frames:
		}

		if f.err != nil {
			switch {
			case errors.Is(f.err, io.EOF), errors.Is(f.err, io.ErrUnexpectedEOF):
				return nil
			case isRecoverable(f.err):
				s.log.Warn("skipping malformed message", "err", f.err)
				continue
			default:
				return f.err
			}
		}

		err := s.handleMessage(f.content)
		switch {
		case err == nil:
		case errors.Is(err, errExit):
			s.log.Info("exit", "clean", s.shutdown)
			return nil
		default:
			s.log.Warn("error handling message", "err", err)
		}
	}
}

// inbound is one message body read from the input, or the error that ended
// reading.
type inbound struct {
	content []byte
	err     error
}

// readFrames feeds frames to out until the input fails or ctx is done.
func (s *Server) readFrames(ctx context.Context, out chan<- inbound) {
	for {
		content, err := s.readFrame()
		select {
		case out <- inbound{content: content, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil && !isRecoverable(err) {
			return
		}
	}
}

// isRecoverable reports whether reading can continue after err.
func isRecoverable(err error) bool {
	return errors.Is(err, errBadHeader)
}

var errBadHeader = errors.New("bad message header")

// readFrame reads the headers and body of a single LSP message.
func (s *Server) readFrame() ([]byte, error) {
	contentLength := -1
	for {
		line, err := s.input.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break // Empty line separates header from content
		}

		name, value, ok := strings.Cut(line, ":")
		if ok && strings.EqualFold(strings.TrimSpace(name), "Content-Length") {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, fmt.Errorf("%w: Content-Length %q", errBadHeader, value)
			}
			contentLength = n
		}
	}

	if contentLength < 0 {
		return nil, fmt.Errorf("%w: no Content-Length", errBadHeader)
	}

	content := make([]byte, contentLength)
	if _, err := io.ReadFull(s.input, content); err != nil {
		return nil, err
	}
	return content, nil
}

// handleMessage decodes and dispatches one message body.
func (s *Server) handleMessage(content []byte) error {
	var msg jsonRPCMessage
	if err := json.Unmarshal(content, &msg); err != nil {
		if sendErr := s.sendError(nil, codeParseError, "Parse error"); sendErr != nil {
			return sendErr
		}
		return fmt.Errorf("failed to parse message: %w", err)
	}

	s.log.Debug("received", "method", msg.Method, "id", msg.ID)

	return s.dispatch(msg)
}

// dispatch routes a message to the appropriate handler.
func (s *Server) dispatch(msg jsonRPCMessage) error {
	switch msg.Method {
	case "initialize":
		return s.handleInitialize(msg)
	case "initialized":
		// Client acknowledgment, nothing to do
		return nil
	case "shutdown":
		s.shutdown = true
		return s.sendResult(msg.ID, nil)
	case "exit":
		return errExit
	case "textDocument/didOpen":
		return s.handleDidOpen(msg)
	case "textDocument/didChange":
		return s.handleDidChange(msg)
	case "textDocument/didClose":
		return s.handleDidClose(msg)
	case methodKeyword:
		return s.handleKeyword(msg)
	case "":
		s.log.Debug("ignoring message without method", "id", msg.ID)
		return nil
	default:
		if msg.ID == nil {
			s.log.Debug("unhandled notification", "method", msg.Method)
			return nil
		}
		return s.sendError(msg.ID, codeMethodNotFound, "Method not found: "+msg.Method)
	}
}

// sendResult sends a successful response.
func (s *Server) sendResult(id interface{}, result interface{}) error {
	return s.send(jsonRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

// sendError sends an error response.
func (s *Server) sendError(id interface{}, code int, message string) error {
	return s.send(jsonRPCErrorResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &jsonRPCError{
			Code:    code,
			Message: message,
		},
	})
}

// send writes a JSON-RPC message to the output.
func (s *Server) send(msg interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	header := fmt.Sprintf("Content-Length: %d\r\n\r\n", len(content))
	if _, err := io.WriteString(s.output, header); err != nil {
		return err
	}
	_, err = s.output.Write(content)
	return err
}

// JSON-RPC types

type jsonRPCMessage struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// jsonRPCResponse always carries result, which is null for "no match".
type jsonRPCResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result"`
}

type jsonRPCErrorResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      interface{}   `json:"id"`
	Error   *jsonRPCError `json:"error"`
}

type jsonRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
