package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/backrodev/backro/pkg/acronym"
	"github.com/backrodev/backro/pkg/dictionary"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// maxTextLen caps a single request's input text.
const maxTextLen = 1024

// Server handles the IPC for backronym expansion
type Server struct {
	expander *acronym.Expander
	dict     *dictionary.Loader
	dec      *msgpack.Decoder
	enc      *msgpack.Encoder
}

// NewServer creates a new expansion server using stdin/stdout for IPC
func NewServer(expander *acronym.Expander, dict *dictionary.Loader) *Server {
	return NewServerIO(expander, dict, os.Stdin, os.Stdout)
}

// NewServerIO creates a server on explicit streams, mainly for tests.
func NewServerIO(expander *acronym.Expander, dict *dictionary.Loader, r io.Reader, w io.Writer) *Server {
	return &Server{
		expander: expander,
		dict:     dict,
		dec:      msgpack.NewDecoder(r),
		enc:      msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests
func (s *Server) Start() error {
	log.Debug("Starting Server.")

	// Signal that the server is ready
	s.send(map[string]string{"status": "ready"})

	// incoming requests stdin
	for {
		var raw map[string]interface{}
		if err := s.dec.Decode(&raw); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(raw)
	}
}

// handleRequest dispatches a decoded request map on its fields: messages
// carrying "action" are wordlist ops, everything else is an expansion.
func (s *Server) handleRequest(raw map[string]interface{}) {
	id, _ := raw["id"].(string)

	if action, ok := raw["action"].(string); ok {
		s.handleWordlist(id, action)
		return
	}

	text, ok := raw["x"].(string)
	if !ok {
		s.sendError(id, "Missing 'x' parameter", 400)
		log.Debug("No text field in request")
		return
	}
	s.handleExpand(id, text)
}

// handleExpand processes an expansion request. It validates the request,
// runs the expander and sends back one line per input token with timing
// info in microseconds.
func (s *Server) handleExpand(id, text string) {
	if text == "" {
		s.sendError(id, "Missing 'x' parameter", 400)
		log.Debug("Text is empty in request")
		return
	}

	if len(text) > maxTextLen {
		s.sendError(id, fmt.Sprintf("Text exceeds maximum length of %d characters", maxTextLen), 400)
		log.Debug("Text is too long in request")
		return
	}

	start := time.Now()
	lines, err := s.expander.Expand(text)
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, acronym.ErrNoInputLetters) {
			s.sendError(id, "Input has no alphabetic characters", 422)
			return
		}
		s.sendError(id, "Internal server error", 500)
		log.Errorf("Expanding %q: %v", text, err)
		return
	}

	response := ExpandResponse{
		ID:        id,
		Lines:     lines,
		Count:     len(lines),
		TimeTaken: elapsed.Microseconds(),
	}
	s.send(response)
}

// handleWordlist processes wordlist info requests
func (s *Server) handleWordlist(id, action string) {
	switch action {
	case "get_info":
		s.send(WordlistResponse{
			ID:      id,
			Status:  "ok",
			Words:   s.dict.WordCount(),
			Letters: s.dict.LetterCount(),
		})
	case "health":
		s.send(WordlistResponse{ID: id, Status: "ok"})
	default:
		s.sendError(id, fmt.Sprintf("Unknown action: %s", action), 400)
	}
}

// send encodes the given response as msgpack and writes it to the client.
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ExpandError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
