// Package cli handles the interactive stdin loop for trying expansions without restarting the process
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/backrodev/backro/internal/logger"
	"github.com/backrodev/backro/internal/utils"
	"github.com/backrodev/backro/pkg/acronym"
	"github.com/backrodev/backro/pkg/dictionary"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// InputHandler processes user input from stdin, expanding each line into
// backronym output. Diagnostics go through the logger (stderr); expansion
// lines go to stdout so the output stays pipeable.
type InputHandler struct {
	expander     *acronym.Expander
	dict         *dictionary.Loader
	maxInputLen  int
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler
func NewInputHandler(expander *acronym.Expander, dict *dictionary.Loader, maxInputLen int) *InputHandler {
	return &InputHandler{
		expander:    expander,
		dict:        dict,
		maxInputLen: maxInputLen,
	}
}

// Start begins the interface loop.
// It continuously reads a line from stdin and passes the trimmed input to
// handleInput() for processing. Loop terminates on stdin error or EOF.
func (h *InputHandler) Start() error {
	l := logger.Default("backro")
	header := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	l.Print(header.Render("backro interactive"))
	l.Print("type something and press Enter to expand it (:stats for wordlist info, Ctrl+C to exit):")

	reader := bufio.NewReader(os.Stdin)
	for {
		l.Print("> ")
		text, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		h.handleInput(text)
	}
}

// handleInput expands a single input line and prints the result.
func (h *InputHandler) handleInput(text string) {
	h.requestCount++

	if text == ":stats" {
		log.Printf("wordlist: %s words across %d letters",
			utils.FormatWithCommas(h.dict.WordCount()), h.dict.LetterCount())
		return
	}

	if len(text) > h.maxInputLen {
		log.Errorf("Input too long (%d > %d chars)", len(text), h.maxInputLen)
		return
	}

	start := time.Now()
	lines, err := h.expander.Expand(text)
	if err != nil {
		if errors.Is(err, acronym.ErrNoInputLetters) {
			log.Warnf("No letters in input: %q", text)
			return
		}
		log.Errorf("Expansion failed: %v", err)
		return
	}
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for %d tokens", elapsed, len(lines))

	for _, line := range lines {
		fmt.Println(line)
	}
}
