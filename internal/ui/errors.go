package ui

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// clearErrorMsg asks the model to clear the error with the given id.
// Errors set after the tick was scheduled keep their own timer.
type clearErrorMsg struct {
	id int
}

// ErrorManager holds the transient error shown in the bottom bar
type ErrorManager struct {
	clearDelay   time.Duration
	currentError error
	id           int
}

// NewErrorManager creates a new ErrorManager with the specified auto-clear delay
func NewErrorManager(clearDelay time.Duration) *ErrorManager {
	return &ErrorManager{
		clearDelay: clearDelay,
	}
}

// SetError sets the current error and returns the command that clears it later
func (em *ErrorManager) SetError(err error) tea.Cmd {
	em.currentError = err
	em.id++
	return em.clearAfterDelay()
}

// ClearError clears the current error
func (em *ErrorManager) ClearError() {
	em.currentError = nil
}

// GetError returns the current error
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError returns true if there is a current error
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// HandleClear clears the error if msg belongs to it
func (em *ErrorManager) HandleClear(msg clearErrorMsg) {
	if msg.id == em.id {
		em.currentError = nil
	}
}

func (em *ErrorManager) clearAfterDelay() tea.Cmd {
	if em.clearDelay <= 0 {
		return nil
	}
	id := em.id
	return tea.Tick(em.clearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{id: id}
	})
}

// formatErrorForDisplay formats an error message for TUI display.
// The result is at most maxErrorLines lines wrapped at maxWidth, prefixed by "Error: "
// and truncated with "..." when the message does not fit.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := err.Error()
	if message == "" {
		return errorPrefix + "unknown error"
	}

	firstLineWidth := max(maxWidth-utf8.RuneCountInString(errorPrefix), 10)
	otherLineWidth := max(maxWidth, 10)

	words := strings.Fields(message)
	if len(words) == 0 {
		return errorPrefix + message
	}

	var lines []string
	var current strings.Builder
	lineWidth := firstLineWidth
	truncated := false

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		currentLen := utf8.RuneCountInString(current.String())

		if currentLen > 0 && currentLen+1+wordLen > lineWidth {
			lines = append(lines, current.String())
			current.Reset()

			if len(lines) >= maxErrorLines {
				truncated = true
				break
			}
			lineWidth = otherLineWidth
		}

		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}

	if !truncated && current.Len() > 0 {
		lines = append(lines, current.String())
	}

	if truncated {
		last := []rune(lines[maxErrorLines-1])
		keep := otherLineWidth - utf8.RuneCountInString(truncationMark)
		if len(last) > keep {
			last = last[:keep]
		}
		lines[maxErrorLines-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
