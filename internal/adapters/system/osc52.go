package system

import (
	"fmt"
	"io"

	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/renato0307/revue/internal/ports"
)

// TerminalClipboard copies through the OSC 52 escape sequence, so text
// lands in the clipboard of the terminal on the other end of an SSH session
type TerminalClipboard struct {
	out io.Writer
}

var _ ports.Clipboard = (*TerminalClipboard)(nil)

// NewTerminalClipboard writes sequences to out, usually the SSH session
func NewTerminalClipboard(out io.Writer) *TerminalClipboard {
	return &TerminalClipboard{out: out}
}

func (c *TerminalClipboard) Copy(text string) error {
	if _, err := osc52.New(text).WriteTo(c.out); err != nil {
		return fmt.Errorf("failed to copy to terminal clipboard: %w", err)
	}
	return nil
}
