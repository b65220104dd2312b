package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/revue/internal/theme"
)

// Tip holds a tip format string and the keys to highlight
type Tip struct {
	Format string
	Keys   []string
}

// newTip builds a tip; format uses %s placeholders for keys, e.g. newTip("press %s to search", "/")
func newTip(format string, keys ...string) Tip {
	return Tip{Format: format, Keys: keys}
}

// String returns the tip as plain text
func (t Tip) String() string {
	args := make([]any, len(t.Keys))
	for i, k := range t.Keys {
		args[i] = k
	}
	return fmt.Sprintf(t.Format, args...)
}

// RenderTip formats a tip with highlighted keys
func RenderTip(s *theme.Styles, tip Tip) string {
	parts := strings.Split(tip.Format, "%s")
	var b strings.Builder
	b.WriteString(s.TipText.Render("tip: "))
	for i, part := range parts {
		b.WriteString(s.TipText.Render(part))
		if i < len(tip.Keys) {
			b.WriteString(s.TipKey.Render(tip.Keys[i]))
		}
	}
	return b.String()
}

// KeyWithTip wraps a key.Binding with an optional tip for the rotating tip line
type KeyWithTip struct {
	Binding key.Binding
	Tip     *Tip
}
