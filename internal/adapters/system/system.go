package system

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"github.com/renato0307/revue/internal/ports"
)

// Clock implements ports.Clock with the wall clock
type Clock struct{}

// Verify interface compliance at compile time
var (
	_ ports.Clock     = Clock{}
	_ ports.Clipboard = Clipboard{}
)

func (Clock) Now() time.Time {
	return time.Now()
}

// Clipboard implements ports.Clipboard with the system clipboard
type Clipboard struct{}

func (Clipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not available on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
