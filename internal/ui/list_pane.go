package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// listBlock is one rendered row of a list. Headers are not selectable.
type listBlock struct {
	content    string
	selectable bool
}

// listPane is a scrollable list of multi-line blocks with one selected block
type listPane struct {
	cursor   int // index among selectable blocks
	viewport viewport.Model
}

func newListPane() listPane {
	return listPane{viewport: viewport.New(0, 0)}
}

// SetSize resizes the visible area
func (p *listPane) SetSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = max(height, 1)
}

// MoveUp selects the previous item
func (p *listPane) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// MoveDown selects the next item out of count
func (p *listPane) MoveDown(count int) {
	if p.cursor < count-1 {
		p.cursor++
	}
}

// Clamp keeps the cursor inside a list of count items
func (p *listPane) Clamp(count int) {
	if p.cursor >= count {
		p.cursor = count - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// Reset selects the first item and scrolls to the top
func (p *listPane) Reset() {
	p.cursor = 0
	p.viewport.GotoTop()
}

// Render lays out blocks and scrolls so the selected block is visible
func (p *listPane) Render(blocks []listBlock) string {
	var lines []string
	top, bottom := -1, -1
	selectable := 0

	for _, b := range blocks {
		blockLines := strings.Split(b.content, "\n")
		if b.selectable {
			if selectable == p.cursor {
				top = len(lines)
				bottom = top + len(blockLines) - 1
			}
			selectable++
		}
		lines = append(lines, blockLines...)
	}

	p.viewport.SetContent(strings.Join(lines, "\n"))

	if top >= 0 {
		switch {
		case top < p.viewport.YOffset:
			p.viewport.SetYOffset(top)
		case bottom >= p.viewport.YOffset+p.viewport.Height:
			p.viewport.SetYOffset(bottom - p.viewport.Height + 1)
		}
	}
	return p.viewport.View()
}
