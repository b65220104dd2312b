package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Palette holds the colors of one appearance (dark or light)
type Palette struct {
	Accent    Color // tabs, links
	Aging     Color // 1-2 days, running, queued
	Error     Color
	Fresh     Color // < 1 day, passed, finished
	Highlight Color // selected row, emphasis
	Muted     Color // secondary text
	Normal    Color // default text
	Selected  Color // selected row background
	Stale     Color // > 2 days, failed, errored
	Subtle    Color // labels, counters
	Version   Color
}

// Dark is the default appearance
var Dark = Palette{
	Accent:    "99",  // Purple
	Aging:     "214", // Orange
	Error:     "196", // Bright red
	Fresh:     "42",  // Green
	Highlight: "255", // White
	Muted:     "241", // Gray
	Normal:    "250",
	Selected:  "236",
	Stale:     "203", // Red
	Subtle:    "245",
	Version:   "240",
}

// Light is used when dark mode is off
var Light = Palette{
	Accent:    "55",
	Aging:     "166",
	Error:     "160",
	Fresh:     "28",
	Highlight: "16",
	Muted:     "244",
	Normal:    "236",
	Selected:  "254",
	Stale:     "124",
	Subtle:    "240",
	Version:   "247",
}

// PaletteFor returns the palette of the given appearance
func PaletteFor(darkMode bool) Palette {
	if darkMode {
		return Dark
	}
	return Light
}
