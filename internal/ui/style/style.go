// Package style provides the colors and icons shared by the logger and status output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Purple = lipgloss.Color("#8B5CF6")
	Blue   = lipgloss.Color("#3B82F6")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)

// Named status colors accepted by the status printer.
const (
	ColorYellow = "yellow"
	ColorPurple = "purple"
	ColorRed    = "red"
	ColorGreen  = "green"
	ColorBlue   = "blue"
)

// ByName maps a status color name to its palette entry. Unknown names fall back to Slate.
func ByName(name string) lipgloss.Color {
	switch name {
	case ColorYellow:
		return Yellow
	case ColorPurple:
		return Purple
	case ColorRed:
		return Red
	case ColorGreen:
		return Green
	case ColorBlue:
		return Blue
	default:
		return Slate
	}
}
