// Package style provides shared UI styling primitives including colors and
// icons for consistent terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Iris   = lipgloss.Color("#8B5CF6")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "•"
)

// Valid renders the icon for a resource's validity.
func Valid(valid bool) string {
	if valid {
		return Check
	}
	return Cross
}

// ValidColor returns the color used for a resource's validity.
func ValidColor(valid bool) lipgloss.Color {
	if valid {
		return Green
	}
	return Red
}
