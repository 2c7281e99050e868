package style

import "github.com/charmbracelet/lipgloss"

// Palette used by boxed notices.
var (
	Text        = lipgloss.Color("#cdd6f4")
	AccentColor = lipgloss.Color("#cba6f7")
	HiRed       = lipgloss.Color("#f38ba8")
)
