package repl

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors carried over from the dashboard palette.
var (
	colorBrand = lipgloss.Color("#9D00FF")
	colorTeal  = lipgloss.Color("#00FFCC")
	colorPeer  = lipgloss.Color("#00FF66")
	colorMuted = lipgloss.Color("#5555AA")

	colorWarning = lipgloss.Color("#FF6600")
	colorError   = lipgloss.Color("#FF3366")
)

var (
	timestampStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	ownNameStyle = lipgloss.NewStyle().
			Foreground(colorTeal).
			Bold(true)

	peerNameStyle = lipgloss.NewStyle().
			Foreground(colorPeer).
			Bold(true)

	indexStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorTeal)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBrand)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorTeal).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	helpStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBrand).
			Padding(1, 2)
)
