package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

// layerStyles colors each layer on the map, indexed by layer.
var layerStyles = []lipgloss.Style{
	layerSubject: lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")),
	layerClip:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171")),
	layerResult:  lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399")),
}

var hoverStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
