package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#58a6ff"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#656d76", Dark: "#8b949e"}
	colorDanger  = lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f85149"}
	colorSurface = lipgloss.AdaptiveColor{Light: "#f6f8fa", Dark: "#161b22"}
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	addressStyle = lipgloss.NewStyle().Foreground(colorMuted)

	facetNameStyle = lipgloss.NewStyle().
			Width(7).
			Foreground(colorMuted)

	facetFocusedNameStyle = facetNameStyle.
				Foreground(colorAccent).
				Bold(true)

	valueStyle = lipgloss.NewStyle().Padding(0, 1)

	valueSelectedStyle = valueStyle.
				Foreground(lipgloss.Color("#ffffff")).
				Background(colorAccent)

	valueCursorStyle = valueStyle.Underline(true)

	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)

	toastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Background(colorSurface).
			Padding(0, 1)

	toastDestructiveStyle = toastStyle.BorderForeground(colorDanger)

	helpStyle = lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1)
)
