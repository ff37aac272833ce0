// Package inspector implements the "vcgc inspect" terminal UI: a
// read-only browser over a compiled module's rule tree.
package inspector

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary   = lipgloss.Color("#8B5CF6")
	ColorSecondary = lipgloss.Color("#06B6D4")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorDimmed    = lipgloss.Color("#374151")
	ColorText      = lipgloss.Color("#F8FAFC")
	ColorTextMuted = lipgloss.Color("#94A3B8")

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			MarginBottom(1)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	ListItemStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	TreePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Foreground(ColorText).
			Padding(1, 2)

	CallbackStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)
)
