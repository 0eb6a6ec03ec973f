package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorText    = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#DFDBDD"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorUp      = lipgloss.Color("#22c55e")
	colorDown    = lipgloss.Color("#ef4444")
	colorStatBg  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary).
				MarginBottom(1)

	labelStyle = lipgloss.NewStyle().Foreground(colorText)
	dimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	upStyle    = lipgloss.NewStyle().Foreground(colorUp)
	downStyle  = lipgloss.NewStyle().Foreground(colorDown)
	errorStyle = lipgloss.NewStyle().Foreground(colorDown).Italic(true)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatBg).
			Foreground(colorDim)
)

// changeStyle colors a percent move green or red.
func changeStyle(v float64) lipgloss.Style {
	if v < 0 {
		return downStyle
	}
	return upStyle
}
