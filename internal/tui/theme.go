package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette: true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorInfo    = colorTeal
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	activeLocaleStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Background(colorSurface0).
				Bold(true).
				Padding(0, 1)

	inactiveLocaleStyle = lipgloss.NewStyle().
				Foreground(colorOverlay1).
				Padding(0, 1)

	searchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	searchBoxFocusStyle = searchBoxStyle.BorderForeground(colorFocus)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	cardNameStyle  = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	cardLabelStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	cardValueStyle = lipgloss.NewStyle().Foreground(colorSubtext1)
	speciesStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)

	navEnabledStyle  = lipgloss.NewStyle().Foreground(colorText).Padding(0, 1)
	navDisabledStyle = lipgloss.NewStyle().Foreground(colorSurface2).Padding(0, 1)
	navActiveStyle   = lipgloss.NewStyle().
				Foreground(colorMantle).
				Background(colorAccent).
				Bold(true).
				Padding(0, 1)
	navCaptionStyle = lipgloss.NewStyle().Foreground(colorOverlay0)

	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	errorStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Foreground(colorError).
			Padding(0, 2)
	hintStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	spinnerStyle = lipgloss.NewStyle().Foreground(colorPeach)
)
