// Package tui provides the terminal chart board and the interactive
// palace browser.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles, 忌
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - palace names
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - selection, 权
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text, minor stars
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - 禄
	ColorInfo      = lipgloss.Color("#7ab8ff") // Blue - 科
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorLabel     = lipgloss.Color("#a8dadc") // Label color
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBgAlt     = lipgloss.Color("#2d3436") // Alt background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

// sihuaColors maps render color names to the palette.
var sihuaColors = map[string]lipgloss.Color{
	"success": ColorSuccess,
	"warning": ColorAccent,
	"primary": ColorInfo,
	"danger":  ColorPrimary,
}

// Title styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Board styles
var (
	BorderStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	PalaceHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary)

	PalaceSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				Background(ColorBgAlt)

	MainStarStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	AuxStarStyle = lipgloss.NewStyle().
			Foreground(ColorLabel)

	MinorStarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	PeriodStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	CenterStyle = lipgloss.NewStyle().
			Foreground(ColorText)
)

// Detail pane styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true).
			Width(10)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	GlyphStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Padding(0, 2)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	SearchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)
)

// Status styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	CopiedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)
