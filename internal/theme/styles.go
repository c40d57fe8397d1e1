package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginBottom(1)

	InputFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorInput).
				Padding(0, 1)

	InputBlurredStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Padding(0, 1)

	NoteStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// Shortcut list styles
var (
	GroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	ShortcutKeyStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true).
				Width(18)

	ShortcutDescStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)
)

// Event log styles
var (
	MatchedStyle = lipgloss.NewStyle().
			Foreground(ColorMatched).
			Bold(true)

	PreventedStyle = lipgloss.NewStyle().
			Foreground(ColorPrevented)

	SuppressedStyle = lipgloss.NewStyle().
			Foreground(ColorSuppressed)

	UnmatchedStyle = lipgloss.NewStyle().
			Foreground(ColorUnmatched)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// Table styles used by CLI output
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true).
				PaddingRight(2)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorNormal).
			PaddingRight(2)
)
