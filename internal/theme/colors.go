package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Event outcome colors
const (
	ColorMatched    Color = "2"   // Green - a shortcut fired
	ColorPrevented  Color = "214" // Orange - default action cancelled
	ColorSuppressed Color = "3"   // Yellow - typed into a form field
	ColorUnmatched  Color = "8"   // Gray - no shortcut
)

// UI semantic colors
const (
	ColorBorder    Color = "238" // Box borders
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorInput     Color = "205" // Pink - focused input
)
