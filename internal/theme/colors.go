package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - titles
	ColorSecondary Color = "86" // Cyan - section labels
)

// UI semantic colors
const (
	ColorDimmed    Color = "238" // Very dark gray - placeholders
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
)

// Accent colors
const (
	ColorCursor          Color = "205" // Pink
	ColorFilterPrompt    Color = "226" // Yellow
	ColorScrollIndicator Color = "240"
	ColorSelected        Color = "237"
)
