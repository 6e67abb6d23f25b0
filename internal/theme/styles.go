package theme

import "github.com/charmbracelet/lipgloss"

// Dialog styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0, 0, 0)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Padding(0, 0, 1, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	DimmedStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	PathStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// Folder list styles
var (
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.Border{Top: "─", Bottom: "─"}).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	ItemStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	ItemSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Background(ColorSelected).
				Bold(true)

	ScrollIndicatorStyle = lipgloss.NewStyle().
				Foreground(ColorScrollIndicator)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(ColorFilterPrompt)

	FilterCursorStyle = lipgloss.NewStyle().
				Foreground(ColorCursor)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0, 0, 0)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)
)

// ErrorStyle renders status and validation messages
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)
