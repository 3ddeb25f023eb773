package styles

import "github.com/charmbracelet/lipgloss"

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	OKColor   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	WarnColor = lipgloss.AdaptiveColor{Light: "#C9A227", Dark: "#F5D573"}
	ErrColor  = lipgloss.AdaptiveColor{Light: "#C94F4F", Dark: "#F57373"}

	TitleStyle = lipgloss.NewStyle().
			MarginLeft(1).
			MarginRight(5).
			Padding(0, 1).
			Italic(true).
			Foreground(lipgloss.Color("#FFF7DB"))

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 2).
			Margin(0, 1)

	ChipStyle = lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1).
			Background(Subtle).
			Foreground(lipgloss.Color("#FFF"))

	NoticeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(OKColor)

	NoticeErrStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrColor)
)
