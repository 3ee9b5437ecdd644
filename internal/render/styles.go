package render

import "github.com/charmbracelet/lipgloss"

var (
	mutedColor   = lipgloss.Color("8")
	accentColor  = lipgloss.Color("6")
	dangerColor  = lipgloss.Color("1")
	warningColor = lipgloss.Color("3")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	emptyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	overdueStyle = lipgloss.NewStyle().
			Foreground(dangerColor).
			Bold(true)

	todayStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	ruleStyle = lipgloss.NewStyle().
			Faint(true)
)
