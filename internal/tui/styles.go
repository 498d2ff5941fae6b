package tui

import "github.com/charmbracelet/lipgloss"

// PromptStyle colors the prompt and echoed commands.
func PromptStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}).
		Bold(true)
}

// GreetingStyle colors the session greeting line.
func GreetingStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"})
}

// FarewellStyle dims the farewell line printed on exit.
func FarewellStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
}
