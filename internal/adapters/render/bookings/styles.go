package bookings

import "github.com/charmbracelet/lipgloss"

type styles struct {
	header  lipgloss.Style
	item    lipgloss.Style
	route   lipgloss.Style
	empty   lipgloss.Style
	loading lipgloss.Style
	warning lipgloss.Style
}

func newStyles() styles {
	return styles{
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		item:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		route:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		empty:   lipgloss.NewStyle().Faint(true),
		loading: lipgloss.NewStyle().Faint(true),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
