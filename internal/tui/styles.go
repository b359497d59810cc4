package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	colorDanger  = lipgloss.Color("9")
	colorSuccess = lipgloss.Color("10")
	colorAccent  = lipgloss.Color("12")
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorDanger)
	fieldErrorStyle = lipgloss.NewStyle().Foreground(colorDanger)
	statusStyle     = lipgloss.NewStyle().Foreground(colorSuccess)
	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)
	promptStyle = lipgloss.NewStyle().Foreground(colorAccent)
)

// usersTableStyles highlights the selected row of the users table.
func usersTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("0")).Background(colorAccent)
	return s
}
