package commands

import (
	"github.com/charmbracelet/lipgloss"

	"taskboard/pkg/tasks"
)

const (
	colorWarning = "#F59E0B"
	colorSuccess = "#10B981"
	colorMuted   = "#6B7280"
)

var (
	pendingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))
	inProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorWarning)).Bold(true)
	doneStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSuccess))
)

// badge renders a status label, colored only on a terminal.
func (a *app) badge(s tasks.Status) string {
	label := s.Label()
	if !a.color {
		return label
	}
	switch s {
	case tasks.StatusInProgress:
		return inProgressStyle.Render(label)
	case tasks.StatusDone:
		return doneStyle.Render(label)
	default:
		return pendingStyle.Render(label)
	}
}
