package treeview

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	paneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
