package main

import "github.com/charmbracelet/lipgloss"

// Paleta del TUI. Colores semánticos fijos, sin detección de tema.
type styles struct {
	Title    lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Card     lipgloss.Style
	CardOn   lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Overlay  lipgloss.Style
	FieldLbl lipgloss.Style
}

func defaultStyles() styles {
	var (
		accent  = lipgloss.Color("#8BC34A")
		danger  = lipgloss.Color("#e53935")
		muted   = lipgloss.Color("240")
		border  = lipgloss.Color("#2a3850")
		primary = lipgloss.Color("#2196F3")
	)

	return styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(primary).Padding(0, 1),
		Tab:      lipgloss.NewStyle().Foreground(muted).Padding(0, 2),
		TabOn:    lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 2).Underline(true),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		CardOn:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Accent:   lipgloss.NewStyle().Foreground(accent),
		Error:    lipgloss.NewStyle().Foreground(danger),
		Success:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		Overlay:  lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(primary).Padding(1, 2),
		FieldLbl: lipgloss.NewStyle().Bold(true),
	}
}
