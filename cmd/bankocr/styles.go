package main

import (
	"fmt"

	"bankocr/internal/classify"

	"github.com/charmbracelet/lipgloss"
)

var (
	okColor   = lipgloss.Color("#8BC34A") // Lime Green
	errColor  = lipgloss.Color("#e53935") // Red
	illColor  = lipgloss.Color("#FFC107") // Yellow
	infoColor = lipgloss.Color("#2196F3") // Blue

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(infoColor)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(errColor)
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

// statusStyle returns the style used for a status label.
func statusStyle(s classify.Status) lipgloss.Style {
	switch s {
	case classify.OK:
		return lipgloss.NewStyle().Foreground(okColor).Bold(true)
	case classify.ERR:
		return lipgloss.NewStyle().Foreground(errColor).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(illColor).Bold(true)
	}
}

// renderResult formats one result line with a coloured status.
func renderResult(r classify.Result) string {
	return fmt.Sprintf("%s %s", r.Account, statusStyle(r.Status).Render(string(r.Status)))
}

// renderSummary formats the tally for stderr.
func renderSummary(title string, t classify.Tally) string {
	return fmt.Sprintf("%s %s  %s  %s  %s",
		titleStyle.Render(title),
		mutedStyle.Render(fmt.Sprintf("%d accounts", t.Total())),
		statusStyle(classify.OK).Render(fmt.Sprintf("%d OK", t.OK)),
		statusStyle(classify.ERR).Render(fmt.Sprintf("%d ERR", t.ERR)),
		statusStyle(classify.ILL).Render(fmt.Sprintf("%d ILL", t.ILL)),
	)
}
