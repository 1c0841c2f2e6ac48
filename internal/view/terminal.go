package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used by the terminal renderer
type Styles struct {
	Welcome    lipgloss.Style
	Balance    lipgloss.Style
	Deposit    lipgloss.Style
	Withdrawal lipgloss.Style
	Date       lipgloss.Style
	Summary    lipgloss.Style
}

// DefaultStyles returns the styles the terminal client uses
func DefaultStyles() Styles {
	return Styles{
		Welcome:    lipgloss.NewStyle().Bold(true),
		Balance:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d29b1d")),
		Deposit:    lipgloss.NewStyle().Foreground(lipgloss.Color("#39b385")),
		Withdrawal: lipgloss.NewStyle().Foreground(lipgloss.Color("#e52a5a")),
		Date:       lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
		Summary:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2),
	}
}

// RenderTerminal lays out a view for a terminal
func RenderTerminal(v View, styles Styles) string {
	var rows []string
	for _, r := range v.Rows {
		style := styles.Withdrawal
		if r.Type == MovementTypeDeposit {
			style = styles.Deposit
		}
		label := style.Render(fmt.Sprintf("%2d %-10s", r.Position, strings.ToUpper(string(r.Type))))
		rows = append(rows, fmt.Sprintf("%s  %s  %s", label, styles.Date.Render(r.DisplayDate), r.DisplayAmount))
	}
	if len(rows) == 0 {
		rows = append(rows, styles.Date.Render("no movements"))
	}

	order := "chronological"
	if v.Sorted {
		order = "sorted by amount"
	}

	summary := styles.Summary.Render(fmt.Sprintf(
		"IN %s   OUT %s   INTEREST %s",
		styles.Deposit.Render(v.DisplayIncome),
		styles.Withdrawal.Render(v.DisplayOutflow),
		styles.Deposit.Render(v.DisplayInterest),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Welcome.Render(v.Welcome),
		"Current balance "+styles.Balance.Render(v.DisplayBalance),
		"",
		styles.Date.Render("Movements ("+order+")"),
		strings.Join(rows, "\n"),
		"",
		summary,
	)
}
