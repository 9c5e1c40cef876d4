package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	accent  = lipgloss.Color("#0EA5E9")
	dim     = lipgloss.Color("#6B7280")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	labelStyle = lipgloss.NewStyle().Foreground(dim).Width(18)
	valueStyle = lipgloss.NewStyle().Bold(true)
	totalStyle = lipgloss.NewStyle().Bold(true).Foreground(success)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(danger)
)

type row struct {
	label string
	value string
	total bool
}

func renderRows(w io.Writer, title string, rows []row) {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	for _, r := range rows {
		style := valueStyle
		if r.total {
			style = totalStyle
		}
		b.WriteString(labelStyle.Render(r.label))
		b.WriteString(style.Render(r.value))
		b.WriteString("\n")
	}
	fmt.Fprint(w, b.String())
}

// RenderError writes the user-facing message for err
func RenderError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("Error: ")+ErrorMessage(err))
}

// formatRate renders a fractional rate as a percentage, e.g. 0.0975 as 9.75%
func formatRate(rate decimal.Decimal) string {
	return rate.Shift(2).String() + "%"
}

func formatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
