// Package static provides non-interactive terminal output components.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

// RenderTable creates a formatted table with proper column alignment.
// Column widths are computed by lipgloss/table. No borders are rendered.
// Returns "" when there are no rows.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// Status is the outcome of a diagnostic check.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// Symbol returns the marker printed for s.
func (s Status) Symbol() string {
	switch s {
	case StatusOK:
		return "✓"
	case StatusWarn:
		return "⚠"
	}
	return "✗"
}

// Check is one row of a diagnostics table.
type Check struct {
	Name   string
	Status Status
	Detail string
}

// CheckHeaders are the column headers of RenderChecks.
var CheckHeaders = []string{"", "CHECK", "DETAIL"}

// RenderChecks renders checks as a table.
func RenderChecks(checks []Check) string {
	rows := make([][]string, 0, len(checks))
	for _, c := range checks {
		rows = append(rows, []string{c.Status.Symbol(), c.Name, c.Detail})
	}
	return RenderTable(CheckHeaders, rows)
}
