package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func num(v float64) string { return strconv.FormatFloat(v, 'g', 10, 64) }

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// Table renders a problem report: title, equation, node table and metrics.
func Table(r ProblemReport) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("Problem %s: %s", r.Name, r.Title)))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "%s on [%s, %s], y(%s) = %s, y(%s) = %s, N = %d\n",
		r.Equation, num(r.Domain[0]), num(r.Domain[1]),
		num(r.Domain[0]), num(r.Boundary[0]), num(r.Domain[1]), num(r.Boundary[1]), r.Nodes)

	tbl := newTable("i", "t", "collocation", "exact", "|error|")
	for i, p := range r.Points {
		exact, abs := "-", "-"
		if p.Exact != nil {
			exact = num(*p.Exact)
		}
		if p.AbsErr != nil {
			abs = strconv.FormatFloat(*p.AbsErr, 'e', 3, 64)
		}
		tbl.Row(strconv.Itoa(i), num(p.T), num(p.Y), exact, abs)
	}
	sb.WriteString(tbl.String())
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "max |equation residual| between nodes = %.3e\n", r.Residual)
	if r.Metrics != nil {
		fmt.Fprintf(&sb, "max |error| = %.3e  mean = %.3e  rms = %.3e\n",
			r.Metrics.MaxAbs, r.Metrics.MeanAbs, r.Metrics.RMS)
	}

	return sb.String()
}

// StudyTable renders a convergence study.
func StudyTable(s StudyReport) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Convergence: problem " + s.Name))
	sb.WriteByte('\n')

	tbl := newTable("N", "max |error|", "mean |error|", "rms")
	for _, p := range s.Points {
		tbl.Row(strconv.Itoa(p.N),
			strconv.FormatFloat(p.MaxAbs, 'e', 3, 64),
			strconv.FormatFloat(p.MeanAbs, 'e', 3, 64),
			strconv.FormatFloat(p.RMS, 'e', 3, 64))
	}
	sb.WriteString(tbl.String())
	sb.WriteByte('\n')

	verdict := "no"
	if s.Monotone {
		verdict = "yes"
	}
	fmt.Fprintf(&sb, "max error strictly decreasing: %s\n", verdict)

	return sb.String()
}
