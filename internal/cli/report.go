package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/fixed-skips/internal/domain"
)

// reportStyles holds the styles used on the diagnostic stream.
// Colors are dropped automatically when w is not a terminal.
type reportStyles struct {
	header   lipgloss.Style
	match    lipgloss.Style
	advisory lipgloss.Style
}

func newReportStyles(w io.Writer) reportStyles {
	r := lipgloss.NewRenderer(w)
	return reportStyles{
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#D63031")),
		match:    r.NewStyle().PaddingLeft(4),
		advisory: r.NewStyle().Foreground(lipgloss.Color("#636E72")),
	}
}

// renderReport writes the stale skip diagnostic.
func renderReport(w io.Writer, report *domain.Report) {
	s := newReportStyles(w)

	issues := make([]string, len(report.Issues))
	for i, n := range report.Issues {
		issues[i] = "#" + n
	}
	noun := "issue"
	if len(issues) > 1 {
		noun = "issues"
	}

	_, _ = fmt.Fprintln(w, s.header.Render(fmt.Sprintf(
		"This PR claims to fix %s %s, but these skips/FIXMEs still reference it:",
		noun, strings.Join(issues, ", "))))
	_, _ = fmt.Fprintln(w)
	for _, m := range report.Matches {
		_, _ = fmt.Fprintln(w, s.match.Render(m.String()))
	}
	_, _ = fmt.Fprintln(w)
	for _, line := range strings.Split(domain.Advisory, "\n") {
		_, _ = fmt.Fprintln(w, s.advisory.Render(line))
	}
}
