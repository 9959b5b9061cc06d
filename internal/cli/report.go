package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/tasksplit/internal/domain"
	"github.com/runoshun/tasksplit/internal/usecase"
)

// reportColors is the palette for the split summary.
var reportColors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow
}

// reportStyles holds the styles bound to one output writer.
type reportStyles struct {
	Header  lipgloss.Style
	Path    lipgloss.Style
	Muted   lipgloss.Style
	Pending lipgloss.Style
	Archive lipgloss.Style
}

// newReportStyles creates styles for w.
// The renderer detects the color profile of w, so non-terminal output stays plain.
func newReportStyles(w io.Writer) reportStyles {
	r := lipgloss.NewRenderer(w)
	return reportStyles{
		Header:  r.NewStyle().Bold(true).Foreground(reportColors.Primary),
		Path:    r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(reportColors.Muted),
		Pending: r.NewStyle().Foreground(reportColors.Warning),
		Archive: r.NewStyle().Foreground(reportColors.Success),
	}
}

// printSummary writes the per-output summary of a split.
// With routes set, the destination of every section is listed as well.
func printSummary(w io.Writer, out *usecase.SplitTasksOutput, routes bool) {
	s := newReportStyles(w)

	header := "Split complete:"
	if out.DryRun {
		header = "Preview (nothing written):"
	}
	_, _ = fmt.Fprintln(w, s.Header.Render(header))
	printDocumentLine(w, s, out.Pending)
	printDocumentLine(w, s, out.Archive)

	if !routes || len(out.Routes) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, s.Header.Render("Sections:"))
	for _, r := range out.Routes {
		dest := s.Archive.Render(string(r.Destination))
		if r.Destination == domain.DestinationPending {
			dest = s.Pending.Render(string(r.Destination))
		}
		_, _ = fmt.Fprintf(w, "  %s -> %s %s\n", r.Header, dest, s.Muted.Render(fmt.Sprintf("(%d task blocks)", r.Blocks)))
	}
}

func printDocumentLine(w io.Writer, s reportStyles, doc usecase.DocumentSummary) {
	_, _ = fmt.Fprintf(w, "  %s: %d sections, %d lines\n", s.Path.Render(doc.Path), doc.Sections, doc.Lines)
}
