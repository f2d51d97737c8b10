package lesson

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).MarginBottom(1)
	proseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(76)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	plotStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Runner executes a lesson's cells in order and renders the results.
type Runner struct {
	out io.Writer
}

func NewRunner(out io.Writer) *Runner {
	return &Runner{out: out}
}

func (r *Runner) Run(l *Lesson) error {
	fmt.Fprintln(r.out, titleStyle.Render(l.Title))

	for i, cell := range l.Cells {
		if cell.Prose != "" {
			fmt.Fprintln(r.out, proseStyle.Render(cell.Prose))
			fmt.Fprintln(r.out)
		}
		if cell.Compute == nil {
			continue
		}

		res, err := cell.Compute()
		if err != nil {
			return fmt.Errorf("lesson %s, cell %d: %w", l.Name, i+1, err)
		}

		for _, line := range res.Text {
			fmt.Fprintln(r.out, resultStyle.Render("  "+line))
		}
		if len(res.Series) > 1 {
			graph := asciigraph.Plot(res.Series,
				asciigraph.Height(10),
				asciigraph.Width(70),
				asciigraph.Caption(res.SeriesCaption),
			)
			fmt.Fprintln(r.out, plotStyle.Render(graph))
		}
		if res.Canvas != nil {
			fmt.Fprint(r.out, res.Canvas.String())
		}
		fmt.Fprintln(r.out)
	}
	return nil
}
