package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vk/taskorder/internal/scheduler"
)

type palette struct {
	title   lipgloss.Style
	index   lipgloss.Style
	hours   lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	muted   lipgloss.Style
}

// newPalette binds styles to w so colour is only emitted on terminals.
func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		index:   r.NewStyle().Foreground(lipgloss.Color("#5A5A5A")).Width(5).Align(lipgloss.Right),
		hours:   r.NewStyle().Foreground(lipgloss.Color("#04B575")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F87")),
		warning: r.NewStyle().Foreground(lipgloss.Color("#FFB86C")),
		muted:   r.NewStyle().Faint(true),
	}
}

func writeText(w io.Writer, tasks []scheduler.Task, res scheduler.Result) error {
	p := newPalette(w)
	var b strings.Builder

	if res.ErrorMessage != "" {
		b.WriteString(p.failure.Render("✗ "+res.ErrorMessage) + "\n")
		if len(res.Cycle) > 0 {
			b.WriteString(p.muted.Render("  cycle: "+strings.Join(res.Cycle, " -> ")) + "\n")
		}
	} else {
		hours := make(map[string]float64, len(tasks))
		var total float64
		for _, t := range tasks {
			hours[t.Title] = t.EstimatedHours
			total += t.EstimatedHours
		}

		header := fmt.Sprintf("Recommended order (%d %s, %sh total)", len(res.Order), plural(len(res.Order), "task"), formatHours(total))
		b.WriteString(p.title.Render(header) + "\n")
		for i, title := range res.Order {
			b.WriteString(p.index.Render(strconv.Itoa(i+1)+".") + " " + title + "  " + p.hours.Render(formatHours(hours[title])+"h") + "\n")
		}
		for _, d := range res.Dangling {
			b.WriteString(p.warning.Render(fmt.Sprintf("! task %q depends on unknown task %q (ignored)", d.Task, d.Dependency)) + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
