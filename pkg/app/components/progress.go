package components

import (
	"fmt"
	"strings"

	"github.com/kerbaras/bookshelf/pkg/app/styles"
	"github.com/kerbaras/bookshelf/pkg/services"
	"github.com/kerbaras/bookshelf/pkg/sources"
)

// ProgressTracker follows a summary enrichment run: the title being fetched
// and a tally of finished lookups by outcome.
type ProgressTracker struct {
	current  *services.EnrichProgress
	outcomes map[sources.SummaryStatus]int
	done     int
	width    int
}

func NewProgressTracker(width int) *ProgressTracker {
	return &ProgressTracker{
		outcomes: make(map[sources.SummaryStatus]int),
		width:    width,
	}
}

func (p *ProgressTracker) Update(progress services.EnrichProgress) {
	prog := progress
	p.current = &prog
	if progress.Status == "complete" {
		p.outcomes[progress.Summary.Status]++
		p.done = progress.Current
	}
}

func (p *ProgressTracker) Clear() {
	p.current = nil
	p.outcomes = make(map[sources.SummaryStatus]int)
	p.done = 0
}

func (p *ProgressTracker) HasActive() bool {
	return p.current != nil && p.done < p.current.Total
}

func (p *ProgressTracker) View() string {
	if p.current == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Fetching summaries"))
	b.WriteString("\n")

	b.WriteString(renderProgressBar(p.done, p.current.Total, p.width-4))
	b.WriteString("\n")

	line := fmt.Sprintf("%d/%d %s", p.done, p.current.Total, p.current.Title)
	if p.current.Status == "fetching" {
		line = fmt.Sprintf("%d/%d fetching %s", p.current.Current, p.current.Total, p.current.Title)
	}
	b.WriteString(styles.StatusPending.Render(line))
	b.WriteString("\n")

	for _, status := range []sources.SummaryStatus{
		sources.SummaryFound,
		sources.SummaryNoDescription,
		sources.SummaryNotFound,
		sources.SummaryMissingCredentials,
		sources.SummaryFailed,
	} {
		n := p.outcomes[status]
		if n == 0 {
			continue
		}
		style := styles.MutedStyle
		switch status {
		case sources.SummaryFound:
			style = styles.StatusRead
		case sources.SummaryFailed, sources.SummaryMissingCredentials:
			style = styles.StatusError
		}
		b.WriteString(style.Render(fmt.Sprintf("%s: %d", status, n)))
		b.WriteString("\n")
	}

	return b.String()
}

func renderProgressBar(current, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	return styles.ProgressBarStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// SimpleProgress renders a simple progress bar
func SimpleProgress(current, total, width int) string {
	return renderProgressBar(current, total, width)
}
