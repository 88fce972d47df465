package services

import (
	"context"
	"sync"
	"time"

	"github.com/kerbaras/bookshelf/pkg/data"
	"github.com/kerbaras/bookshelf/pkg/sources"
)

// EnrichProgress reports one step of an Enrich run.
type EnrichProgress struct {
	Title   string
	Current int
	Total   int
	Status  string // "fetching", "complete"
	Summary sources.Summary
}

// Enricher looks up summaries for a list of books one title at a time,
// spacing the requests out so a large export does not hammer the API.
type Enricher struct {
	source       sources.SummarySource
	interval     time.Duration
	progressChan chan EnrichProgress
	closeOnce    sync.Once
}

func NewEnricher(source sources.SummarySource, interval time.Duration) *Enricher {
	return &Enricher{
		source:       source,
		interval:     interval,
		progressChan: make(chan EnrichProgress, 100),
	}
}

// GetProgressChannel returns the channel for receiving progress updates.
func (e *Enricher) GetProgressChannel() <-chan EnrichProgress {
	return e.progressChan
}

// Enrich fetches one summary per distinct title. It stops early when ctx is
// cancelled and returns what it has so far.
func (e *Enricher) Enrich(ctx context.Context, books []data.Book) map[string]sources.Summary {
	titles := distinctTitles(books)
	results := make(map[string]sources.Summary, len(titles))

	var ticker *time.Ticker
	if e.interval > 0 {
		ticker = time.NewTicker(e.interval)
		defer ticker.Stop()
	}

	for i, title := range titles {
		if i > 0 && ticker != nil {
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return results
			}
		}
		if ctx.Err() != nil {
			return results
		}

		e.sendProgress(EnrichProgress{Title: title, Current: i + 1, Total: len(titles), Status: "fetching"})

		summary := e.source.FetchSummary(ctx, title)
		results[title] = summary

		e.sendProgress(EnrichProgress{Title: title, Current: i + 1, Total: len(titles), Status: "complete", Summary: summary})
	}

	return results
}

// sendProgress sends a progress update (non-blocking)
func (e *Enricher) sendProgress(progress EnrichProgress) {
	select {
	case e.progressChan <- progress:
	default:
		// Channel full, skip this update
	}
}

// Close closes the progress channel. The Enricher must not be used after.
func (e *Enricher) Close() {
	e.closeOnce.Do(func() { close(e.progressChan) })
}

func distinctTitles(books []data.Book) []string {
	seen := make(map[string]bool, len(books))
	titles := make([]string, 0, len(books))
	for _, book := range books {
		if seen[book.Title] {
			continue
		}
		seen[book.Title] = true
		titles = append(titles, book.Title)
	}
	return titles
}
