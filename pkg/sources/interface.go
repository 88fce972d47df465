package sources

import "context"

// SummarySource looks up a short description for a book title. It never
// fails: problems are reported through the returned Summary.
type SummarySource interface {
	FetchSummary(ctx context.Context, title string) Summary
}
