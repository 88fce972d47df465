package sources

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/kerbaras/bookshelf/pkg/utils"
)

const (
	DefaultBaseURL = "https://www.googleapis.com/books/v1"
	DefaultTimeout = 10 * time.Second
)

type volume struct {
	VolumeInfo *struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
	} `json:"volumeInfo"`
}

type volumesResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []volume `json:"items"`
}

type GoogleBooksOptions struct {
	BaseURL string
	APIKey  string
	// RequireAPIKey makes a missing key short-circuit every lookup instead
	// of falling back to an unauthenticated request.
	RequireAPIKey bool
	Timeout       time.Duration
	Logger        *slog.Logger
}

// GoogleBooks fetches summaries from the Google Books volumes API. Lookups
// that reached an answer are memoized per title for the life of the value.
type GoogleBooks struct {
	api           *utils.API
	apiKey        string
	requireAPIKey bool
	logger        *slog.Logger

	mu   sync.Mutex
	memo map[string]Summary
}

func NewGoogleBooks(opts GoogleBooksOptions) *GoogleBooks {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &GoogleBooks{
		api:           utils.NewAPI(strings.TrimRight(opts.BaseURL, "/"), opts.Timeout),
		apiKey:        opts.APIKey,
		requireAPIKey: opts.RequireAPIKey,
		logger:        opts.Logger,
		memo:          make(map[string]Summary),
	}
}

func (g *GoogleBooks) FetchSummary(ctx context.Context, title string) Summary {
	if g.apiKey == "" && g.requireAPIKey {
		g.logger.Warn("summary lookup skipped, no API key configured", "title", title)
		return Summary{Title: title, Status: SummaryMissingCredentials}
	}

	g.mu.Lock()
	cached, ok := g.memo[title]
	g.mu.Unlock()
	if ok {
		g.logger.Debug("summary served from memo", "title", title, "status", cached.Status)
		return cached
	}

	summary := g.fetch(ctx, title)
	if summary.cacheable() {
		g.mu.Lock()
		g.memo[title] = summary
		g.mu.Unlock()
	}

	if summary.Status == SummaryFailed {
		g.logger.Warn("summary lookup failed", "title", title, "error", summary.Err)
	} else {
		g.logger.Debug("summary lookup finished", "title", title, "status", summary.Status)
	}
	return summary
}

func (g *GoogleBooks) fetch(ctx context.Context, title string) Summary {
	params := url.Values{"q": {"intitle:" + title}}
	if g.apiKey != "" {
		params.Set("key", g.apiKey)
	}

	var resp volumesResponse
	if err := g.api.Get(ctx, "/volumes", params, &resp); err != nil {
		return Summary{Title: title, Status: SummaryFailed, Err: err}
	}

	if len(resp.Items) == 0 {
		return Summary{Title: title, Status: SummaryNotFound}
	}

	info := resp.Items[0].VolumeInfo
	if info == nil {
		return Summary{Title: title, Status: SummaryFailed, Err: errors.New("first result has no volumeInfo")}
	}
	if info.Description == nil || strings.TrimSpace(*info.Description) == "" {
		return Summary{Title: title, Status: SummaryNoDescription}
	}
	return Summary{Title: title, Status: SummaryFound, Text: *info.Description}
}
