package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/kerbaras/bookshelf/pkg/config"
	"github.com/kerbaras/bookshelf/pkg/data"
	"github.com/kerbaras/bookshelf/pkg/sources"
)

// Repository is the persistence the controller needs.
type Repository interface {
	Load() (data.Collection, error)
	Save(books data.Collection) error
}

// LibraryController owns the current collection for a session. Every
// mutation is saved before it becomes the current value.
type LibraryController struct {
	repo   Repository
	source sources.SummarySource
	logger *slog.Logger
	books  data.Collection
}

func NewLibraryController(repo Repository, source sources.SummarySource, logger *slog.Logger) *LibraryController {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LibraryController{repo: repo, source: source, logger: logger, books: data.Collection{}}
}

// NewLibraryControllerFromConfig wires the JSON store and Google Books
// source described by cfg.
func NewLibraryControllerFromConfig(cfg *config.Config, logger *slog.Logger) *LibraryController {
	repo := data.NewStore(cfg.LibraryPath, logger)
	source := sources.NewGoogleBooks(sources.GoogleBooksOptions{
		BaseURL:       cfg.BaseURL,
		APIKey:        cfg.APIKey,
		RequireAPIKey: cfg.RequireAPIKey,
		Timeout:       cfg.Timeout,
		Logger:        logger,
	})
	return NewLibraryController(repo, source, logger)
}

// Open loads the collection from the repository, replacing the current one.
func (c *LibraryController) Open() error {
	books, err := c.repo.Load()
	if err != nil {
		return err
	}
	c.books = books
	c.logger.Info("library opened", "books", len(books))
	return nil
}

// Books returns a copy of the current collection.
func (c *LibraryController) Books() data.Collection {
	return slices.Clone(c.books)
}

func (c *LibraryController) Titles() []string {
	return data.Titles(c.books)
}

func (c *LibraryController) Add(book data.Book) error {
	next := data.Add(c.books, book)
	if err := c.repo.Save(next); err != nil {
		return fmt.Errorf("failed to save library: %w", err)
	}
	c.books = next
	c.logger.Info("book added", "title", book.Title, "books", len(next))
	return nil
}

// AddInput validates raw form values and adds the resulting book.
func (c *LibraryController) AddInput(in BookInput) (data.Book, error) {
	book, err := ParseBookInput(in)
	if err != nil {
		return data.Book{}, err
	}
	if err := c.Add(book); err != nil {
		return data.Book{}, err
	}
	return book, nil
}

// Remove deletes every book titled exactly title and reports how many went.
func (c *LibraryController) Remove(title string) (int, error) {
	next := data.RemoveByTitle(c.books, title)
	removed := len(c.books) - len(next)
	if err := c.repo.Save(next); err != nil {
		return 0, fmt.Errorf("failed to save library: %w", err)
	}
	c.books = next
	c.logger.Info("book removed", "title", title, "removed", removed, "books", len(next))
	return removed, nil
}

func (c *LibraryController) Search(query string) []data.Book {
	return data.Search(c.books, query)
}

func (c *LibraryController) FuzzySearch(query string) []data.Book {
	return data.FuzzySearch(c.books, query)
}

func (c *LibraryController) Stats() data.Stats {
	return data.Statistics(c.books)
}

func (c *LibraryController) Breakdown() (*data.Breakdown, error) {
	return data.Analyze(c.books)
}

func (c *LibraryController) Summary(ctx context.Context, title string) sources.Summary {
	return c.source.FetchSummary(ctx, title)
}

// NewEnricher returns an Enricher backed by the controller's summary source.
func (c *LibraryController) NewEnricher(interval time.Duration) *Enricher {
	return NewEnricher(c.source, interval)
}
