package services

import (
	"context"
	"sync"

	"github.com/kerbaras/bookshelf/pkg/data"
	"github.com/kerbaras/bookshelf/pkg/sources"
)

// Mock implementations for testing

type mockRepository struct {
	loadFunc func() (data.Collection, error)
	saveFunc func(books data.Collection) error
	saves    []data.Collection
}

func (m *mockRepository) Load() (data.Collection, error) {
	if m.loadFunc != nil {
		return m.loadFunc()
	}
	return data.Collection{}, nil
}

func (m *mockRepository) Save(books data.Collection) error {
	m.saves = append(m.saves, books)
	if m.saveFunc != nil {
		return m.saveFunc(books)
	}
	return nil
}

type mockSource struct {
	mu        sync.Mutex
	fetchFunc func(ctx context.Context, title string) sources.Summary
	calls     []string
}

func (m *mockSource) FetchSummary(ctx context.Context, title string) sources.Summary {
	m.mu.Lock()
	m.calls = append(m.calls, title)
	m.mu.Unlock()
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, title)
	}
	return sources.Summary{Title: title, Status: sources.SummaryNotFound}
}
