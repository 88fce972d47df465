package screens

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/bookshelf/pkg/data"
	"github.com/kerbaras/bookshelf/pkg/services"
	"github.com/kerbaras/bookshelf/pkg/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	books data.Collection
	saves int
}

func (r *memoryRepo) Load() (data.Collection, error) {
	return r.books, nil
}

func (r *memoryRepo) Save(books data.Collection) error {
	r.books = books
	r.saves++
	return nil
}

type stubSource struct{}

func (stubSource) FetchSummary(_ context.Context, title string) sources.Summary {
	return sources.Summary{Title: title, Status: sources.SummaryFound, Text: "A summary of " + title}
}

// ctxSource fails once its context is cancelled.
type ctxSource struct{}

func (ctxSource) FetchSummary(ctx context.Context, title string) sources.Summary {
	if err := ctx.Err(); err != nil {
		return sources.Summary{Title: title, Status: sources.SummaryFailed, Err: err}
	}
	return sources.Summary{Title: title, Status: sources.SummaryNotFound}
}

func newController(t *testing.T, books ...data.Book) (*services.LibraryController, *memoryRepo) {
	t.Helper()
	return newControllerWithSource(t, stubSource{}, books...)
}

func newControllerWithSource(t *testing.T, source sources.SummarySource, books ...data.Book) (*services.LibraryController, *memoryRepo) {
	t.Helper()
	repo := &memoryRepo{books: books}
	controller := services.NewLibraryController(repo, source, nil)
	require.NoError(t, controller.Open())
	return controller, repo
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRootScreenCyclesTabs(t *testing.T) {
	controller, _ := newController(t)
	root := NewRootScreen(controller)
	root.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Contains(t, root.View(), "Library (0 books)")

	root.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, addView, root.currentView)
	assert.Contains(t, root.View(), "Add Book")

	root.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	root.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, summaryView, root.currentView)
}

func TestRootScreenQuitOnlyOutsideTextInput(t *testing.T) {
	controller, _ := newController(t)
	root := NewRootScreen(controller)

	_, cmd := root.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	root.currentView = addView
	root.Update(keyRunes("q"))
	assert.Equal(t, "q", root.add.inputs[fieldTitle].Value())
}

func TestAddScreenSubmit(t *testing.T) {
	controller, repo := newController(t)
	screen := NewAddScreen(controller)

	screen.inputs[fieldTitle].SetValue("Dune")
	screen.inputs[fieldAuthor].SetValue("Herbert")
	screen.inputs[fieldYear].SetValue("1965")
	screen.inputs[fieldGenre].SetValue("SciFi")
	screen.inputs[fieldRead].SetValue("yes")

	cmd := screen.submit()
	require.NotNil(t, cmd)
	assert.IsType(t, libraryChangedMsg{}, cmd())

	assert.Equal(t, 1, repo.saves)
	assert.Equal(t, data.Collection{{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "SciFi", Read: true}}, controller.Books())
	assert.Equal(t, "Added Dune by Herbert (1965) - SciFi - Read", screen.notice)
	assert.Empty(t, screen.inputs[fieldTitle].Value())
}

func TestAddScreenValidation(t *testing.T) {
	controller, repo := newController(t)
	screen := NewAddScreen(controller)
	screen.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	screen.inputs[fieldYear].SetValue("abcd")

	assert.Nil(t, screen.submit())
	assert.Equal(t, 0, repo.saves)
	assert.Equal(t, "is required", screen.fieldErrs["title"])
	assert.Equal(t, "must be a whole number", screen.fieldErrs["year"])
	assert.Contains(t, screen.View(), "Title is required")
}

func TestLibraryScreenDelete(t *testing.T) {
	controller, repo := newController(t,
		data.Book{Title: "Dune", Author: "Herbert", Year: 1965},
		data.Book{Title: "Emma", Author: "Austen", Year: 1815},
	)
	screen := NewLibraryScreen(controller)
	screen.Init()

	_, cmd := screen.Update(keyRunes("d"))
	require.NotNil(t, cmd)

	assert.Equal(t, 1, repo.saves)
	assert.Len(t, controller.Books(), 1)
	assert.Equal(t, "Emma", controller.Books()[0].Title)
	assert.Contains(t, screen.notice, "Removed 1 book(s)")
}

func TestLibraryScreenOpensSummary(t *testing.T) {
	controller, _ := newController(t, data.Book{Title: "Dune"})
	screen := NewLibraryScreen(controller)
	screen.Init()

	_, cmd := screen.Update(keyRunes("s"))
	require.NotNil(t, cmd)
	assert.Equal(t, SwitchScreenMsg{Screen: "summary", Data: "Dune"}, cmd())
}

func TestSearchScreen(t *testing.T) {
	controller, _ := newController(t,
		data.Book{Title: "Dune", Author: "Herbert"},
		data.Book{Title: "Emma", Author: "Austen"},
	)
	screen := NewSearchScreen(controller)

	screen.input.SetValue("AUST")
	screen.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, screen.results.Items, 1)
	assert.Equal(t, "Emma", screen.results.Items[0].Title)
	assert.False(t, screen.input.Focused())

	screen.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	assert.True(t, screen.fuzzy)
}

func TestSummaryScreenFetch(t *testing.T) {
	controller, _ := newController(t, data.Book{Title: "Dune"}, data.Book{Title: "Emma"})
	screen := NewSummaryScreen(controller)
	screen.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	screen.cycleTitle(1)
	assert.Equal(t, "Dune", screen.input.Value())
	screen.cycleTitle(-1)
	assert.Equal(t, "Emma", screen.input.Value())

	cmd := screen.fetch()
	require.NotNil(t, cmd)
	assert.True(t, screen.fetching)

	screen.Update(cmd())
	assert.False(t, screen.fetching)
	require.NotNil(t, screen.result)
	assert.Equal(t, sources.SummaryFound, screen.result.Status)
	assert.True(t, strings.Contains(screen.View(), "A summary of Emma"))
	assert.Contains(t, screen.View(), "┏", "found summaries use the active card")

	screen.result = &sources.Summary{Title: "Emma", Status: sources.SummaryNotFound}
	assert.Contains(t, screen.View(), "╭")
	assert.NotContains(t, screen.View(), "┏")
}

func TestSummaryScreenSendsBlankTitle(t *testing.T) {
	controller, _ := newControllerWithSource(t, ctxSource{})
	screen := NewSummaryScreen(controller)

	cmd := screen.fetch()
	require.NotNil(t, cmd)
	assert.True(t, screen.fetching)

	msg, ok := cmd().(summaryMsg)
	require.True(t, ok)
	assert.Equal(t, "", msg.summary.Title)
	assert.Equal(t, sources.SummaryNotFound, msg.summary.Status)
}

func TestSummaryScreenCloseCancelsLookup(t *testing.T) {
	controller, _ := newControllerWithSource(t, ctxSource{})
	screen := NewSummaryScreen(controller)
	screen.SetTitle("Dune")

	cmd := screen.fetch()
	screen.Close()

	msg := cmd().(summaryMsg)
	assert.Equal(t, sources.SummaryFailed, msg.summary.Status)
	assert.ErrorIs(t, msg.summary.Err, context.Canceled)
}

func TestRootScreenQuitCancelsSummary(t *testing.T) {
	controller, _ := newController(t)
	root := NewRootScreen(controller)

	root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.ErrorIs(t, root.summary.ctx.Err(), context.Canceled)
}
