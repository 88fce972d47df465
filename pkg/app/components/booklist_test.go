package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kerbaras/bookshelf/pkg/data"
)

func sampleBooks(n int) []data.Book {
	books := make([]data.Book, n)
	for i := range books {
		books[i] = data.Book{Title: fmt.Sprintf("Book %d", i+1), Author: "Author", Year: 2000 + i}
	}
	return books
}

func TestNewBookList(t *testing.T) {
	list := NewBookList()

	if list == nil {
		t.Fatal("Expected book list to be created")
	}

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex)
	}

	if len(list.Items) != 0 {
		t.Errorf("Expected 0 items, got %d", len(list.Items))
	}
}

func TestSetItemsClampsSelection(t *testing.T) {
	list := NewBookList()
	list.SetItems(sampleBooks(3))
	list.SelectedIndex = 2

	list.SetItems(sampleBooks(1))

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to be clamped to 0, got %d", list.SelectedIndex)
	}

	list.SetItems(nil)
	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0 for empty list, got %d", list.SelectedIndex)
	}
}

func TestNextPrevWrap(t *testing.T) {
	list := NewBookList()
	list.SetItems(sampleBooks(3))

	list.Next()
	list.Next()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected SelectedIndex 2, got %d", list.SelectedIndex)
	}

	list.Next()
	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to wrap to 0, got %d", list.SelectedIndex)
	}

	list.Prev()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected SelectedIndex to wrap to 2, got %d", list.SelectedIndex)
	}
}

func TestNextPrevEmptyList(t *testing.T) {
	list := NewBookList()

	list.Next()
	list.Prev()

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to remain 0, got %d", list.SelectedIndex)
	}
}

func TestSelected(t *testing.T) {
	list := NewBookList()

	if list.Selected() != nil {
		t.Error("Expected nil for empty list")
	}

	list.SetItems(sampleBooks(2))
	list.Next()

	selected := list.Selected()
	if selected == nil {
		t.Fatal("Expected selected item")
	}
	if selected.Title != "Book 2" {
		t.Errorf("Expected 'Book 2', got '%s'", selected.Title)
	}
}

func TestViewEmptyList(t *testing.T) {
	list := NewBookList()

	if !strings.Contains(list.View(), "No books in library") {
		t.Error("Expected 'No books in library' message")
	}

	list.EmptyMessage = "No matches"
	if !strings.Contains(list.View(), "No matches") {
		t.Error("Expected custom empty message")
	}
}

func TestViewWithItems(t *testing.T) {
	list := NewBookList()
	list.SetItems([]data.Book{
		{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "SciFi", Read: true},
		{Title: "Emma", Author: "Austen", Year: 1815},
	})

	view := list.View()

	for _, want := range []string{"Dune", "by Herbert (1965)", "SciFi", "Read", "Emma", "Unread"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in view", want)
		}
	}
	if strings.Contains(view, "Showing") {
		t.Error("Expected no scroll footer when all books fit")
	}
}

func TestViewScrollsAroundSelection(t *testing.T) {
	list := NewBookList()
	list.Height = 4
	list.SetItems(sampleBooks(10))
	list.SelectedIndex = 9

	view := list.View()

	if !strings.Contains(view, "Book 10") {
		t.Error("Expected selected book to be visible")
	}
	if strings.Contains(view, "Book 1 ") {
		t.Error("Expected first book to be scrolled out")
	}
	if !strings.Contains(view, "Showing 7-10 of 10 books") {
		t.Errorf("Expected scroll footer, got:\n%s", view)
	}
}
