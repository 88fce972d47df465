package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/bookshelf/pkg/app/styles"
	"github.com/kerbaras/bookshelf/pkg/data"
)

// BookList is a scrollable, selectable list of books.
type BookList struct {
	Items         []data.Book
	SelectedIndex int
	Width         int
	Height        int
	EmptyMessage  string
}

func NewBookList() *BookList {
	return &BookList{
		Items:         []data.Book{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
		EmptyMessage:  "No books in library",
	}
}

func (m *BookList) SetItems(items []data.Book) {
	m.Items = items
	if m.SelectedIndex >= len(items) && len(items) > 0 {
		m.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		m.SelectedIndex = 0
	}
}

func (m *BookList) Next() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.Items) {
		m.SelectedIndex = 0
	}
}

func (m *BookList) Prev() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.Items) - 1
	}
}

func (m *BookList) Selected() *data.Book {
	if len(m.Items) == 0 || m.SelectedIndex >= len(m.Items) {
		return nil
	}
	return &m.Items[m.SelectedIndex]
}

// visibleRange returns the window of rows around the selection that fits
// in Height.
func (m *BookList) visibleRange() (int, int) {
	rows := m.Height
	if rows < 1 {
		rows = 1
	}
	start, end := 0, len(m.Items)
	if end > rows {
		start = m.SelectedIndex - rows/2
		if start < 0 {
			start = 0
		}
		end = start + rows
		if end > len(m.Items) {
			end = len(m.Items)
			start = end - rows
		}
	}
	return start, end
}

func (m *BookList) View() string {
	if len(m.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render(m.EmptyMessage)
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder
	start, end := m.visibleRange()

	for i := start; i < end; i++ {
		book := m.Items[i]

		marker := "  "
		title := styles.TextStyle.Render(book.Title)
		if i == m.SelectedIndex {
			marker = styles.SelectedStyle.Render("> ")
			title = styles.SelectedStyle.Render(book.Title)
		}

		genre := book.Genre
		if genre == "" {
			genre = "-"
		}
		details := styles.MutedStyle.Render(fmt.Sprintf("by %s (%d) • %s", book.Author, book.Year, genre))
		status := styles.ReadStyle(book.Read).Render(book.ReadLabel())

		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", marker, title, details, status))
	}

	if end-start < len(m.Items) {
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Render(
			fmt.Sprintf("Showing %d-%d of %d books", start+1, end, len(m.Items)),
		))
		b.WriteString("\n")
	}

	return b.String()
}
