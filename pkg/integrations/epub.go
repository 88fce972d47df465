package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/bookshelf/pkg/data"
	"github.com/kerbaras/bookshelf/pkg/sources"
)

// EPubBuilder renders the library as a small reading catalog: an overview
// section followed by one section per genre.
type EPubBuilder struct {
	title string
}

func NewEPubBuilder(title string) *EPubBuilder {
	if title == "" {
		title = "My Library"
	}
	return &EPubBuilder{title: title}
}

func (p *EPubBuilder) Export(books []data.Book, summaries map[string]sources.Summary, outputPath string) (string, error) {
	if len(books) == 0 {
		return "", fmt.Errorf("no books to export")
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	e, err := epub.NewEpub(p.title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}
	e.SetAuthor("bookshelf")
	e.SetLang("en")
	e.SetDescription(fmt.Sprintf("Catalog of %d books", len(books)))

	if _, err := e.AddSection(overviewHTML(books), "Overview", "", ""); err != nil {
		return "", fmt.Errorf("failed to add overview: %w", err)
	}

	for _, genre := range groupByGenre(books) {
		body := genreHTML(genre.name, genre.books, summaries)
		if _, err := e.AddSection(body, genre.name, "", ""); err != nil {
			return "", fmt.Errorf("failed to add section %s: %w", genre.name, err)
		}
	}

	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}

	return outputPath, nil
}

type genreGroup struct {
	name  string
	books []data.Book
}

// groupByGenre keeps collection order inside each genre; genres are sorted
// by name with untitled genres last.
func groupByGenre(books []data.Book) []genreGroup {
	index := map[string]int{}
	var groups []genreGroup
	for _, book := range books {
		name := strings.TrimSpace(book.Genre)
		if name == "" {
			name = "Unknown"
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, genreGroup{name: name})
		}
		groups[i].books = append(groups[i].books, book)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if (groups[i].name == "Unknown") != (groups[j].name == "Unknown") {
			return groups[j].name == "Unknown"
		}
		return groups[i].name < groups[j].name
	})
	return groups
}

func overviewHTML(books []data.Book) string {
	stats := data.Statistics(books)

	var b strings.Builder
	b.WriteString("<h1>Overview</h1>\n")
	b.WriteString(fmt.Sprintf("<p>Total books: %d</p>\n", stats.Total))
	b.WriteString(fmt.Sprintf("<p>Books read: %d</p>\n", stats.Read))
	b.WriteString(fmt.Sprintf("<p>Percentage read: %s</p>\n", stats.PercentLabel()))
	return b.String()
}

func genreHTML(genre string, books []data.Book, summaries map[string]sources.Summary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(genre)))

	for _, book := range books {
		b.WriteString(fmt.Sprintf("<h2>%s</h2>\n", html.EscapeString(book.Title)))
		b.WriteString(fmt.Sprintf("<p><em>%s</em> (%d) &#8226; %s</p>\n",
			html.EscapeString(book.Author), book.Year, book.ReadLabel()))

		if summary, ok := summaries[book.Title]; ok && summary.OK() {
			b.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(summary.Text)))
		}
	}

	return b.String()
}
