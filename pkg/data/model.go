package data

import "fmt"

type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Genre  string `json:"genre"`
	Read   bool   `json:"read"`
}

// String renders the single-line form used by list and search output.
func (b Book) String() string {
	return fmt.Sprintf("%s by %s (%d) - %s - %s", b.Title, b.Author, b.Year, b.Genre, b.ReadLabel())
}

func (b Book) ReadLabel() string {
	if b.Read {
		return "Read"
	}
	return "Unread"
}

// Collection is the ordered list of books, insertion order preserved.
// Duplicate titles are allowed.
type Collection []Book

type Stats struct {
	Total       int
	Read        int
	PercentRead float64
}

func (s Stats) Unread() int {
	return s.Total - s.Read
}

// PercentLabel formats PercentRead with two decimals, e.g. "50.00%".
func (s Stats) PercentLabel() string {
	return fmt.Sprintf("%.2f%%", s.PercentRead)
}
