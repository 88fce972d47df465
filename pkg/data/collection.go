package data

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Add appends book to the end of the collection.
func Add(c Collection, book Book) Collection {
	out := make(Collection, 0, len(c)+1)
	out = append(out, c...)
	return append(out, book)
}

// RemoveByTitle returns a new collection without every book whose title is
// exactly title. Matching is case-sensitive and removes all duplicates.
func RemoveByTitle(c Collection, title string) Collection {
	out := make(Collection, 0, len(c))
	for _, book := range c {
		if book.Title != title {
			out = append(out, book)
		}
	}
	return out
}

// Search returns the books whose title or author contains query, ignoring
// case. An empty query matches every book.
func Search(c Collection, query string) []Book {
	q := strings.ToLower(query)
	results := []Book{}
	for _, book := range c {
		if strings.Contains(strings.ToLower(book.Title), q) || strings.Contains(strings.ToLower(book.Author), q) {
			results = append(results, book)
		}
	}
	return results
}

// FuzzySearch is like Search but matches query as an in-order subsequence,
// so "lotr" finds "Lord of the Rings".
func FuzzySearch(c Collection, query string) []Book {
	results := []Book{}
	for _, book := range c {
		if fuzzy.MatchFold(query, book.Title) || fuzzy.MatchFold(query, book.Author) {
			results = append(results, book)
		}
	}
	return results
}

func Statistics(c Collection) Stats {
	stats := Stats{Total: len(c)}
	for _, book := range c {
		if book.Read {
			stats.Read++
		}
	}
	if stats.Total > 0 {
		stats.PercentRead = float64(stats.Read) / float64(stats.Total) * 100
	}
	return stats
}

// Titles lists the titles in collection order, duplicates included.
func Titles(c Collection) []string {
	titles := make([]string, len(c))
	for i, book := range c {
		titles[i] = book.Title
	}
	return titles
}
