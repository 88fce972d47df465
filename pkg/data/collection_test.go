package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	dune   = Book{Title: "Dune", Author: "Herbert", Year: 1965, Genre: "SciFi", Read: true}
	hobbit = Book{Title: "Hobbit", Author: "Tolkien", Year: 1937, Genre: "Fantasy", Read: false}
)

func TestAddAppendsInOrder(t *testing.T) {
	c := Collection{dune}
	c = Add(c, hobbit)

	assert.Equal(t, Collection{dune, hobbit}, c)

	stats := Statistics(c)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Read)
	assert.Equal(t, "50.00%", stats.PercentLabel())
}

func TestAddDoesNotAliasInput(t *testing.T) {
	base := make(Collection, 1, 4)
	base[0] = dune

	a := Add(base, hobbit)
	b := Add(base, Book{Title: "Emma"})

	assert.Equal(t, "Hobbit", a[1].Title)
	assert.Equal(t, "Emma", b[1].Title)
	assert.Len(t, base, 1)
}

func TestRemoveByTitle(t *testing.T) {
	c := Collection{dune, hobbit}

	c = RemoveByTitle(c, "Dune")

	assert.Equal(t, Collection{hobbit}, c)
}

func TestRemoveByTitleRemovesAllDuplicates(t *testing.T) {
	second := dune
	second.Author = "Frank Herbert"
	c := Collection{dune, hobbit, second}

	c = RemoveByTitle(c, "Dune")

	assert.Equal(t, Collection{hobbit}, c)
}

func TestRemoveByTitleIsCaseSensitive(t *testing.T) {
	c := Collection{dune, hobbit}

	assert.Equal(t, Collection{dune, hobbit}, RemoveByTitle(c, "dune"))
	assert.Equal(t, Collection{dune, hobbit}, RemoveByTitle(c, "DUNE"))
	assert.Equal(t, Collection{dune, hobbit}, RemoveByTitle(c, "Dun"))
}

func TestAddThenRemoveRestoresCollection(t *testing.T) {
	cases := []struct {
		name string
		base Collection
		book Book
	}{
		{"empty", Collection{}, dune},
		{"one", Collection{hobbit}, dune},
		{"several", Collection{hobbit, {Title: "Emma", Author: "Austen"}}, Book{Title: "Ulysses"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RemoveByTitle(Add(tc.base, tc.book), tc.book.Title)
			assert.Equal(t, tc.base, got)
		})
	}
}

func TestSearch(t *testing.T) {
	c := Collection{dune, hobbit, {Title: "Emma", Author: "Jane Austen"}}

	tests := []struct {
		query string
		want  []string
	}{
		{"dune", []string{"Dune"}},
		{"DUNE", []string{"Dune"}},
		{"tolk", []string{"Hobbit"}},
		{"AUSTEN", []string{"Emma"}},
		{"e", []string{"Dune", "Hobbit", "Emma"}},
		{"nothing here", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, Titles(Search(c, tt.query)))
		})
	}
}

func TestSearchEmptyQueryMatchesEverything(t *testing.T) {
	c := Collection{dune, hobbit}

	assert.Equal(t, []Book{dune, hobbit}, Search(c, ""))
}

func TestSearchEmptyCollection(t *testing.T) {
	results := Search(Collection{}, "dune")

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestFuzzySearch(t *testing.T) {
	c := Collection{
		{Title: "The Lord of the Rings", Author: "Tolkien"},
		dune,
	}

	assert.Equal(t, []string{"The Lord of the Rings"}, Titles(FuzzySearch(c, "lotr")))
	assert.Equal(t, []string{"Dune"}, Titles(FuzzySearch(c, "hrbrt")))
	assert.Len(t, FuzzySearch(c, ""), 2)
	assert.Empty(t, FuzzySearch(c, "zzz"))
}

func TestStatisticsEmpty(t *testing.T) {
	stats := Statistics(Collection{})

	assert.Equal(t, Stats{Total: 0, Read: 0, PercentRead: 0}, stats)
	assert.Equal(t, "0.00%", stats.PercentLabel())
}

func TestStatisticsNil(t *testing.T) {
	assert.Equal(t, Stats{}, Statistics(nil))
}

func TestStatisticsAllRead(t *testing.T) {
	stats := Statistics(Collection{dune, dune, dune})

	assert.Equal(t, 3, stats.Read)
	assert.InDelta(t, 100.0, stats.PercentRead, 1e-9)
}
