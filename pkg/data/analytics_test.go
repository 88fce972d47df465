package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDuckDBInMemory(t *testing.T) {
	db, err := InitDuckDB("")
	require.NoError(t, err)
	defer db.Close()

	var one int
	require.NoError(t, db.QueryRow(`SELECT 1`).Scan(&one))
	assert.Equal(t, 1, one)
}

func TestAnalyze(t *testing.T) {
	c := Collection{
		dune,
		hobbit,
		{Title: "Foundation", Author: "Asimov", Year: 1951, Genre: "SciFi", Read: false},
		{Title: "Neuromancer", Author: "Gibson", Year: 1984, Genre: "SciFi", Read: true},
		{Title: "Untitled", Year: 1969},
	}

	breakdown, err := Analyze(c)
	require.NoError(t, err)

	assert.Equal(t, []GroupCount{
		{Key: "SciFi", Total: 3, Read: 2},
		{Key: "Fantasy", Total: 1, Read: 0},
		{Key: "Unknown", Total: 1, Read: 0},
	}, breakdown.Genres)

	assert.Equal(t, []GroupCount{
		{Key: "1930s", Total: 1, Read: 0},
		{Key: "1950s", Total: 1, Read: 0},
		{Key: "1960s", Total: 2, Read: 1},
		{Key: "1980s", Total: 1, Read: 1},
	}, breakdown.Decades)
}

func TestAnalyzeEmpty(t *testing.T) {
	breakdown, err := Analyze(Collection{})
	require.NoError(t, err)

	assert.Empty(t, breakdown.Genres)
	assert.Empty(t, breakdown.Decades)
}
