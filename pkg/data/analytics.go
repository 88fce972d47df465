package data

import (
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// GroupCount is one row of a breakdown: how many books share a key and how
// many of those are read.
type GroupCount struct {
	Key   string
	Total int
	Read  int
}

type Breakdown struct {
	Genres  []GroupCount
	Decades []GroupCount
}

// InitDuckDB opens a DuckDB database. An empty path is an in-memory database.
func InitDuckDB(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Analyze loads c into a throwaway in-memory DuckDB table and groups it by
// genre and by publication decade.
func Analyze(c Collection) (*Breakdown, error) {
	db, err := InitDuckDB("")
	if err != nil {
		return nil, fmt.Errorf("failed to open analytics db: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE books (
		title VARCHAR,
		author VARCHAR,
		published INTEGER,
		genre VARCHAR,
		is_read BOOLEAN
	)`); err != nil {
		return nil, fmt.Errorf("failed to create books table: %w", err)
	}

	for _, book := range c {
		if _, err := db.Exec(
			`INSERT INTO books VALUES (?, ?, ?, ?, ?)`,
			book.Title, book.Author, book.Year, book.Genre, book.Read,
		); err != nil {
			return nil, fmt.Errorf("failed to insert %q: %w", book.Title, err)
		}
	}

	genres, err := groupBy(db, `
		SELECT CASE WHEN trim(genre) = '' THEN 'Unknown' ELSE genre END AS k,
		       COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE is_read) AS done
		FROM books
		GROUP BY k
		ORDER BY total DESC, k`)
	if err != nil {
		return nil, fmt.Errorf("genre breakdown: %w", err)
	}

	decades, err := groupBy(db, `
		SELECT CAST(d AS VARCHAR) || 's', total, done
		FROM (
			SELECT CAST(floor(published / 10) * 10 AS BIGINT) AS d,
			       COUNT(*) AS total,
			       COUNT(*) FILTER (WHERE is_read) AS done
			FROM books
			GROUP BY d
		)
		ORDER BY d`)
	if err != nil {
		return nil, fmt.Errorf("decade breakdown: %w", err)
	}

	return &Breakdown{Genres: genres, Decades: decades}, nil
}

func groupBy(db *sql.DB, query string) ([]GroupCount, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []GroupCount{}
	for rows.Next() {
		var (
			g           GroupCount
			total, done int64
		)
		if err := rows.Scan(&g.Key, &total, &done); err != nil {
			return nil, err
		}
		g.Total = int(total)
		g.Read = int(done)
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
