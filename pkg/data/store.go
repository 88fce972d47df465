package data

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// MalformedStoreError is returned by Load when the library file exists and is
// non-empty but does not hold a JSON array of books.
type MalformedStoreError struct {
	Path string
	Err  error
}

func (e *MalformedStoreError) Error() string {
	return fmt.Sprintf("malformed library file %s: %v", e.Path, e.Err)
}

func (e *MalformedStoreError) Unwrap() error {
	return e.Err
}

// Store persists a Collection as a single pretty-printed JSON document.
// Every Save rewrites the whole file in place.
type Store struct {
	path   string
	logger *slog.Logger
}

func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{path: path, logger: logger}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the library file. A missing or zero-length file is an empty
// collection, not an error.
func (s *Store) Load() (Collection, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("library file not found, starting empty", "path", s.path)
			return Collection{}, nil
		}
		return nil, fmt.Errorf("failed to read library: %w", err)
	}
	if len(raw) == 0 {
		s.logger.Debug("library file is empty", "path", s.path)
		return Collection{}, nil
	}

	books, err := decodeCollection(raw)
	if err != nil {
		return nil, &MalformedStoreError{Path: s.path, Err: err}
	}

	s.logger.Debug("library loaded", "path", s.path, "books", len(books))
	return books, nil
}

// storedBook mirrors Book with pointer fields so a missing or null key can be
// told apart from a zero value.
type storedBook struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Year   *int    `json:"year"`
	Genre  *string `json:"genre"`
	Read   *bool   `json:"read"`
}

// decodeCollection accepts only a JSON array of complete book objects. Unknown
// keys, null elements and missing or null fields are rejected.
func decodeCollection(raw []byte) (Collection, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	var items []json.RawMessage
	if err := dec.Decode(&items); err != nil {
		return nil, err
	}
	if items == nil {
		return nil, errors.New("document is null, want an array of books")
	}
	if dec.More() {
		return nil, errors.New("unexpected data after the book array")
	}

	books := make(Collection, 0, len(items))
	for i, item := range items {
		var sb storedBook
		itemDec := json.NewDecoder(bytes.NewReader(item))
		itemDec.DisallowUnknownFields()
		if err := itemDec.Decode(&sb); err != nil {
			return nil, fmt.Errorf("book %d: %w", i, err)
		}

		missing := ""
		switch {
		case bytes.Equal(bytes.TrimSpace(item), []byte("null")):
			return nil, fmt.Errorf("book %d is null", i)
		case sb.Title == nil:
			missing = "title"
		case sb.Author == nil:
			missing = "author"
		case sb.Year == nil:
			missing = "year"
		case sb.Genre == nil:
			missing = "genre"
		case sb.Read == nil:
			missing = "read"
		}
		if missing != "" {
			return nil, fmt.Errorf("book %d: %q is missing or null", i, missing)
		}

		books = append(books, Book{
			Title:  *sb.Title,
			Author: *sb.Author,
			Year:   *sb.Year,
			Genre:  *sb.Genre,
			Read:   *sb.Read,
		})
	}
	return books, nil
}

// Save overwrites the library file with c. There is no atomic rename: a
// crash mid-write can truncate the file.
func (s *Store) Save(c Collection) error {
	if c == nil {
		c = Collection{}
	}

	raw, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode library: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create library directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write library: %w", err)
	}

	s.logger.Debug("library saved", "path", s.path, "books", len(c))
	return nil
}
