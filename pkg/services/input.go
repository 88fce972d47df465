package services

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kerbaras/bookshelf/pkg/data"
)

const (
	MinYear = 1000
	MaxYear = 2100
)

// BookInput holds book fields exactly as the user typed them.
type BookInput struct {
	Title  string
	Author string
	Year   string
	Genre  string
	Read   string
}

// InputError lists the fields that failed validation.
type InputError struct {
	Fields map[string]string
}

func (e *InputError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + " " + e.Fields[name]
	}
	return "invalid book: " + strings.Join(parts, "; ")
}

type bookFields struct {
	Title string `validate:"required"`
	Year  int    `validate:"gte=1000,lte=2100"`
}

var validate = validator.New()

// ParseBookInput coerces year and read status and checks the fields the
// forms require: a title and a year in [MinYear, MaxYear].
func ParseBookInput(in BookInput) (data.Book, error) {
	fieldErrs := map[string]string{}

	book := data.Book{
		Title:  strings.TrimSpace(in.Title),
		Author: strings.TrimSpace(in.Author),
		Genre:  strings.TrimSpace(in.Genre),
	}

	year, err := strconv.Atoi(strings.TrimSpace(in.Year))
	if err != nil {
		fieldErrs["year"] = "must be a whole number"
	}
	book.Year = year

	read, err := ParseReadStatus(in.Read)
	if err != nil {
		fieldErrs["read"] = err.Error()
	}
	book.Read = read

	if err := validate.Struct(bookFields{Title: book.Title, Year: book.Year}); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return data.Book{}, err
		}
		for _, fe := range verrs {
			name := strings.ToLower(fe.Field())
			if _, seen := fieldErrs[name]; seen {
				continue
			}
			fieldErrs[name] = friendlyMessage(fe)
		}
	}

	if len(fieldErrs) > 0 {
		return data.Book{}, &InputError{Fields: fieldErrs}
	}
	return book, nil
}

// ParseReadStatus accepts yes/no style answers. Blank means unread.
func ParseReadStatus(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "1", "read":
		return true, nil
	case "", "n", "no", "false", "0", "unread":
		return false, nil
	default:
		return false, fmt.Errorf("must be yes or no, got %q", s)
	}
}

func friendlyMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return "is invalid"
	}
}
