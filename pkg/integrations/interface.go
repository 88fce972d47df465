package integrations

import (
	"fmt"
	"strings"

	"github.com/kerbaras/bookshelf/pkg/data"
	"github.com/kerbaras/bookshelf/pkg/sources"
)

// Exporter writes a library snapshot to outputPath and returns the path
// written. summaries may be nil.
type Exporter interface {
	Export(books []data.Book, summaries map[string]sources.Summary, outputPath string) (string, error)
}

type Format string

const (
	FormatText     Format = "text"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatEPUB     Format = "epub"
)

func Formats() []Format {
	return []Format{FormatText, FormatCSV, FormatMarkdown, FormatHTML, FormatEPUB}
}

// Extension is the default file extension for f, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatText:
		return "txt"
	case FormatMarkdown:
		return "md"
	default:
		return string(f)
	}
}

func NewExporter(format string, title string) (Exporter, error) {
	switch f := Format(strings.ToLower(format)); f {
	case FormatEPUB:
		return NewEPubBuilder(title), nil
	case FormatText, FormatCSV, FormatMarkdown, FormatHTML:
		return NewTableExporter(f), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
