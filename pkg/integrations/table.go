package integrations

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/kerbaras/bookshelf/pkg/data"
	"github.com/kerbaras/bookshelf/pkg/sources"
)

// TableExporter writes the library as a text, CSV, Markdown or HTML table.
type TableExporter struct {
	format Format
}

func NewTableExporter(format Format) *TableExporter {
	return &TableExporter{format: format}
}

func (x *TableExporter) Export(books []data.Book, summaries map[string]sources.Summary, outputPath string) (string, error) {
	out, err := RenderTable(books, summaries, x.format)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, []byte(out+"\n"), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s export: %w", x.format, err)
	}
	return outputPath, nil
}

// RenderTable renders books in format. A Summary column is added when
// summaries is non-nil.
func RenderTable(books []data.Book, summaries map[string]sources.Summary, format Format) (string, error) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := table.Row{"#", "Title", "Author", "Year", "Genre", "Status"}
	if summaries != nil {
		header = append(header, "Summary")
	}
	tw.AppendHeader(header)

	for i, book := range books {
		row := table.Row{i + 1, book.Title, book.Author, strconv.Itoa(book.Year), book.Genre, book.ReadLabel()}
		if summaries != nil {
			summaryText := ""
			if summary, ok := summaries[book.Title]; ok {
				summaryText = summary.String()
			}
			row = append(row, summaryText)
		}
		tw.AppendRow(row)
	}

	columns := []table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	}

	switch format {
	case FormatText:
		if summaries != nil {
			columns = append(columns, table.ColumnConfig{Number: 7, WidthMax: 60})
		}
		tw.SetColumnConfigs(columns)
		stats := data.Statistics(books)
		tw.AppendFooter(table.Row{"", "Total", stats.Total, "", "Read", stats.PercentLabel()})
		return tw.Render(), nil
	case FormatCSV:
		tw.SetColumnConfigs(columns)
		return tw.RenderCSV(), nil
	case FormatMarkdown:
		tw.SetColumnConfigs(columns)
		return tw.RenderMarkdown(), nil
	case FormatHTML:
		tw.SetColumnConfigs(columns)
		return tw.RenderHTML(), nil
	default:
		return "", fmt.Errorf("unsupported table format %q", format)
	}
}
