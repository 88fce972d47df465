package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/bookshelf/pkg/data"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search your library",
	Long:  "Find books whose title or author contains the query, ignoring case",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		fuzzy, _ := cmd.Flags().GetBool("fuzzy")

		controller, _, err := openLibrary(false)
		if err != nil {
			return err
		}

		var results []data.Book
		if fuzzy {
			results = controller.FuzzySearch(query)
		} else {
			results = controller.Search(query)
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No matching books found.")
			return nil
		}

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(purple)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("#", "Title", "Author", "Year", "Genre", "Status")

		for i, book := range results {
			t.Row(strconv.Itoa(i+1), truncateString(book.Title, 48), book.Author, strconv.Itoa(book.Year), book.Genre, book.ReadLabel())
		}

		fmt.Fprintln(out, t)
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolP("fuzzy", "f", false, "match characters in order instead of a substring")
}
