package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all books in your library",
	Long:  "Display all books in your library in a formatted table",
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")

		controller, _, err := openLibrary(false)
		if err != nil {
			return err
		}

		books := controller.Books()
		out := cmd.OutOrStdout()

		if len(books) == 0 {
			fmt.Fprintln(out, "📚 No books in library. Use 'bookshelf add' to add one.")
			return nil
		}

		if plain {
			for _, book := range books {
				fmt.Fprintln(out, book)
			}
			return nil
		}

		columns := []table.Column{
			{Title: "Title", Width: 36},
			{Title: "Author", Width: 24},
			{Title: "Year", Width: 6},
			{Title: "Genre", Width: 16},
			{Title: "Status", Width: 8},
		}

		rows := []table.Row{}
		for _, book := range books {
			rows = append(rows, table.Row{
				truncateString(book.Title, 34),
				truncateString(book.Author, 22),
				strconv.Itoa(book.Year),
				truncateString(book.Genre, 14),
				book.ReadLabel(),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Fprintf(out, "\n📚 Library (%d books)\n\n", len(books))
		fmt.Fprintln(out, t.View())
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("plain", false, "print one line per book instead of a table")
}

func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
