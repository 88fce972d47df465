package cmd

import (
	"fmt"
	"strings"

	"github.com/kerbaras/bookshelf/pkg/services"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a book to your library",
	Long:  "Add a book to your library. The title may be given as arguments or with --title.",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		if len(args) > 0 {
			title = strings.Join(args, " ")
		}
		author, _ := cmd.Flags().GetString("author")
		year, _ := cmd.Flags().GetString("year")
		genre, _ := cmd.Flags().GetString("genre")
		read, _ := cmd.Flags().GetString("read")

		controller, release, err := openLibrary(true)
		if err != nil {
			return err
		}
		defer release()

		book, err := controller.AddInput(services.BookInput{
			Title:  title,
			Author: author,
			Year:   year,
			Genre:  genre,
			Read:   read,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Added %s\n", book)
		return nil
	},
}

func init() {
	addCmd.Flags().StringP("title", "t", "", "title of the book")
	addCmd.Flags().StringP("author", "a", "", "author of the book")
	addCmd.Flags().StringP("year", "y", "", "publication year")
	addCmd.Flags().StringP("genre", "g", "", "genre")
	addCmd.Flags().StringP("read", "r", "no", "whether you have read it (yes/no)")
}
