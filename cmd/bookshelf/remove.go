package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove [title]",
	Aliases: []string{"rm"},
	Short:   "Remove a book from your library",
	Long:    "Remove every book whose title matches exactly (case-sensitive)",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")

		controller, release, err := openLibrary(true)
		if err != nil {
			return err
		}
		defer release()

		removed, err := controller.Remove(title)
		if err != nil {
			return err
		}

		if removed == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No book titled %q in library.\n", title)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Removed %d book(s) titled %q\n", removed, title)
		return nil
	},
}
