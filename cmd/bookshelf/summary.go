package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [title]",
	Short: "Look up a book summary on Google Books",
	Long:  "Fetch the description of the first Google Books volume whose title matches",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")

		controller, _, err := openLibrary(false)
		if err != nil {
			return err
		}

		summary := controller.Summary(cmd.Context(), title)
		appLog.Debug("summary lookup finished", "title", title, "status", summary.Status)

		fmt.Fprintf(cmd.OutOrStdout(), "📖 %s\n\n%s\n", title, summary)
		return nil
	},
}
