package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/kerbaras/bookshelf/pkg/data"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show reading statistics",
	Long:  "Show how many books you own and have read, broken down by genre and decade",
	RunE: func(cmd *cobra.Command, args []string) error {
		controller, _, err := openLibrary(false)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		stats := controller.Stats()

		fmt.Fprintf(out, "Total books: %d\n", stats.Total)
		fmt.Fprintf(out, "Books read: %d\n", stats.Read)
		fmt.Fprintf(out, "Books unread: %d\n", stats.Unread())
		fmt.Fprintf(out, "Percentage read: %s\n", stats.PercentLabel())

		if stats.Total == 0 {
			return nil
		}

		breakdown, err := controller.Breakdown()
		if err != nil {
			appLog.Warn("breakdown unavailable", "error", err)
			return nil
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, renderGroups("Genre", breakdown.Genres))
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderGroups("Decade", breakdown.Decades))
		return nil
	},
}

func renderGroups(label string, groups []data.GroupCount) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{label, "Books", "Read", "Read %"})
	for _, g := range groups {
		pct := data.Stats{Total: g.Total, Read: g.Read, PercentRead: 100 * float64(g.Read) / float64(g.Total)}
		tw.AppendRow(table.Row{g.Key, g.Total, g.Read, pct.PercentLabel()})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	return tw.Render()
}
