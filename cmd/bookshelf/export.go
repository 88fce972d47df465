package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/kerbaras/bookshelf/pkg/app/components"
	"github.com/kerbaras/bookshelf/pkg/integrations"
	"github.com/kerbaras/bookshelf/pkg/sources"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your library to a file",
	Long: fmt.Sprintf("Export your library as one of: %s. With --summaries, "+
		"each distinct title is looked up on Google Books first.", formatList()),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		title, _ := cmd.Flags().GetString("title")
		withSummaries, _ := cmd.Flags().GetBool("summaries")
		interval, _ := cmd.Flags().GetDuration("interval")

		exporter, err := integrations.NewExporter(format, title)
		if err != nil {
			return err
		}
		if output == "" {
			output = "library." + integrations.Format(strings.ToLower(format)).Extension()
		}

		controller, _, err := openLibrary(false)
		if err != nil {
			return err
		}
		books := controller.Books()
		out := cmd.OutOrStdout()

		var summaries map[string]sources.Summary
		if withSummaries && len(books) > 0 {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			enricher := controller.NewEnricher(interval)
			tracker := components.NewProgressTracker(44)

			done := make(chan struct{})
			go func() {
				defer close(done)
				for progress := range enricher.GetProgressChannel() {
					tracker.Update(progress)
					if progress.Status == "complete" {
						fmt.Fprintf(out, "  [%d/%d] %s: %s\n", progress.Current, progress.Total, progress.Title, progress.Summary.Status)
					}
				}
			}()

			summaries = enricher.Enrich(ctx, books)
			enricher.Close()
			<-done

			fmt.Fprintln(out, tracker.View())
		}

		path, err := exporter.Export(books, summaries, output)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		appLog.Info("library exported", "format", format, "path", path, "books", len(books))
		fmt.Fprintf(out, "✅ Exported %d books to %s\n", len(books), path)
		return nil
	},
}

func formatList() string {
	names := make([]string, 0, len(integrations.Formats()))
	for _, f := range integrations.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func init() {
	exportCmd.Flags().StringP("format", "f", string(integrations.FormatText), "export format: "+formatList())
	exportCmd.Flags().StringP("output", "o", "", "output file (default library.<ext>)")
	exportCmd.Flags().String("title", "My Library", "title used by the EPUB export")
	exportCmd.Flags().Bool("summaries", false, "include Google Books summaries")
	exportCmd.Flags().Duration("interval", 200*time.Millisecond, "delay between summary lookups")
}
