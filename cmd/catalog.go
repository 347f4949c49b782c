package cmd

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"ticketwise-cli/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the movies and events on sale",
	Run: func(cmd *cobra.Command, args []string) {
		movies := table.NewWriter()
		movies.SetOutputMirror(os.Stdout)
		movies.SetTitle("Movies")
		movies.AppendHeader(table.Row{"ID", "Title", "Genre", "Duration", "Rating"})
		for _, movie := range catalog.Movies {
			movies.AppendRow(table.Row{
				movie.ID,
				movie.Title,
				strings.Join(movie.Genre, ", "),
				movie.Duration,
				movie.Rating,
			})
		}
		movies.Render()

		events := table.NewWriter()
		events.SetOutputMirror(os.Stdout)
		events.SetTitle("Events")
		events.AppendHeader(table.Row{"ID", "Title", "Type", "Venue", "Date", "From"})
		for _, event := range catalog.Events {
			events.AppendRow(table.Row{
				event.ID,
				event.Title,
				event.Type,
				event.Venue,
				event.Date,
				event.PriceMin,
			})
		}
		events.Render()
	},
}
