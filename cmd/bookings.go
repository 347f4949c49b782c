package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"ticketwise-cli/store"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List your confirmed bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		bookings, err := store.LoadBookings()
		if err != nil {
			return err
		}
		if len(bookings) == 0 {
			fmt.Println("No bookings yet.")
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Title", "Date", "Time", "Seats", "Total"})
		for _, b := range bookings {
			t.AppendRow(table.Row{
				b.ID,
				b.EventTitle,
				b.Date,
				b.Time,
				strings.Join(b.Seats, ", "),
				"$" + b.TotalAmount.StringFixed(2),
			})
		}
		t.Render()
		return nil
	},
}
