// Package cmd wires the storefront into a cobra command tree. The bare
// command starts the interactive TUI; subcommands expose the catalog,
// the recommender and stored bookings for scripting.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ticketwise-cli/config"
	"ticketwise-cli/tui"
)

var (
	appVersion = "dev"
	appCommit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "ticketwise",
	Short: "Book movie and event tickets from the terminal",
	Long:  `Browse the catalog, discover events with AI matching, pick seats and keep your bookings, all from the terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		_, err := tea.NewProgram(tui.New(cfg), tea.WithAltScreen()).Run()
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ticketwise %s", appVersion)
		if appCommit != "none" && appCommit != "" {
			fmt.Printf(" (%s)", appCommit)
		}
		fmt.Println()
	},
}

func Execute(version, commit string) {
	if version != "" {
		appVersion = version
	}
	if commit != "" {
		appCommit = commit
	}
	rootCmd.AddCommand(versionCmd, catalogCmd, recommendCmd, askCmd, bookingsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
