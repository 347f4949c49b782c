package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"ticketwise-cli/config"
	"ticketwise-cli/service"
	"ticketwise-cli/store"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [query]",
	Short: "Find events matching a free-text request",
	Long:  `Describe what you are in the mood for and get up to three matching movies or events. Uses AI matching when an API key is configured, keyword matching otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			prompt := promptui.Prompt{
				Label: "What are you in the mood for",
				Validate: func(input string) error {
					if strings.TrimSpace(input) == "" {
						return errors.New("tell us something to look for")
					}
					return nil
				},
			}
			entered, err := prompt.Run()
			if err != nil {
				return err
			}
			query = strings.TrimSpace(entered)
		}

		cfg := config.Load()
		var client *service.GeminiClient
		if cfg.HasGeminiKey() {
			client = service.NewGeminiClient(nil, cfg.GeminiAPIKey)
		}
		matcher := service.NewMatcher(client, nil)

		result := matcher.Match(cmd.Context(), query)
		_ = store.RememberQuery(query)

		fmt.Println(result.InterpretedIntent)
		if result.Source == service.MatchSourceFallback && result.Err != "" {
			fmt.Println("(AI matching unavailable, showing keyword matches)")
		}
		fmt.Println()

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Title", "Category", "Match", "Why"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 5, WidthMax: 60},
		})
		for _, rec := range result.Recommendations {
			t.AppendRow(table.Row{
				rec.Item.ID(),
				rec.Item.Title(),
				rec.Item.Category(),
				fmt.Sprintf("%.0f%%", rec.MatchScore*100),
				rec.Explanation,
			})
		}
		t.Render()
		return nil
	},
}
