package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"ticketwise-cli/config"
	"ticketwise-cli/service"
)

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Chat with the TicketBot assistant",
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.TrimSpace(strings.Join(args, " "))
		if message == "" {
			prompt := promptui.Prompt{
				Label: "Ask TicketBot",
				Validate: func(input string) error {
					if strings.TrimSpace(input) == "" {
						return errors.New("ask something")
					}
					return nil
				},
			}
			entered, err := prompt.Run()
			if err != nil {
				return err
			}
			message = strings.TrimSpace(entered)
		}

		cfg := config.Load()
		var client *service.GeminiClient
		if cfg.HasGeminiKey() {
			client = service.NewGeminiClient(nil, cfg.GeminiAPIKey)
		}
		concierge := service.NewConcierge(client)

		fmt.Println(concierge.Ask(cmd.Context(), message))
		return nil
	},
}
