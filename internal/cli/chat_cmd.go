package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			userPrompt := color.New(color.FgGreen).FprintfFunc()
			assistant := color.New(color.FgCyan).FprintfFunc()

			color.New(color.FgCyan).Fprintln(out, "Ask about BIET (type 'exit' to quit)")

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				userPrompt(out, "\nYou: ")
				if !scanner.Scan() {
					break
				}

				message := strings.TrimSpace(scanner.Text())
				if message == "" {
					continue
				}
				if message == "exit" || message == "quit" {
					break
				}

				resp := app.Chat.Respond(cmd.Context(), message, nil)
				assistant(out, "Assistant: ")
				fmt.Fprintln(out, plainText(resp))
			}

			return scanner.Err()
		},
	}
}
