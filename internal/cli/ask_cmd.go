package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	var imagePath string

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a single question",
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.Join(args, " ")

			var image []byte
			if imagePath != "" {
				data, err := os.ReadFile(imagePath)
				if err != nil {
					return fmt.Errorf("failed to read image: %w", err)
				}
				image = data
			}
			if message == "" && len(image) == 0 {
				return fmt.Errorf("a question or --image is required")
			}

			resp := app.Chat.Respond(cmd.Context(), message, image)

			out := cmd.OutOrStdout()
			color.New(color.FgYellow).Fprintf(out, "[%s]\n", resp.Type)
			fmt.Fprintln(out, plainText(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&imagePath, "image", "", "Path to a student photo")

	return cmd
}
