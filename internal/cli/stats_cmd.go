package cli

import (
	"fmt"

	"campusbot/internal/models"

	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show knowledge base statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := app.Chat.Stats()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "QA pairs:        %d\n", stats.QAPairs)
			for _, category := range models.Categories {
				fmt.Fprintf(out, "%-16s %d\n", string(category)+":", stats.Categories[category])
			}
			fmt.Fprintf(out, "Corpus size:     %d\n", stats.CorpusSize)
			fmt.Fprintf(out, "Vocabulary size: %d\n", stats.VocabularySize)
			return nil
		},
	}
}
