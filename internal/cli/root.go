package cli

import (
	"context"
	"html"
	"regexp"
	"strings"

	"campusbot/internal/models"
	"campusbot/internal/service"

	"github.com/spf13/cobra"
)

type ChatService interface {
	Respond(ctx context.Context, message string, image []byte) models.Response
	Stats() service.KnowledgeStats
}

// App holds what the CLI commands need.
type App struct {
	Chat ChatService
}

// NewRootCmd creates the top-level "campusbot" command.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "campusbot",
		Short:         "Campus information assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAskCmd(app),
		newChatCmd(app),
		newStatsCmd(app),
	)

	return root
}

var (
	htmlTagPattern   = regexp.MustCompile(`<[^>]*>`)
	blankLinePattern = regexp.MustCompile(`\n\s*\n+`)
)

// plainText flattens the student record card for terminal output.
func plainText(resp models.Response) string {
	if resp.Type != models.ResponseTypeStudentRecord {
		return resp.Text
	}

	text := htmlTagPattern.ReplaceAllString(resp.Text, "\n")
	text = html.UnescapeString(text)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(blankLinePattern.ReplaceAllString(strings.Join(lines, "\n"), "\n"))
}
