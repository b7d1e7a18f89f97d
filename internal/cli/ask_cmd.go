package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question...]",
		Short: "Ask the coach about training, RPE, load or safety",
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			answer := app.Assistant.Answer(cmd.Context(), question, nil)
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}
}
