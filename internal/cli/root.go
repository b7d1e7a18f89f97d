// Package cli wires the corner commands: generate a plan, ask the coach,
// or serve the web form.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nlebedev/corner/internal/coach"
	"github.com/nlebedev/corner/internal/config"
	"github.com/nlebedev/corner/internal/media"
	"github.com/nlebedev/corner/internal/plan"
)

// App holds the services the CLI commands run against.
type App struct {
	Planner   plan.Planner
	Messages  *coach.MessageGenerator
	Assistant *coach.Assistant
	Voice     *coach.Voice
	Visuals   *media.Library
	Config    *config.Config
	Log       *slog.Logger

	// IsInteractive reports whether stdin is a terminal; the plan command
	// only opens its wizard when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "corner" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "corner",
		Short: "Weekly training planner with a built-in coach",
	}

	root.AddCommand(
		newPlanCmd(app),
		newAskCmd(app),
		newServeCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
