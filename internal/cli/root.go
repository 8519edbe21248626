package cli

import (
	"github.com/spf13/cobra"

	"github.com/Nishanth262/portfolio/internal/config"
	"github.com/Nishanth262/portfolio/internal/sections"
)

// App holds what every command needs.
type App struct {
	Config *config.Config
	Clock  sections.Clock

	// IsTerminal reports whether stdout is a terminal; styled output is used only when it is.
	IsTerminal func() bool
}

// NewRootCmd creates the top-level "portfolio" command. Without a subcommand it serves the site.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Personal portfolio website",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cmd, app, app.Config.Addr)
		},
	}

	root.AddCommand(
		newServeCmd(app),
		newSeedCmd(app),
		newShowCmd(app),
	)

	return root
}
