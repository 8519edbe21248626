package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Nishanth262/portfolio/internal/content"
	"github.com/Nishanth262/portfolio/internal/sections"
)

type showOptions struct {
	filter string
	year   int
	plain  bool
}

func bindShowFlags(fs *pflag.FlagSet, opts *showOptions) {
	fs.StringVar(&opts.filter, "filter", content.AllCategory, "Project category to show")
	fs.IntVar(&opts.year, "year", 0, "Copyright year to print instead of the current one")
	fs.BoolVar(&opts.plain, "plain", false, "Disable styling even on a terminal")
}

func newShowCmd(app *App) *cobra.Command {
	var opts showOptions

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the site sections to the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, closeRepo, err := openRepository(ctx, app.Config)
			if err != nil {
				return err
			}
			defer closeRepo()

			entries, err := repo.Experience(ctx)
			if err != nil {
				return err
			}
			edu, err := repo.Education(ctx)
			if err != nil {
				return err
			}
			projects, err := repo.Projects(ctx)
			if err != nil {
				return err
			}
			categories, err := repo.Categories(ctx)
			if err != nil {
				return err
			}
			profile, err := repo.Profile(ctx)
			if err != nil {
				return err
			}

			clock := app.Clock
			if opts.year != 0 {
				year := opts.year
				clock = sections.ClockFunc(func() time.Time {
					return time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
				})
			}

			state := sections.NewProjectsState()
			state.SetFilter(opts.filter)

			styled := !opts.plain && app.IsTerminal != nil && app.IsTerminal()
			st := newStyles(styled)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatProjects(st, sections.NewProjectsSection(projects, categories).View(state)))
			fmt.Fprint(out, formatExperience(st, sections.NewExperienceSection(entries, edu).View()))
			fmt.Fprint(out, formatFooter(st, sections.NewFooterSection(profile, clock).View()))
			return nil
		},
	}

	bindShowFlags(cmd.Flags(), &opts)

	return cmd
}
