package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nishanth262/portfolio/internal/content"
	"github.com/Nishanth262/portfolio/internal/db"
)

func newSeedCmd(app *App) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in content into the SQLite database",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.OpenDB(dbPath)
			if err != nil {
				return err
			}
			defer database.Close()

			ctx := cmd.Context()
			src := content.NewStaticRepository()
			if err := content.Seed(ctx, database, src); err != nil {
				return fmt.Errorf("seeding %s: %w", dbPath, err)
			}

			experience, _ := src.Experience(ctx)
			projects, _ := src.Projects(ctx)
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d experience entries and %d projects into %s\n",
				len(experience), len(projects), dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", app.Config.DatabasePath, "SQLite database path")

	return cmd
}
