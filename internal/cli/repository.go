package cli

import (
	"context"
	"fmt"

	"github.com/Nishanth262/portfolio/internal/config"
	"github.com/Nishanth262/portfolio/internal/content"
	"github.com/Nishanth262/portfolio/internal/db"
)

// openRepository returns the content source selected by cfg and a func that releases it.
func openRepository(ctx context.Context, cfg *config.Config) (content.Repository, func() error, error) {
	if cfg.ContentSource != config.SourceSQLite {
		repo, err := openRepositoryFrom(ctx, cfg, content.NewStaticRepository())
		return repo, func() error { return nil }, err
	}

	database, err := db.OpenDB(cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	repo, err := openRepositoryFrom(ctx, cfg, content.NewSQLiteRepository(database))
	if err != nil {
		database.Close()
		return nil, nil, err
	}
	return repo, database.Close, nil
}

// openRepositoryFrom applies cfg's category mode to repo and validates its content.
func openRepositoryFrom(ctx context.Context, cfg *config.Config, repo content.Repository) (content.Repository, error) {
	if cfg.DeriveCategories {
		repo = content.WithDerivedCategories(repo)
	}
	if err := content.Check(ctx, repo); err != nil {
		return nil, fmt.Errorf("checking content: %w", err)
	}
	return repo, nil
}
