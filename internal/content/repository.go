package content

import (
	"context"
	"errors"
	"fmt"
)

// AllCategory is the filter category that matches every project.
const AllCategory = "All"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Repository is the read-only source of everything the site renders.
// Lists are returned in presentation order and callers own the returned slices.
type Repository interface {
	Experience(ctx context.Context) ([]ExperienceEntry, error)
	Education(ctx context.Context) (Education, error)
	Projects(ctx context.Context) ([]ProjectEntry, error)
	Categories(ctx context.Context) ([]string, error)
	Profile(ctx context.Context) (Profile, error)
}

// ProjectByID looks a project up by identifier.
func ProjectByID(ctx context.Context, repo Repository, id int) (ProjectEntry, error) {
	projects, err := repo.Projects(ctx)
	if err != nil {
		return ProjectEntry{}, err
	}
	for _, p := range projects {
		if p.ID == id {
			return p, nil
		}
	}
	return ProjectEntry{}, fmt.Errorf("project %d: %w", id, ErrNotFound)
}

// DeriveCategories returns "All" followed by every distinct project tag in first-seen order.
func DeriveCategories(projects []ProjectEntry) []string {
	seen := map[string]bool{AllCategory: true}
	categories := []string{AllCategory}
	for _, p := range projects {
		for _, tag := range p.Tags {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			categories = append(categories, tag)
		}
	}
	return categories
}

// Validate checks that identifiers are unique within each list.
func Validate(experience []ExperienceEntry, projects []ProjectEntry) error {
	seen := make(map[int]bool, len(experience))
	for _, e := range experience {
		if seen[e.ID] {
			return fmt.Errorf("duplicate experience id %d", e.ID)
		}
		seen[e.ID] = true
	}

	seen = make(map[int]bool, len(projects))
	for _, p := range projects {
		if seen[p.ID] {
			return fmt.Errorf("duplicate project id %d", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// Check loads both lists from repo and validates them.
func Check(ctx context.Context, repo Repository) error {
	experience, err := repo.Experience(ctx)
	if err != nil {
		return fmt.Errorf("loading experience: %w", err)
	}
	projects, err := repo.Projects(ctx)
	if err != nil {
		return fmt.Errorf("loading projects: %w", err)
	}
	return Validate(experience, projects)
}

// WithDerivedCategories wraps repo so Categories is computed from the project tags.
func WithDerivedCategories(repo Repository) Repository {
	return derivedCategories{Repository: repo}
}

type derivedCategories struct {
	Repository
}

func (d derivedCategories) Categories(ctx context.Context) ([]string, error) {
	projects, err := d.Projects(ctx)
	if err != nil {
		return nil, err
	}
	return DeriveCategories(projects), nil
}
