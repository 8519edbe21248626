package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteRepository implements Repository over the content tables created by db.Migrate.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLiteRepository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Experience(ctx context.Context) ([]ExperienceEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, role, company, period, description
		FROM experience ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("listing experience: %w", err)
	}
	defer rows.Close()

	entries := []ExperienceEntry{}
	index := map[int]int{}
	for rows.Next() {
		var e ExperienceEntry
		if err := rows.Scan(&e.ID, &e.Role, &e.Company, &e.Period, &e.Description); err != nil {
			return nil, fmt.Errorf("scanning experience: %w", err)
		}
		e.Technologies = []string{}
		index[e.ID] = len(entries)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating experience: %w", err)
	}

	techRows, err := r.db.QueryContext(ctx, `SELECT experience_id, name
		FROM experience_technologies ORDER BY experience_id, position`)
	if err != nil {
		return nil, fmt.Errorf("listing technologies: %w", err)
	}
	defer techRows.Close()

	for techRows.Next() {
		var id int
		var name string
		if err := techRows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scanning technology: %w", err)
		}
		if i, ok := index[id]; ok {
			entries[i].Technologies = append(entries[i].Technologies, name)
		}
	}
	if err := techRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating technologies: %w", err)
	}
	return entries, nil
}

func (r *SQLiteRepository) Education(ctx context.Context) (Education, error) {
	var e Education
	err := r.db.QueryRowContext(ctx, `SELECT degree, institution, period FROM education WHERE id = 1`).
		Scan(&e.Degree, &e.Institution, &e.Period)
	if errors.Is(err, sql.ErrNoRows) {
		return Education{}, fmt.Errorf("education: %w", ErrNotFound)
	}
	if err != nil {
		return Education{}, fmt.Errorf("loading education: %w", err)
	}
	return e, nil
}

func (r *SQLiteRepository) Projects(ctx context.Context) ([]ProjectEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, description, image, live_url, github_url
		FROM projects ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	projects := []ProjectEntry{}
	index := map[int]int{}
	for rows.Next() {
		var p ProjectEntry
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.LiveURL, &p.GitHubURL); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		p.Tags = []string{}
		index[p.ID] = len(projects)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	tagRows, err := r.db.QueryContext(ctx, `SELECT project_id, tag FROM project_tags ORDER BY project_id, position`)
	if err != nil {
		return nil, fmt.Errorf("listing project tags: %w", err)
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var id int
		var tag string
		if err := tagRows.Scan(&id, &tag); err != nil {
			return nil, fmt.Errorf("scanning project tag: %w", err)
		}
		if i, ok := index[id]; ok {
			projects[i].Tags = append(projects[i].Tags, tag)
		}
	}
	if err := tagRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project tags: %w", err)
	}
	return projects, nil
}

func (r *SQLiteRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM filter_categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return categories, nil
}

func (r *SQLiteRepository) Profile(ctx context.Context) (Profile, error) {
	var p Profile
	err := r.db.QueryRowContext(ctx, `SELECT name, headline, credit FROM profile WHERE id = 1`).
		Scan(&p.Name, &p.Headline, &p.Credit)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, fmt.Errorf("profile: %w", ErrNotFound)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("loading profile: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT label, anchor FROM nav_links ORDER BY position`)
	if err != nil {
		return Profile{}, fmt.Errorf("listing nav links: %w", err)
	}
	defer rows.Close()

	p.NavLinks = []NavLink{}
	for rows.Next() {
		var link NavLink
		if err := rows.Scan(&link.Label, &link.Anchor); err != nil {
			return Profile{}, fmt.Errorf("scanning nav link: %w", err)
		}
		p.NavLinks = append(p.NavLinks, link)
	}
	if err := rows.Err(); err != nil {
		return Profile{}, fmt.Errorf("iterating nav links: %w", err)
	}
	return p, nil
}

// Seed replaces the content tables with everything src returns, in one transaction.
func Seed(ctx context.Context, db *sql.DB, src Repository) error {
	experience, err := src.Experience(ctx)
	if err != nil {
		return fmt.Errorf("reading experience: %w", err)
	}
	projects, err := src.Projects(ctx)
	if err != nil {
		return fmt.Errorf("reading projects: %w", err)
	}
	if err := Validate(experience, projects); err != nil {
		return err
	}
	education, err := src.Education(ctx)
	if err != nil {
		return fmt.Errorf("reading education: %w", err)
	}
	categories, err := src.Categories(ctx)
	if err != nil {
		return fmt.Errorf("reading categories: %w", err)
	}
	profile, err := src.Profile(ctx)
	if err != nil {
		return fmt.Errorf("reading profile: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting seed transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{
		"experience_technologies", "experience", "project_tags", "projects",
		"education", "filter_categories", "nav_links", "profile",
	} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for pos, e := range experience {
		if _, err := tx.ExecContext(ctx, `INSERT INTO experience (id, position, role, company, period, description)
			VALUES (?, ?, ?, ?, ?, ?)`, e.ID, pos, e.Role, e.Company, e.Period, e.Description); err != nil {
			return fmt.Errorf("inserting experience %d: %w", e.ID, err)
		}
		for i, tech := range e.Technologies {
			if _, err := tx.ExecContext(ctx, `INSERT INTO experience_technologies (experience_id, position, name)
				VALUES (?, ?, ?)`, e.ID, i, tech); err != nil {
				return fmt.Errorf("inserting technology for experience %d: %w", e.ID, err)
			}
		}
	}

	for pos, p := range projects {
		if _, err := tx.ExecContext(ctx, `INSERT INTO projects (id, position, title, description, image, live_url, github_url)
			VALUES (?, ?, ?, ?, ?, ?, ?)`, p.ID, pos, p.Title, p.Description, p.Image, p.LiveURL, p.GitHubURL); err != nil {
			return fmt.Errorf("inserting project %d: %w", p.ID, err)
		}
		for i, tag := range p.Tags {
			if _, err := tx.ExecContext(ctx, `INSERT INTO project_tags (project_id, position, tag)
				VALUES (?, ?, ?)`, p.ID, i, tag); err != nil {
				return fmt.Errorf("inserting tag for project %d: %w", p.ID, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO education (id, degree, institution, period) VALUES (1, ?, ?, ?)`,
		education.Degree, education.Institution, education.Period); err != nil {
		return fmt.Errorf("inserting education: %w", err)
	}

	for pos, name := range categories {
		if _, err := tx.ExecContext(ctx, `INSERT INTO filter_categories (position, name) VALUES (?, ?)`, pos, name); err != nil {
			return fmt.Errorf("inserting category %q: %w", name, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO profile (id, name, headline, credit) VALUES (1, ?, ?, ?)`,
		profile.Name, profile.Headline, profile.Credit); err != nil {
		return fmt.Errorf("inserting profile: %w", err)
	}
	for pos, link := range profile.NavLinks {
		if _, err := tx.ExecContext(ctx, `INSERT INTO nav_links (position, label, anchor) VALUES (?, ?, ?)`,
			pos, link.Label, link.Anchor); err != nil {
			return fmt.Errorf("inserting nav link %q: %w", link.Label, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	committed = true
	return nil
}
