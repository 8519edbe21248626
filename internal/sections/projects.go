package sections

import "github.com/Nishanth262/portfolio/internal/content"

// Filter returns the projects visible under category. AllCategory yields the
// full list; any other category yields the projects tagged with it, in order.
// An unmatched category yields an empty, non-nil slice.
func Filter(projects []content.ProjectEntry, category string) []content.ProjectEntry {
	if category == content.AllCategory {
		return projects
	}
	out := []content.ProjectEntry{}
	for _, p := range projects {
		if p.HasTag(category) {
			out = append(out, p)
		}
	}
	return out
}

// ProjectsState is the local UI state of one project grid.
// The hovered card is tracked but does not change what is rendered.
type ProjectsState struct {
	activeFilter string
	hovered      *int
}

// NewProjectsState returns state with the "All" filter active and nothing hovered.
func NewProjectsState() *ProjectsState {
	return &ProjectsState{activeFilter: content.AllCategory}
}

func (s *ProjectsState) SetFilter(category string) {
	s.activeFilter = category
}

func (s *ProjectsState) ActiveFilter() string {
	return s.activeFilter
}

// SetHover records id as the hovered card, replacing any previous one.
func (s *ProjectsState) SetHover(id int) {
	s.hovered = &id
}

func (s *ProjectsState) ClearHover() {
	s.hovered = nil
}

// Hovered returns the hovered card id, if any.
func (s *ProjectsState) Hovered() (int, bool) {
	if s.hovered == nil {
		return 0, false
	}
	return *s.hovered, true
}

// ProjectsSection renders a filterable grid of project cards.
type ProjectsSection struct {
	projects   []content.ProjectEntry
	categories []string
}

// FilterButton is one category button above the grid.
type FilterButton struct {
	Category string
	Active   bool
}

// ProjectsView is what the projects template consumes.
type ProjectsView struct {
	Heading      string
	Intro        string
	ActiveFilter string
	Filters      []FilterButton
	Cards        []content.ProjectEntry
}

func NewProjectsSection(projects []content.ProjectEntry, categories []string) *ProjectsSection {
	return &ProjectsSection{projects: projects, categories: categories}
}

// View derives the grid for the current state. Nothing is cached between calls.
func (s *ProjectsSection) View(state *ProjectsState) ProjectsView {
	active := state.ActiveFilter()
	filters := make([]FilterButton, len(s.categories))
	for i, c := range s.categories {
		filters[i] = FilterButton{Category: c, Active: c == active}
	}
	return ProjectsView{
		Heading:      "My Projects",
		Intro:        "Here are some of my recent projects. Each one was built with attention to detail and a focus on user experience.",
		ActiveFilter: active,
		Filters:      filters,
		Cards:        Filter(s.projects, active),
	}
}
