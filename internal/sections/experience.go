package sections

import "github.com/Nishanth262/portfolio/internal/content"

// ExperienceSection renders a fixed list of entries as a vertical timeline
// followed by a single education card.
type ExperienceSection struct {
	entries   []content.ExperienceEntry
	education content.Education
}

// ExperienceView is what the experience template consumes.
type ExperienceView struct {
	Heading   string
	Items     []content.ExperienceEntry
	Education content.Education
}

func NewExperienceSection(entries []content.ExperienceEntry, education content.Education) *ExperienceSection {
	return &ExperienceSection{entries: entries, education: education}
}

// Timeline returns the entries in source order.
func (s *ExperienceSection) Timeline() []content.ExperienceEntry {
	return s.entries
}

func (s *ExperienceSection) Education() content.Education {
	return s.education
}

func (s *ExperienceSection) View() ExperienceView {
	return ExperienceView{
		Heading:   "Internship / Experience",
		Items:     s.Timeline(),
		Education: s.education,
	}
}
