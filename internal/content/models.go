package content

// ExperienceEntry is one item of the experience timeline.
type ExperienceEntry struct {
	ID           int      `json:"id"`
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// ProjectEntry is one card of the project grid.
type ProjectEntry struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	LiveURL     string   `json:"live_url"`
	GitHubURL   string   `json:"github_url"`
}

// HasTag reports whether tag is one of the project's tags. Matching is exact and case-sensitive.
func (p ProjectEntry) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Education is the single card shown below the timeline.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
}

// NavLink is an in-page anchor shown in the footer.
type NavLink struct {
	Label  string `json:"label"`
	Anchor string `json:"anchor"`
}

// Profile holds the site owner's details used by the footer.
type Profile struct {
	Name     string    `json:"name"`
	Headline string    `json:"headline"`
	Credit   string    `json:"credit"`
	NavLinks []NavLink `json:"nav_links"`
}

func (e ExperienceEntry) clone() ExperienceEntry {
	e.Technologies = cloneStrings(e.Technologies)
	return e
}

func (p ProjectEntry) clone() ProjectEntry {
	p.Tags = cloneStrings(p.Tags)
	return p
}

func (p Profile) clone() Profile {
	if p.NavLinks != nil {
		p.NavLinks = append([]NavLink(nil), p.NavLinks...)
	}
	return p
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
