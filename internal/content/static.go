package content

import "context"

var (
	experienceData = []ExperienceEntry{
		{
			ID:           1,
			Role:         "MACHINE LEARNING INTERN",
			Company:      "HRUTHA TECHNOLOGIES",
			Period:       "Jan 2024 – Jun 2024",
			Description:  `Completed an internship on “Credit Card Fraud Detection System” from 12 February 2024 to 30 April 2024`,
			Technologies: []string{"Python", "Machine Learning", "Data Science", "Data Visualization"},
		},
	}

	educationData = Education{
		Degree:      "BSc in Computer Science",
		Institution: "University of Mysore",
		Period:      "2021 - 2024",
	}

	projectsData = []ProjectEntry{
		{
			ID:          1,
			Title:       "RFID Attendance System",
			Description: `A full-featured online shopping experience with cart functionality, user authentication, and payment processing.`,
			Image:       "https://www.iitms.co.in/rfid-based-attendance-system/img/what-is-rfid-img.webp",
			Tags:        []string{"Python"},
			LiveURL:     "https://github.com/Nishanth262/RFID-based-Attendance-System-using-Arduino",
			GitHubURL:   "https://github.com/Nishanth262/RFID-based-Attendance-System-using-Arduino/blob/main/Source%20code%20of%20Arduino%20rfid%20based%20Attendance%20System.py",
		},
		{
			ID:          2,
			Title:       "Weather App",
			Description: `Real-time weather forecasting application with location-based data and beautiful visualizations.`,
			Image:       "https://images.pexels.com/photos/1118873/pexels-photo-1118873.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			Tags:        []string{"OpenWeather API", "CSS", "HTML", "JavaScript"},
			LiveURL:     "https://github.com/Nishanth262/weather_project",
			GitHubURL:   "https://github.com/Nishanth262/weather_project/blob/main/index.html",
		},
	}

	filterCategories = []string{AllCategory}

	profileData = Profile{
		Name:     "Nishanth Gowda R S",
		Headline: "Full Stack Developer",
		Credit:   "Designed with ♥ using Go, HTMX & Tailwind CSS",
		NavLinks: []NavLink{
			{Label: "Home", Anchor: "#home"},
			{Label: "About", Anchor: "#about"},
			{Label: "Skills", Anchor: "#skills"},
			{Label: "Projects", Anchor: "#projects"},
			{Label: "Experience", Anchor: "#experience"},
			{Label: "Contact", Anchor: "#contact"},
		},
	}
)

// StaticRepository serves content held in memory. The zero value is empty;
// use NewStaticRepository for the built-in site content.
type StaticRepository struct {
	experience []ExperienceEntry
	education  Education
	projects   []ProjectEntry
	categories []string
	profile    Profile
}

// StaticOption customises a StaticRepository.
type StaticOption func(*StaticRepository)

// WithExperience replaces the experience list.
func WithExperience(entries ...ExperienceEntry) StaticOption {
	return func(r *StaticRepository) { r.experience = entries }
}

// WithProjects replaces the project list.
func WithProjects(entries ...ProjectEntry) StaticOption {
	return func(r *StaticRepository) { r.projects = entries }
}

// WithCategories replaces the filter categories.
func WithCategories(categories ...string) StaticOption {
	return func(r *StaticRepository) { r.categories = categories }
}

// WithEducation replaces the education card.
func WithEducation(e Education) StaticOption {
	return func(r *StaticRepository) { r.education = e }
}

// WithProfile replaces the footer profile.
func WithProfile(p Profile) StaticOption {
	return func(r *StaticRepository) { r.profile = p }
}

// NewStaticRepository returns a repository over the built-in site content.
func NewStaticRepository(opts ...StaticOption) *StaticRepository {
	r := &StaticRepository{
		experience: experienceData,
		education:  educationData,
		projects:   projectsData,
		categories: filterCategories,
		profile:    profileData,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *StaticRepository) Experience(_ context.Context) ([]ExperienceEntry, error) {
	out := make([]ExperienceEntry, len(r.experience))
	for i, e := range r.experience {
		out[i] = e.clone()
	}
	return out, nil
}

func (r *StaticRepository) Education(_ context.Context) (Education, error) {
	return r.education, nil
}

func (r *StaticRepository) Projects(_ context.Context) ([]ProjectEntry, error) {
	out := make([]ProjectEntry, len(r.projects))
	for i, p := range r.projects {
		out[i] = p.clone()
	}
	return out, nil
}

func (r *StaticRepository) Categories(_ context.Context) ([]string, error) {
	return append([]string{}, r.categories...), nil
}

func (r *StaticRepository) Profile(_ context.Context) (Profile, error) {
	return r.profile.clone(), nil
}
