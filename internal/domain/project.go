package domain

// Project is a portfolio entry testimonials can be attached to. The catalog
// is compiled in; project content changes ship with the binary.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	URL         string   `json:"url,omitempty"`
}

var projects = []Project{
	{
		ID:          "1",
		Title:       "Company Profile Website",
		Description: "Marketing site with CMS-backed content and a blog for a logistics company.",
		Tech:        []string{"Next.js", "Tailwind CSS", "Supabase"},
		URL:         "https://example.com/company-profile",
	},
	{
		ID:          "2",
		Title:       "Online Store Dashboard",
		Description: "Inventory and order management dashboard for a small online store.",
		Tech:        []string{"React", "TypeScript", "PostgreSQL"},
	},
	{
		ID:          "3",
		Title:       "Booking Platform",
		Description: "Appointment booking platform with calendar sync and email reminders.",
		Tech:        []string{"Go", "PostgreSQL", "Redis"},
	},
	{
		ID:          "4",
		Title:       "Landing Page Toolkit",
		Description: "Reusable landing page components with A/B testing hooks.",
		Tech:        []string{"Next.js", "Tailwind CSS"},
	},
}

// Projects returns the catalog in display order.
func Projects() []Project {
	out := make([]Project, len(projects))
	copy(out, projects)
	return out
}

// ProjectByID looks up a project by its ID. The second return value reports
// whether the project exists.
func ProjectByID(id string) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
