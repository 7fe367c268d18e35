// Package portfolio holds the site's content: the owner's details,
// skills, work history and projects, plus the helpers the templates use
// to group and format them.
package portfolio

import "time"

type SkillCategory string

const (
	Frontend SkillCategory = "frontend"
	Backend  SkillCategory = "backend"
	Database SkillCategory = "database"
	DevOps   SkillCategory = "devops"
	Design   SkillCategory = "design"
	Tools    SkillCategory = "tools"
)

// AllCategories selects every skill in FilterSkills.
const AllCategories = "all"

type ProjectStatus string

const (
	Completed  ProjectStatus = "completed"
	InProgress ProjectStatus = "in-progress"
	Planned    ProjectStatus = "planned"
	Archived   ProjectStatus = "archived"
)

type SocialLink struct {
	ID       string `json:"id" yaml:"id"`
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
	Icon     string `json:"icon" yaml:"icon"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
}

// External reports whether the link leaves the site (mailto links don't).
func (l SocialLink) External() bool {
	return l.Platform != "Email"
}

type PersonalInfo struct {
	Name        string       `json:"name" yaml:"name"`
	Title       string       `json:"title" yaml:"title"`
	Bio         string       `json:"bio" yaml:"bio"`
	Location    string       `json:"location" yaml:"location"`
	Email       string       `json:"email" yaml:"email"`
	Phone       string       `json:"phone,omitempty" yaml:"phone,omitempty"`
	Avatar      string       `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	ResumeURL   string       `json:"resume_url,omitempty" yaml:"resume_url,omitempty"`
	SocialLinks []SocialLink `json:"social_links" yaml:"social_links"`
}

type Skill struct {
	ID       string        `json:"id" yaml:"id"`
	Name     string        `json:"name" yaml:"name"`
	Level    int           `json:"level" yaml:"level"` // 1-100
	Category SkillCategory `json:"category" yaml:"category"`
	Icon     string        `json:"icon,omitempty" yaml:"icon,omitempty"`
}

type WorkExperience struct {
	ID           string     `json:"id" yaml:"id"`
	Company      string     `json:"company" yaml:"company"`
	Position     string     `json:"position" yaml:"position"`
	StartDate    time.Time  `json:"start_date" yaml:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Description  string     `json:"description" yaml:"description"`
	Technologies []string   `json:"technologies" yaml:"technologies"`
	Achievements []string   `json:"achievements" yaml:"achievements"`
	Location     string     `json:"location" yaml:"location"`
	CompanyURL   string     `json:"company_url,omitempty" yaml:"company_url,omitempty"`
}

type Project struct {
	ID              string        `json:"id" yaml:"id"`
	Title           string        `json:"title" yaml:"title"`
	Description     string        `json:"description" yaml:"description"`
	LongDescription string        `json:"long_description,omitempty" yaml:"long_description,omitempty"`
	Technologies    []string      `json:"technologies" yaml:"technologies"`
	ImageURL        string        `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	DemoURL         string        `json:"demo_url,omitempty" yaml:"demo_url,omitempty"`
	CodeURL         string        `json:"code_url,omitempty" yaml:"code_url,omitempty"`
	Featured        bool          `json:"featured" yaml:"featured"`
	StartDate       time.Time     `json:"start_date" yaml:"start_date"`
	EndDate         *time.Time    `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Status          ProjectStatus `json:"status" yaml:"status"`
}

type NavigationItem struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

// Portfolio is everything the page renders.
type Portfolio struct {
	Personal   PersonalInfo     `json:"personal" yaml:"personal"`
	Roles      []string         `json:"roles" yaml:"roles"`
	Navigation []NavigationItem `json:"navigation" yaml:"navigation"`
	Skills     []Skill          `json:"skills" yaml:"skills"`
	Experience []WorkExperience `json:"experience" yaml:"experience"`
	Projects   []Project        `json:"projects" yaml:"projects"`
}

// FeaturedProjects returns featured projects first, keeping the
// declared order inside each group.
func (p *Portfolio) FeaturedProjects() []Project {
	out := make([]Project, 0, len(p.Projects))
	for _, pr := range p.Projects {
		if pr.Featured {
			out = append(out, pr)
		}
	}
	for _, pr := range p.Projects {
		if !pr.Featured {
			out = append(out, pr)
		}
	}
	return out
}
