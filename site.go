package main

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/portfolio"
	"github.com/Zachkp/folio/internal/typewriter"
)

//go:embed templates/*.html
var templatesFS embed.FS

// progressCircumference is the skill ring's circumference (r=30).
const progressCircumference = 2 * math.Pi * 30

var templateFuncs = template.FuncMap{
	"categoryLabel": portfolio.CategoryLabel,
	"dateRange":     portfolio.FormatDateRange,
	"duration":      portfolio.Duration,
	"stagger": func(index int, offset float64) string {
		return fmt.Sprintf("%.1fs", float64(index)*0.1+offset)
	},
	"ringOffset": func(level int) string {
		return fmt.Sprintf("%.2f", progressCircumference*(1-float64(level)/100))
	},
	"ringLength": func() string {
		return fmt.Sprintf("%.2f", progressCircumference)
	},
	"year": func(t time.Time) int { return t.Year() },
}

func loadTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// pageData feeds index.html and the section fragments.
type pageData struct {
	Portfolio    *portfolio.Portfolio
	Groups       []portfolio.SkillGroup
	Categories   []string
	Selected     string
	Skills       []portfolio.Skill
	Projects     []portfolio.Project
	Availability portfolio.Availability
	Hero         typewriter.Snapshot
	Now          time.Time
}

func (s *server) pageData(category string) (pageData, error) {
	skills, err := s.content.FilterSkills(category)
	if err != nil {
		return pageData{}, err
	}
	if category == "" {
		category = portfolio.AllCategories
	}
	now := s.clock.Now()
	return pageData{
		Portfolio:    s.content,
		Groups:       s.content.GroupSkills(),
		Categories:   s.content.Categories(),
		Selected:     category,
		Skills:       skills,
		Projects:     s.content.FeaturedProjects(),
		Availability: portfolio.AvailabilityAt(now, s.loc),
		Hero:         s.heroSnapshot(),
		Now:          now,
	}, nil
}

// heroSnapshot is the first role fully typed, shown until the stream
// takes over.
func (s *server) heroSnapshot() typewriter.Snapshot {
	var st typewriter.State
	if len(s.content.Roles) > 0 {
		st.Text = s.content.Roles[0]
	}
	return typewriter.SnapshotOf(s.content.Roles, st)
}

func (s *server) setupSiteRoutes(r *gin.Engine) {
	// Home page route
	r.GET("/", func(c *gin.Context) {
		data, err := s.pageData(portfolio.AllCategories)
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to render page")
			return
		}
		c.HTML(http.StatusOK, "index.html", data)
	})

	// Skills filter fragment for the category buttons
	r.GET("/sections/skills", func(c *gin.Context) {
		data, err := s.pageData(c.Query("category"))
		if errors.Is(err, portfolio.ErrUnknownCategory) {
			c.String(http.StatusBadRequest, "unknown category")
			return
		}
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to render skills")
			return
		}
		c.HTML(http.StatusOK, "skills-fragment.html", data)
	})

	// Work experience content
	r.GET("/sections/experience", func(c *gin.Context) {
		data, _ := s.pageData(portfolio.AllCategories)
		c.HTML(http.StatusOK, "experience-fragment.html", data)
	})

	r.GET("/api/portfolio", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.content)
	})

	r.GET("/healthz", func(c *gin.Context) {
		if err := s.store.db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
