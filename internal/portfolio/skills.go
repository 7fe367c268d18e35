package portfolio

import (
	"errors"
	"fmt"
)

var ErrUnknownCategory = errors.New("unknown skill category")

var categoryLabels = map[SkillCategory]string{
	Backend:  "Backend Development",
	Frontend: "Frontend Development",
	Database: "Databases",
	DevOps:   "DevOps & Infrastructure",
	Design:   "Design",
	Tools:    "Tools & Methodologies",
}

// CategoryLabel returns the heading for a category. "all" maps to
// "All Skills"; unknown categories are shown as-is.
func CategoryLabel(category string) string {
	if category == AllCategories {
		return "All Skills"
	}
	if label, ok := categoryLabels[SkillCategory(category)]; ok {
		return label
	}
	return category
}

// SkillGroup is one category's skills in display order.
type SkillGroup struct {
	Category SkillCategory
	Label    string
	Skills   []Skill
}

// GroupSkills buckets skills by category. Groups appear in the order
// their first skill does.
func (p *Portfolio) GroupSkills() []SkillGroup {
	var groups []SkillGroup
	index := make(map[SkillCategory]int)
	for _, s := range p.Skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, SkillGroup{
				Category: s.Category,
				Label:    CategoryLabel(string(s.Category)),
			})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

// Categories lists the filter buttons: "all" followed by every category
// that has at least one skill.
func (p *Portfolio) Categories() []string {
	out := []string{AllCategories}
	for _, g := range p.GroupSkills() {
		out = append(out, string(g.Category))
	}
	return out
}

// FilterSkills returns the skills in category, or all of them for "all"
// and the empty string.
func (p *Portfolio) FilterSkills(category string) ([]Skill, error) {
	if category == "" || category == AllCategories {
		return p.Skills, nil
	}
	if _, ok := categoryLabels[SkillCategory(category)]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	var out []Skill
	for _, s := range p.Skills {
		if string(s.Category) == category {
			out = append(out, s)
		}
	}
	return out, nil
}
