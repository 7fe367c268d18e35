package portfolio

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidContent = errors.New("invalid portfolio content")

// Load reads content from a YAML file. An empty path returns Default().
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML content and validates it.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the invariants the templates rely on.
func (p *Portfolio) Validate() error {
	var errs []error
	if p.Personal.Name == "" {
		errs = append(errs, errors.New("personal.name is required"))
	}
	for _, s := range p.Skills {
		if s.Level < 1 || s.Level > 100 {
			errs = append(errs, fmt.Errorf("skill %q: level %d outside 1..100", s.ID, s.Level))
		}
		if _, ok := categoryLabels[s.Category]; !ok {
			errs = append(errs, fmt.Errorf("skill %q: unknown category %q", s.ID, s.Category))
		}
	}
	for _, w := range p.Experience {
		if w.EndDate != nil && w.EndDate.Before(w.StartDate) {
			errs = append(errs, fmt.Errorf("experience %q: ends before it starts", w.ID))
		}
	}
	for _, pr := range p.Projects {
		switch pr.Status {
		case Completed, InProgress, Planned, Archived:
		default:
			errs = append(errs, fmt.Errorf("project %q: unknown status %q", pr.ID, pr.Status))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidContent, errors.Join(errs...))
	}
	return nil
}
