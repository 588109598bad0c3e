// Package profile serves the static part of the site: hero, about, quote
// and tech stack.
package profile

import (
	_ "embed"
	"fmt"
	"strings"

	"portfolio-site/internal/icons"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var defaultYAML []byte

// Category groups technologies in the tech stack filter.
type Category string

const (
	CategoryLanguage  Category = "language"
	CategoryFramework Category = "framework"
	CategoryTool      Category = "tool"
	CategoryDatabase  Category = "database"
)

// Categories lists the filter tabs in display order.
func Categories() []Category {
	return []Category{CategoryLanguage, CategoryFramework, CategoryTool, CategoryDatabase}
}

type Profile struct {
	Hero      Hero   `yaml:"hero" json:"hero"`
	About     About  `yaml:"about" json:"about"`
	Quote     Quote  `yaml:"quote" json:"quote"`
	TechStack []Tech `yaml:"tech_stack" json:"tech_stack"`
}

type Hero struct {
	Handle   string `yaml:"handle" json:"handle"`
	Name     string `yaml:"name" json:"name"`
	Role     string `yaml:"role" json:"role"`
	CTALabel string `yaml:"cta_label" json:"cta_label"`
	CTAURL   string `yaml:"cta_url" json:"cta_url"`
}

type About struct {
	PhotoURL    string      `yaml:"photo_url" json:"photo_url"`
	Bio         []string    `yaml:"bio" json:"bio"`
	Socials     []Social    `yaml:"socials" json:"socials"`
	Personality Personality `yaml:"personality" json:"personality"`
	SoftSkills  []Skill     `yaml:"soft_skills" json:"soft_skills"`
}

type Social struct {
	Name  string     `yaml:"name" json:"name"`
	Icon  string     `yaml:"icon" json:"-"`
	URL   string     `yaml:"url" json:"url"`
	Glyph icons.Icon `yaml:"-" json:"icon"`
}

type Personality struct {
	Title     string `yaml:"title" json:"title"`
	Source    string `yaml:"source" json:"source"`
	SourceURL string `yaml:"source_url" json:"source_url"`
	ResultURL string `yaml:"result_url" json:"result_url"`
	Summary   string `yaml:"summary" json:"summary"`
}

type Skill struct {
	Name  string     `yaml:"name" json:"name"`
	Icon  string     `yaml:"icon" json:"-"`
	Glyph icons.Icon `yaml:"-" json:"icon"`
}

type Quote struct {
	Text   string `yaml:"text" json:"text"`
	Author string `yaml:"author" json:"author"`
}

type Tech struct {
	Name     string     `yaml:"name" json:"name"`
	Slug     string     `yaml:"slug" json:"slug"`
	Category Category   `yaml:"category" json:"category"`
	Glyph    icons.Icon `yaml:"-" json:"icon"`
}

// Load parses the embedded profile and resolves its icons.
func Load(reg *icons.Registry) (*Profile, error) {
	return Parse(defaultYAML, reg)
}

// Parse decodes a profile document and resolves its icons.
func Parse(data []byte, reg *icons.Registry) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	for i := range p.About.Socials {
		p.About.Socials[i].Glyph = reg.Resolve(p.About.Socials[i].Icon)
	}
	for i := range p.About.SoftSkills {
		p.About.SoftSkills[i].Glyph = reg.Resolve(p.About.SoftSkills[i].Icon)
	}
	for i := range p.TechStack {
		p.TechStack[i].Glyph = icons.SkillIcon(p.TechStack[i].Slug)
	}
	return &p, nil
}

// Tech returns the technologies in category, or all of them for "" or "all".
func (p *Profile) Tech(category string) []Tech {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == "all" {
		return append([]Tech(nil), p.TechStack...)
	}
	var out []Tech
	for _, t := range p.TechStack {
		if string(t.Category) == category {
			out = append(out, t)
		}
	}
	return out
}

func (p *Profile) validate() error {
	if strings.TrimSpace(p.Hero.Name) == "" {
		return fmt.Errorf("profile: hero.name required")
	}
	known := map[Category]bool{}
	for _, c := range Categories() {
		known[c] = true
	}
	for _, t := range p.TechStack {
		if t.Name == "" || t.Slug == "" {
			return fmt.Errorf("profile: tech entries need name and slug")
		}
		if !known[t.Category] {
			return fmt.Errorf("profile: tech %q has unknown category %q", t.Name, t.Category)
		}
	}
	return nil
}
