package domain

import "strings"

// Project is a portfolio project card.
type Project struct {
	Record
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	ImageURL    string        `json:"image_url" yaml:"image_url"`
	Tags        []string      `json:"tags" yaml:"tags"`
	Links       []ProjectLink `json:"links" yaml:"links"`
}

// ProjectLink is an external reference shown on a project card.
type ProjectLink struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
	Icon string `json:"icon" yaml:"icon"`
}

// Validate trims and checks submitted project fields.
func (p *Project) Validate() error {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return invalid("title required")
	}
	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	p.Tags = tags
	for i := range p.Links {
		l := &p.Links[i]
		l.Name = strings.TrimSpace(l.Name)
		l.URL = strings.TrimSpace(l.URL)
		if l.Name == "" || l.URL == "" {
			return invalid("project links need a name and url")
		}
		if strings.TrimSpace(l.Icon) == "" {
			l.Icon = "link"
		}
	}
	if p.Links == nil {
		p.Links = []ProjectLink{}
	}
	return nil
}
