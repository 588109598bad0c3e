package domain

import "strings"

// DefaultExperienceIcon is used when an experience is saved without an icon.
const DefaultExperienceIcon = "💻"

type Experience struct {
	Record
	Title       string `json:"title" yaml:"title"`
	Company     string `json:"company" yaml:"company"`
	Period      string `json:"period" yaml:"period"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
}

func (e *Experience) Validate() error {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return invalid("title required")
	}
	e.Company = strings.TrimSpace(e.Company)
	if strings.TrimSpace(e.Icon) == "" {
		e.Icon = DefaultExperienceIcon
	}
	return nil
}
