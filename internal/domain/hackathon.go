package domain

import "strings"

type Hackathon struct {
	Record
	Title       string  `json:"title" yaml:"title"`
	BannerURL   string  `json:"banner_url" yaml:"banner_url"`
	Description string  `json:"description" yaml:"description"`
	Date        string  `json:"date" yaml:"date"`
	Result      *string `json:"result" yaml:"result"`
}

func (h *Hackathon) Validate() error {
	h.Title = strings.TrimSpace(h.Title)
	if h.Title == "" {
		return invalid("title required")
	}
	if h.Result != nil {
		r := strings.TrimSpace(*h.Result)
		if r == "" {
			h.Result = nil
		} else {
			h.Result = &r
		}
	}
	return nil
}
