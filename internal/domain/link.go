package domain

import (
	"net/url"
	"strings"
)

// DefaultLinkIcon is the Lucide icon new links start with.
const DefaultLinkIcon = "Link"

// Link is an entry on the public links page.
type Link struct {
	Record
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
	Icon  string `json:"icon" yaml:"icon"`
}

func (l *Link) Validate() error {
	l.Title = strings.TrimSpace(l.Title)
	l.URL = strings.TrimSpace(l.URL)
	if l.Title == "" {
		return invalid("title required")
	}
	if l.URL == "" {
		return invalid("url required")
	}
	if u, err := url.Parse(l.URL); err != nil || u.Scheme == "" {
		return invalid("url must be absolute")
	}
	if strings.TrimSpace(l.Icon) == "" {
		l.Icon = DefaultLinkIcon
	}
	return nil
}
