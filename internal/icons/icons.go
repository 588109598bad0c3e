// Package icons maps the icon names stored on content rows to what a client
// should render for them.
package icons

import (
	"net/url"
	"sort"
	"strings"
	"unicode"
)

// Kind selects the renderer for an icon.
type Kind string

const (
	KindLucide    Kind = "lucide"
	KindEmoji     Kind = "emoji"
	KindSkillIcon Kind = "skillicon"
)

const skillIconsBase = "https://skillicons.dev/icons"

// Icon is a resolved renderer descriptor. Value is a Lucide component name,
// an emoji, or an image URL depending on Kind.
type Icon struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value"`
}

// Option is one entry of the project-link icon picker.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  Icon   `json:"icon"`
}

// Registry resolves icon names. The zero value is not usable; use Default.
type Registry struct {
	byName   map[string]Icon
	options  []Option
	fallback Icon
}

var projectLinkOptions = []struct {
	value, label, lucide string
}{
	{"link", "Link", "Link"},
	{"github", "GitHub", "Github"},
	{"external", "Site", "ExternalLink"},
	{"docs", "Documentação", "FileText"},
	{"instagram", "Instagram", "Instagram"},
	{"drive", "Google Drive", "Database"},
	{"news", "Notícias", "Newspaper"},
	{"youtube", "YouTube", "Youtube"},
	{"linkedin", "LinkedIn", "Linkedin"},
	{"email", "Email", "Mail"},
}

// lucideNames are the Lucide components offered for the links page.
var lucideNames = []string{
	"Link", "Github", "ExternalLink", "FileText", "Instagram", "Database",
	"Newspaper", "Youtube", "Linkedin", "Mail", "Globe", "Twitter", "Twitch",
	"Code", "Briefcase", "Laptop", "Music", "Phone", "MessageCircle", "Heart",
	"Star", "BookOpen", "Camera", "Gamepad2", "Coffee", "Rocket", "Gitlab",
	"Figma", "Dribbble", "Facebook", "Send", "Calendar", "Award", "Trophy",
}

// Default returns the registry used by the site.
func Default() *Registry {
	r := &Registry{
		byName:   make(map[string]Icon, len(projectLinkOptions)+len(lucideNames)),
		fallback: Icon{Kind: KindLucide, Value: "Link"},
	}
	for _, name := range lucideNames {
		r.byName[strings.ToLower(name)] = Icon{Kind: KindLucide, Value: name}
	}
	for _, o := range projectLinkOptions {
		ic := Icon{Kind: KindLucide, Value: o.lucide}
		r.byName[o.value] = ic
		r.options = append(r.options, Option{Value: o.value, Label: o.label, Icon: ic})
	}
	return r
}

// Resolve returns the renderer for name. Emoji render as themselves and
// anything unknown falls back to the Link icon.
func (r *Registry) Resolve(name string) Icon {
	name = strings.TrimSpace(name)
	if name == "" {
		return r.fallback
	}
	if ic, ok := r.byName[strings.ToLower(name)]; ok {
		return ic
	}
	if IsEmoji(name) {
		return Icon{Kind: KindEmoji, Value: name}
	}
	return r.fallback
}

// Known reports whether name resolves without falling back.
func (r *Registry) Known(name string) bool {
	name = strings.TrimSpace(name)
	if _, ok := r.byName[strings.ToLower(name)]; ok {
		return true
	}
	return IsEmoji(name)
}

// ProjectLinkOptions lists the icons offered for project links, in picker
// order.
func (r *Registry) ProjectLinkOptions() []Option {
	out := make([]Option, len(r.options))
	copy(out, r.options)
	return out
}

// LucideNames lists the Lucide components the links page can use, sorted.
func (r *Registry) LucideNames() []string {
	out := make([]string, 0, len(r.byName))
	seen := map[string]bool{}
	for _, ic := range r.byName {
		if ic.Kind == KindLucide && !seen[ic.Value] {
			seen[ic.Value] = true
			out = append(out, ic.Value)
		}
	}
	sort.Strings(out)
	return out
}

// SkillIcon renders a technology through skillicons.dev.
func SkillIcon(slug string) Icon {
	v := url.Values{}
	v.Set("i", strings.ToLower(strings.TrimSpace(slug)))
	return Icon{Kind: KindSkillIcon, Value: skillIconsBase + "?" + v.Encode()}
}

// IsEmoji reports whether s is made of pictographic symbols, ignoring
// joiners and variation selectors.
func IsEmoji(s string) bool {
	seen := false
	for _, r := range s {
		switch {
		case r == 0x200d, r >= 0xfe00 && r <= 0xfe0f, r >= 0x1f3fb && r <= 0x1f3ff:
			continue
		case unicode.Is(unicode.So, r), r >= 0x1f000 && r <= 0x1faff:
			seen = true
		default:
			return false
		}
	}
	return seen
}
