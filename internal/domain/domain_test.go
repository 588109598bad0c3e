package domain

import (
	"errors"
	"testing"
)

func TestParseCollection(t *testing.T) {
	got, err := ParseCollection("  Links ")
	if err != nil || got != CollectionLinks {
		t.Fatalf("expected links, got %q err=%v", got, err)
	}
	if _, err := ParseCollection("widgets"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLinkValidate(t *testing.T) {
	l := Link{Title: " GitHub ", URL: " https://github.com/example "}
	if err := l.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if l.Title != "GitHub" || l.URL != "https://github.com/example" || l.Icon != DefaultLinkIcon {
		t.Fatalf("unexpected normalised link: %+v", l)
	}

	for _, bad := range []Link{
		{URL: "https://example.com"},
		{Title: "x"},
		{Title: "x", URL: "example.com"},
	} {
		if err := bad.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", bad, err)
		}
	}
}

func TestProjectValidate(t *testing.T) {
	p := Project{
		Title: "Site",
		Tags:  []string{" go ", "", "pgx"},
		Links: []ProjectLink{{Name: "Code", URL: "https://example.com"}},
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(p.Tags) != 2 || p.Tags[0] != "go" {
		t.Fatalf("unexpected tags: %q", p.Tags)
	}
	if p.Links[0].Icon != "link" {
		t.Fatalf("expected fallback icon, got %q", p.Links[0].Icon)
	}

	p.Links = append(p.Links, ProjectLink{Name: "Docs"})
	if err := p.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for link without url, got %v", err)
	}
}

func TestHackathonValidate_BlankResultIsNil(t *testing.T) {
	blank := "  "
	h := Hackathon{Title: "Hack", Result: &blank}
	if err := h.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if h.Result != nil {
		t.Fatalf("expected nil result, got %q", *h.Result)
	}
}

func TestExperienceValidate_DefaultIcon(t *testing.T) {
	e := Experience{Title: "Dev"}
	if err := e.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if e.Icon != DefaultExperienceIcon {
		t.Fatalf("expected default icon, got %q", e.Icon)
	}
	if err := (&Experience{}).Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
