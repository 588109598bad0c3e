package seed

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/importer"
	"portfolio-site/internal/reorder"
	"portfolio-site/internal/service/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo[T any, P content.Entity[T]] struct {
	nextID int64
	rows   []T
}

func (r *memRepo[T, P]) List(context.Context) ([]T, error) {
	return append([]T(nil), r.rows...), nil
}

func (r *memRepo[T, P]) Get(context.Context, int64) (*T, error) { return nil, domain.ErrNotFound }

func (r *memRepo[T, P]) Create(_ context.Context, item T) (*T, error) {
	r.nextID++
	meta := P(&item).Meta()
	meta.ID = r.nextID
	P(&item).SetMeta(meta)
	r.rows = append(r.rows, item)
	return &item, nil
}

func (r *memRepo[T, P]) Update(context.Context, int64, T) (*T, error) {
	return nil, errors.New("not used")
}
func (r *memRepo[T, P]) Delete(context.Context, int64) error { return errors.New("not used") }

type noOrdering struct{}

func (noOrdering) MaxOrder(context.Context, domain.Collection) (int, error) { return -1, nil }
func (noOrdering) SetOrder(context.Context, domain.Collection, reorder.Row) error {
	return errors.New("not used")
}
func (noOrdering) Apply(context.Context, domain.Collection, []reorder.Row) error {
	return errors.New("not used")
}

type stubUsers struct {
	emails []string
}

func (s *stubUsers) EnsureUser(_ context.Context, email, _ string) (*domain.AdminUser, error) {
	s.emails = append(s.emails, email)
	return &domain.AdminUser{ID: "u1", Email: email}, nil
}

type stores struct {
	projects    *memRepo[domain.Project, *domain.Project]
	hackathons  *memRepo[domain.Hackathon, *domain.Hackathon]
	experiences *memRepo[domain.Experience, *domain.Experience]
	links       *memRepo[domain.Link, *domain.Link]
}

func newStores() (stores, *content.Service) {
	s := stores{
		projects:    &memRepo[domain.Project, *domain.Project]{},
		hackathons:  &memRepo[domain.Hackathon, *domain.Hackathon]{},
		experiences: &memRepo[domain.Experience, *domain.Experience]{},
		links:       &memRepo[domain.Link, *domain.Link]{},
	}
	svc := content.NewService(content.Stores{
		Projects:    s.projects,
		Hackathons:  s.hackathons,
		Experiences: s.experiences,
		Links:       s.links,
		Ordering:    noOrdering{},
	}, nil, nil)
	return s, svc
}

func TestDemoDocumentIsValid(t *testing.T) {
	doc, err := importer.Parse(bytes.NewReader(demoYAML))
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Projects)
	assert.NotEmpty(t, doc.Hackathons)
	assert.NotEmpty(t, doc.Experiences)
	assert.NotEmpty(t, doc.Links)
}

func TestApply_SeedsEmptyStoreOnce(t *testing.T) {
	s, svc := newStores()
	users := &stubUsers{}
	admin := Admin{Email: "admin@example.com", Password: "Abcdefg1"}

	require.NoError(t, Apply(context.Background(), svc, users, admin, nil))
	links := len(s.links.rows)
	assert.Positive(t, links)
	assert.Equal(t, []string{"admin@example.com"}, users.emails)

	require.NoError(t, Apply(context.Background(), svc, users, admin, nil))
	assert.Len(t, s.links.rows, links)
}

func TestApply_OnlyFillsEmptyCollections(t *testing.T) {
	s, svc := newStores()
	s.links.rows = []domain.Link{{Record: domain.Record{ID: 99}, Title: "Mine", URL: "https://mine.example"}}

	require.NoError(t, Apply(context.Background(), svc, &stubUsers{}, Admin{}, nil))

	assert.Len(t, s.links.rows, 1)
	assert.NotEmpty(t, s.projects.rows)
}
