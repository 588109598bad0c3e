package content

import (
	"context"
	"fmt"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/repository/experience"
	"portfolio-site/internal/repository/hackathon"
	"portfolio-site/internal/repository/link"
	"portfolio-site/internal/repository/ordering"
	"portfolio-site/internal/repository/project"

	"go.uber.org/zap"
)

type (
	ProjectManager    = Manager[domain.Project, *domain.Project]
	HackathonManager  = Manager[domain.Hackathon, *domain.Hackathon]
	ExperienceManager = Manager[domain.Experience, *domain.Experience]
	LinkManager       = Manager[domain.Link, *domain.Link]
)

// Service hands out fresh managers bound to the content store.
type Service struct {
	projects    project.Repository
	hackathons  hackathon.Repository
	experiences experience.Repository
	links       link.Repository
	order       ordering.Repository
	notify      Notifier
	logger      *zap.Logger
}

// Stores groups the repositories a Service needs.
type Stores struct {
	Projects    project.Repository
	Hackathons  hackathon.Repository
	Experiences experience.Repository
	Links       link.Repository
	Ordering    ordering.Repository
}

func NewService(stores Stores, notify Notifier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		projects:    stores.Projects,
		hackathons:  stores.Hackathons,
		experiences: stores.Experiences,
		links:       stores.Links,
		order:       stores.Ordering,
		notify:      notify,
		logger:      logger.Named("content"),
	}
}

func (s *Service) Projects() *ProjectManager {
	return NewManager[domain.Project, *domain.Project](domain.CollectionProjects, s.projects, s.order, s.notify, s.logger)
}

func (s *Service) Hackathons() *HackathonManager {
	return NewManager[domain.Hackathon, *domain.Hackathon](domain.CollectionHackathons, s.hackathons, s.order, s.notify, s.logger)
}

func (s *Service) Experiences() *ExperienceManager {
	return NewManager[domain.Experience, *domain.Experience](domain.CollectionExperiences, s.experiences, s.order, s.notify, s.logger)
}

func (s *Service) Links() *LinkManager {
	return NewManager[domain.Link, *domain.Link](domain.CollectionLinks, s.links, s.order, s.notify, s.logger)
}

// Rebuild renumbers one collection to 0..n-1.
func (s *Service) Rebuild(ctx context.Context, coll domain.Collection) error {
	switch coll {
	case domain.CollectionProjects:
		return refreshThen(ctx, s.Projects(), (*ProjectManager).Rebuild)
	case domain.CollectionHackathons:
		return refreshThen(ctx, s.Hackathons(), (*HackathonManager).Rebuild)
	case domain.CollectionExperiences:
		return refreshThen(ctx, s.Experiences(), (*ExperienceManager).Rebuild)
	case domain.CollectionLinks:
		return refreshThen(ctx, s.Links(), (*LinkManager).Rebuild)
	default:
		return fmt.Errorf("%w: unknown collection %q", domain.ErrInvalidInput, coll)
	}
}

// RebuildAll renumbers every collection, stopping at the first failure.
func (s *Service) RebuildAll(ctx context.Context) error {
	for _, coll := range domain.Collections() {
		if err := s.Rebuild(ctx, coll); err != nil {
			return err
		}
	}
	return nil
}

func refreshThen[T any, P Entity[T]](ctx context.Context, m *Manager[T, P], fn func(*Manager[T, P], context.Context) error) error {
	if err := m.Refresh(ctx); err != nil {
		return err
	}
	return fn(m, ctx)
}
