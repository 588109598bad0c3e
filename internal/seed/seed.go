// Package seed fills an empty database with demo content and an admin user
// for manual testing.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/importer"
	"portfolio-site/internal/service/content"

	"go.uber.org/zap"
)

//go:embed demo.yaml
var demoYAML []byte

// UserEnsurer creates or resets an admin account.
type UserEnsurer interface {
	EnsureUser(ctx context.Context, email, password string) (*domain.AdminUser, error)
}

// Admin is the account to provision; an empty Email skips it.
type Admin struct {
	Email    string
	Password string
}

// Apply imports demo content into every empty collection and provisions the
// admin user. Running it again leaves populated collections alone.
func Apply(ctx context.Context, svc *content.Service, users UserEnsurer, admin Admin, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	doc, err := importer.Parse(bytes.NewReader(demoYAML))
	if err != nil {
		return fmt.Errorf("parse demo content: %w", err)
	}

	if err := skipPopulated(ctx, svc, doc); err != nil {
		return err
	}
	counts, err := importer.New(svc, logger).Run(ctx, doc)
	if err != nil {
		return fmt.Errorf("import demo content: %w", err)
	}
	logger.Info("demo content seeded", zap.Int("rows", counts.Total()))

	if admin.Email == "" {
		logger.Info("no admin email configured, skipping admin user")
		return nil
	}
	u, err := users.EnsureUser(ctx, admin.Email, admin.Password)
	if err != nil {
		return fmt.Errorf("ensure admin user: %w", err)
	}
	logger.Info("admin user ready", zap.String("user_id", u.ID))
	return nil
}

func skipPopulated(ctx context.Context, svc *content.Service, doc *importer.Document) error {
	var err error
	if doc.Projects, err = keepIfEmpty(ctx, svc.Projects(), doc.Projects); err != nil {
		return err
	}
	if doc.Hackathons, err = keepIfEmpty(ctx, svc.Hackathons(), doc.Hackathons); err != nil {
		return err
	}
	if doc.Experiences, err = keepIfEmpty(ctx, svc.Experiences(), doc.Experiences); err != nil {
		return err
	}
	doc.Links, err = keepIfEmpty(ctx, svc.Links(), doc.Links)
	return err
}

func keepIfEmpty[T any, P content.Entity[T]](ctx context.Context, m *content.Manager[T, P], items []T) ([]T, error) {
	if err := m.Refresh(ctx); err != nil {
		return nil, err
	}
	if len(m.Items()) > 0 {
		return nil, nil
	}
	return items, nil
}
