// Package importer loads portfolio content from a YAML document and appends
// it to the store in file order.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/service/content"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Document is the import file layout. Every section is optional.
type Document struct {
	Projects    []domain.Project    `yaml:"projects"`
	Hackathons  []domain.Hackathon  `yaml:"hackathons"`
	Experiences []domain.Experience `yaml:"experiences"`
	Links       []domain.Link       `yaml:"links"`
}

// Counts reports how many rows were appended per collection.
type Counts map[domain.Collection]int

// Total sums every collection.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Parse decodes and validates a document. Unknown keys are rejected so typos
// do not silently drop fields.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) validate() error {
	if err := validateAll(domain.CollectionProjects, d.Projects); err != nil {
		return err
	}
	if err := validateAll(domain.CollectionHackathons, d.Hackathons); err != nil {
		return err
	}
	if err := validateAll(domain.CollectionExperiences, d.Experiences); err != nil {
		return err
	}
	return validateAll(domain.CollectionLinks, d.Links)
}

func validateAll[T any, P content.Entity[T]](coll domain.Collection, items []T) error {
	for i := range items {
		if err := P(&items[i]).Validate(); err != nil {
			return fmt.Errorf("%s[%d]: %w", coll, i, err)
		}
	}
	return nil
}

// Importer appends a Document through the content managers, so each row
// gets the next order value and change events are published.
type Importer struct {
	svc    *content.Service
	logger *zap.Logger
}

func New(svc *content.Service, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{svc: svc, logger: logger.Named("importer")}
}

// Run appends every section of doc. It stops at the first failure; rows
// written before it stay written.
func (i *Importer) Run(ctx context.Context, doc *Document) (Counts, error) {
	counts := Counts{}
	var err error

	if counts[domain.CollectionProjects], err = appendAll(ctx, i.svc.Projects(), doc.Projects); err != nil {
		return counts, err
	}
	if counts[domain.CollectionHackathons], err = appendAll(ctx, i.svc.Hackathons(), doc.Hackathons); err != nil {
		return counts, err
	}
	if counts[domain.CollectionExperiences], err = appendAll(ctx, i.svc.Experiences(), doc.Experiences); err != nil {
		return counts, err
	}
	if counts[domain.CollectionLinks], err = appendAll(ctx, i.svc.Links(), doc.Links); err != nil {
		return counts, err
	}

	for coll, n := range counts {
		if n > 0 {
			i.logger.Info("imported", zap.String("collection", string(coll)), zap.Int("rows", n))
		}
	}
	return counts, nil
}

func appendAll[T any, P content.Entity[T]](ctx context.Context, m *content.Manager[T, P], items []T) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if err := m.Refresh(ctx); err != nil {
		return 0, err
	}
	for n, item := range items {
		if _, err := m.Create(ctx, item); err != nil {
			return n, fmt.Errorf("%s[%d]: %w", m.Collection(), n, err)
		}
	}
	return len(items), nil
}
