package content

import (
	"context"
	"errors"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/realtime"
	"portfolio-site/internal/reorder"
	"portfolio-site/internal/repository/ordering"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Entity is satisfied by pointers to the managed content types.
type Entity[T any] interface {
	*T
	Meta() domain.Record
	SetMeta(domain.Record)
	SetOrderIndex(int)
	Validate() error
}

// Repo is the per-table CRUD store a Manager drives.
type Repo[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (*T, error)
	Update(ctx context.Context, id int64, item T) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// Notifier receives an event after every successful mutation.
type Notifier interface {
	Publish(ev realtime.Event)
}

// Manager owns the list state of one collection for the lifetime of a single
// admin interaction. It is not safe for concurrent use; build one per
// request.
type Manager[T any, P Entity[T]] struct {
	coll   domain.Collection
	repo   Repo[T]
	order  ordering.Repository
	notify Notifier
	logger *zap.Logger
	items  []T
}

// NewManager builds a Manager with an empty list. Call Refresh before acting.
func NewManager[T any, P Entity[T]](coll domain.Collection, repo Repo[T], order ordering.Repository, notify Notifier, logger *zap.Logger) *Manager[T, P] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager[T, P]{
		coll:   coll,
		repo:   repo,
		order:  order,
		notify: notify,
		logger: logger.With(zap.String("collection", string(coll))),
	}
}

// Collection reports which collection the manager drives.
func (m *Manager[T, P]) Collection() domain.Collection {
	return m.coll
}

// Items returns a copy of the current list in display order.
func (m *Manager[T, P]) Items() []T {
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

// Refresh replaces the local list with the store's.
func (m *Manager[T, P]) Refresh(ctx context.Context) error {
	items, err := m.repo.List(ctx)
	if err != nil {
		return m.fail(OpFetch, 0, err)
	}
	if items == nil {
		items = []T{}
	}
	m.items = items
	return nil
}

// Create appends item after the last row, taking the store's maximum into
// account in case another session appended since the last Refresh.
func (m *Manager[T, P]) Create(ctx context.Context, item T) (*T, error) {
	if err := P(&item).Validate(); err != nil {
		return nil, &OpError{Op: OpCreate, Collection: m.coll, Err: err}
	}
	next := reorder.Next(m.rows())
	stored, err := m.order.MaxOrder(ctx, m.coll)
	if err != nil {
		return nil, m.fail(OpCreate, 0, err)
	}
	next = max(next, stored+1)
	P(&item).SetMeta(domain.Record{OrderIndex: next})

	created, err := m.repo.Create(ctx, item)
	if err != nil {
		return nil, m.fail(OpCreate, 0, err)
	}
	id := P(created).Meta().ID
	m.publish(OpCreate, id)
	m.refreshQuietly(ctx)
	return created, nil
}

// Update overwrites the display fields of row id. The order value is left
// untouched.
func (m *Manager[T, P]) Update(ctx context.Context, id int64, item T) (*T, error) {
	if err := P(&item).Validate(); err != nil {
		return nil, &OpError{Op: OpUpdate, Collection: m.coll, Err: err}
	}
	updated, err := m.repo.Update(ctx, id, item)
	if err != nil {
		m.refreshQuietly(ctx)
		return nil, m.fail(OpUpdate, id, err)
	}
	m.publish(OpUpdate, id)
	m.refreshQuietly(ctx)
	return updated, nil
}

// Delete removes row id and then rebuilds a contiguous order for the rest.
func (m *Manager[T, P]) Delete(ctx context.Context, id int64) error {
	if err := m.repo.Delete(ctx, id); err != nil {
		m.refreshQuietly(ctx)
		return m.fail(OpDelete, id, err)
	}
	m.publish(OpDelete, id)

	kept := m.items[:0:0]
	for _, item := range m.items {
		if P(&item).Meta().ID != id {
			kept = append(kept, item)
		}
	}
	m.items = kept
	return m.Rebuild(ctx)
}

// Move swaps row id with its neighbour. The local list changes before the
// store confirms; if either write fails the list is re-fetched and the error
// returned. Moving past either end, or an unknown id, is a no-op.
func (m *Manager[T, P]) Move(ctx context.Context, id int64, dir reorder.Direction) error {
	res, ok := reorder.Move(m.rows(), id, dir)
	if !ok {
		return nil
	}
	m.apply(res.Rows)

	g, gctx := errgroup.WithContext(ctx)
	for _, row := range res.Changed {
		g.Go(func() error {
			return m.order.SetOrder(gctx, m.coll, row)
		})
	}
	if err := g.Wait(); err != nil {
		opErr := m.fail(OpReorder, id, err)
		m.refreshQuietly(ctx)
		return opErr
	}

	m.bumpVersions(res.Changed[0].ID, res.Changed[1].ID)
	m.publish(OpReorder, id)
	return nil
}

// Rebuild rewrites order values to 0..n-1 in current display order, in one
// transaction, and then re-fetches.
func (m *Manager[T, P]) Rebuild(ctx context.Context) error {
	current := m.rows()
	if reorder.Contiguous(current) {
		return m.Refresh(ctx)
	}
	rebuilt := reorder.Rebuild(current)

	byID := make(map[int64]int, len(current))
	for _, r := range current {
		byID[r.ID] = r.OrderIndex
	}
	changed := make([]reorder.Row, 0, len(rebuilt))
	for _, r := range rebuilt {
		if byID[r.ID] != r.OrderIndex {
			changed = append(changed, r)
		}
	}

	if len(changed) > 0 {
		if err := m.order.Apply(ctx, m.coll, changed); err != nil {
			opErr := m.fail(OpReorder, 0, err)
			m.refreshQuietly(ctx)
			return opErr
		}
		m.publish(OpReorder, 0)
	}
	return m.Refresh(ctx)
}

func (m *Manager[T, P]) rows() []reorder.Row {
	rows := make([]reorder.Row, len(m.items))
	for i := range m.items {
		meta := P(&m.items[i]).Meta()
		rows[i] = reorder.Row{ID: meta.ID, OrderIndex: meta.OrderIndex, Version: meta.Version}
	}
	return rows
}

// apply rewrites order values and positions to match rows.
func (m *Manager[T, P]) apply(rows []reorder.Row) {
	byID := make(map[int64]T, len(m.items))
	for _, item := range m.items {
		byID[P(&item).Meta().ID] = item
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		item, ok := byID[r.ID]
		if !ok {
			continue
		}
		P(&item).SetOrderIndex(r.OrderIndex)
		out = append(out, item)
	}
	m.items = out
}

func (m *Manager[T, P]) bumpVersions(ids ...int64) {
	for i := range m.items {
		p := P(&m.items[i])
		meta := p.Meta()
		for _, id := range ids {
			if meta.ID == id {
				meta.Version++
				p.SetMeta(meta)
			}
		}
	}
}

func (m *Manager[T, P]) refreshQuietly(ctx context.Context) {
	if err := m.Refresh(ctx); err != nil {
		m.logger.Warn("refresh after change failed", zap.Error(err))
	}
}

func (m *Manager[T, P]) publish(op Op, id int64) {
	if m.notify == nil {
		return
	}
	m.notify.Publish(realtime.Event{Collection: m.coll, Op: string(op), ID: id})
}

func (m *Manager[T, P]) fail(op Op, id int64, err error) error {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr
	}
	m.logger.Error("remote operation failed",
		zap.String("op", string(op)),
		zap.Int64("id", id),
		zap.Error(err))
	return &OpError{Op: op, Collection: m.coll, Err: err}
}
