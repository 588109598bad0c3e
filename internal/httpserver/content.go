package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/reorder"
	"portfolio-site/internal/service/content"

	"github.com/gin-gonic/gin"
)

type moveRequest struct {
	Direction string `json:"direction" binding:"required"`
	// Version, when set, must match the row the client is looking at.
	Version int `json:"version"`
}

type collectionRoutes[T any, P content.Entity[T]] struct {
	h          *handler
	coll       domain.Collection
	newManager func() *content.Manager[T, P]
	present    func([]T) any
}

// mountCollection registers the public list and the admin CRUD and reorder
// routes for one collection. present shapes the public list; nil serves the
// rows as stored.
func mountCollection[T any, P content.Entity[T]](public, admin *gin.RouterGroup, h *handler, coll domain.Collection, newManager func() *content.Manager[T, P], present func([]T) any) {
	r := &collectionRoutes[T, P]{h: h, coll: coll, newManager: newManager, present: present}
	base := "/" + string(coll)

	public.GET(base, r.publicList)

	admin.GET(base, r.list)
	admin.POST(base, r.create)
	admin.POST(base+"/rebuild", r.rebuild)
	admin.PUT(base+"/:id", r.update)
	admin.DELETE(base+"/:id", r.remove)
	admin.POST(base+"/:id/move", r.move)
}

func (r *collectionRoutes[T, P]) publicList(c *gin.Context) {
	m := r.newManager()
	if err := m.Refresh(c.Request.Context()); err != nil {
		r.h.fail(c, err, nil)
		return
	}
	items := m.Items()
	if r.present != nil {
		c.JSON(http.StatusOK, gin.H{"items": r.present(items)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (r *collectionRoutes[T, P]) list(c *gin.Context) {
	m := r.newManager()
	if err := m.Refresh(c.Request.Context()); err != nil {
		r.h.fail(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": m.Items()})
}

func (r *collectionRoutes[T, P]) create(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		r.h.fail(c, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err), nil)
		return
	}
	ctx := c.Request.Context()
	m := r.newManager()
	if err := m.Refresh(ctx); err != nil {
		r.h.fail(c, err, nil)
		return
	}
	created, err := m.Create(ctx, item)
	if err != nil {
		r.h.fail(c, err, gin.H{"items": m.Items()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": created, "items": m.Items()})
}

func (r *collectionRoutes[T, P]) update(c *gin.Context) {
	id, ok := r.id(c)
	if !ok {
		return
	}
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		r.h.fail(c, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err), nil)
		return
	}
	m := r.newManager()
	updated, err := m.Update(c.Request.Context(), id, item)
	if err != nil {
		r.h.fail(c, err, gin.H{"items": m.Items()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": updated, "items": m.Items()})
}

func (r *collectionRoutes[T, P]) remove(c *gin.Context) {
	id, ok := r.id(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	m := r.newManager()
	if err := m.Refresh(ctx); err != nil {
		r.h.fail(c, err, nil)
		return
	}
	if err := m.Delete(ctx, id); err != nil {
		r.h.fail(c, err, gin.H{"items": m.Items()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": m.Items()})
}

func (r *collectionRoutes[T, P]) move(c *gin.Context) {
	id, ok := r.id(c)
	if !ok {
		return
	}
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		r.h.fail(c, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err), nil)
		return
	}
	dir, err := reorder.ParseDirection(req.Direction)
	if err != nil {
		r.h.fail(c, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err), nil)
		return
	}

	ctx := c.Request.Context()
	m := r.newManager()
	if err := m.Refresh(ctx); err != nil {
		r.h.fail(c, err, nil)
		return
	}
	if req.Version > 0 && !r.hasVersion(m.Items(), id, req.Version) {
		r.h.fail(c, &content.OpError{Op: content.OpReorder, Collection: r.coll, Err: domain.ErrConflict}, gin.H{"items": m.Items()})
		return
	}
	if err := m.Move(ctx, id, dir); err != nil {
		r.h.fail(c, err, gin.H{"items": m.Items()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": m.Items()})
}

func (r *collectionRoutes[T, P]) rebuild(c *gin.Context) {
	ctx := c.Request.Context()
	m := r.newManager()
	if err := m.Refresh(ctx); err != nil {
		r.h.fail(c, err, nil)
		return
	}
	if err := m.Rebuild(ctx); err != nil {
		r.h.fail(c, err, gin.H{"items": m.Items()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": m.Items()})
}

func (r *collectionRoutes[T, P]) id(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		r.h.fail(c, fmt.Errorf("%w: invalid id %q", domain.ErrInvalidInput, c.Param("id")), nil)
		return 0, false
	}
	return id, true
}

// hasVersion reports whether row id is present; a missing row is left for
// Move to treat as a no-op.
func (r *collectionRoutes[T, P]) hasVersion(items []T, id int64, version int) bool {
	for i := range items {
		meta := P(&items[i]).Meta()
		if meta.ID == id {
			return meta.Version == version
		}
	}
	return true
}
