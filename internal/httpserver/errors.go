package httpserver

import (
	"errors"
	"net/http"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/i18n"
	authsvc "portfolio-site/internal/service/auth"
	"portfolio-site/internal/service/content"
	"portfolio-site/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fail maps err to a status and a localized body. extra is merged into the
// body, which is how reorder failures hand back the re-fetched list.
func (h *handler) fail(c *gin.Context, err error, extra gin.H) {
	var (
		op   content.Op
		coll domain.Collection
	)
	var opErr *content.OpError
	if errors.As(err, &opErr) {
		op, coll = opErr.Op, opErr.Collection
	}

	tag := h.locale(c)
	status := http.StatusInternalServerError
	key := i18n.Internal
	var args []any

	switch {
	case errors.Is(err, authsvc.ErrInvalidToken):
		status, key = http.StatusUnauthorized, i18n.Unauthorized
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		status, key = http.StatusUnauthorized, i18n.InvalidCredentials
	case errors.Is(err, authsvc.ErrSignUpDisabled):
		status, key = http.StatusForbidden, i18n.SignUpDisabled
	case errors.Is(err, storage.ErrTooLarge):
		status, key = http.StatusBadRequest, i18n.UploadTooLarge
		args = []any{h.maxUploadMB()}
	case errors.Is(err, storage.ErrNotImage):
		status, key = http.StatusBadRequest, i18n.UploadNotImage
	case errors.Is(err, domain.ErrInvalidInput):
		status, key = http.StatusBadRequest, i18n.InvalidInput
	case errors.Is(err, domain.ErrNotFound):
		status, key = http.StatusNotFound, i18n.NotFound
	case errors.Is(err, domain.ErrConflict):
		status, key = http.StatusConflict, i18n.Conflict
	case errors.Is(err, domain.ErrAlreadyExists):
		status, key = http.StatusConflict, i18n.AlreadyExists
	}

	body := gin.H{"code": string(key)}
	if status == http.StatusInternalServerError && op != "" {
		body["error"] = h.tr.OpFailed(tag, string(op), coll)
		body["code"] = string(op)
	} else {
		body["error"] = h.tr.Message(tag, key, args...)
	}
	if status == http.StatusBadRequest && key == i18n.InvalidInput {
		body["detail"] = err.Error()
	}
	for k, v := range extra {
		body[k] = v
	}

	fields := []zap.Field{
		zap.String("op", string(op)),
		zap.String("collection", string(coll)),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields...)
	} else {
		h.logger.Info("request rejected", fields...)
	}
	_ = c.Error(err)
	c.JSON(status, body)
}

func (h *handler) maxUploadMB() int64 {
	if h.deps.Uploads == nil {
		return 5
	}
	return h.deps.Uploads.MaxBytes() >> 20
}
