package httpserver

import (
	"net/http"
	"strings"
	"time"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/i18n"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const (
	adminCtxKey = "admin"
	tokenCtxKey = "token"
)

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

// requireAdmin rejects requests without a valid admin session. Websocket
// upgrades cannot set headers from a browser, so allowQuery also accepts
// ?access_token=.
func (h *handler) requireAdmin(allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" && allowQuery {
			token = strings.TrimSpace(c.Query("access_token"))
		}
		if token == "" {
			h.abort(c, http.StatusUnauthorized, i18n.Unauthorized)
			return
		}
		user, err := h.deps.Auth.CurrentUser(c.Request.Context(), token)
		if err != nil {
			h.fail(c, err, nil)
			c.Abort()
			return
		}
		c.Set(adminCtxKey, user)
		c.Set(tokenCtxKey, token)
		c.Next()
	}
}

func bearerToken(header string) string {
	if len(header) < len("bearer ") || !strings.EqualFold(header[:len("bearer ")], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("bearer "):])
}

func currentAdmin(c *gin.Context) *domain.AdminUser {
	v, ok := c.Get(adminCtxKey)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.AdminUser)
	return u
}

func (h *handler) locale(c *gin.Context) language.Tag {
	return h.tr.Resolve(c.Query("lang"), c.GetHeader("Accept-Language"))
}

func (h *handler) abort(c *gin.Context, status int, key i18n.Key, args ...any) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": h.tr.Message(h.locale(c), key, args...),
		"code":  string(key),
	})
}
