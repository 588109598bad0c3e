package httpserver

import (
	"net/http"
	"slices"

	"portfolio-site/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

func (h *handler) upgrader() websocket.Upgrader {
	origins := h.deps.CORSOrigins
	return websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || len(origins) == 0 || slices.Contains(origins, "*") {
				return true
			}
			return slices.Contains(origins, origin)
		},
	}
}

// subscribe streams content change events to an authenticated admin until
// either side closes.
func (h *handler) subscribe(c *gin.Context) {
	if h.deps.Hub == nil {
		h.abort(c, http.StatusServiceUnavailable, i18n.Internal)
		return
	}
	up := h.upgrader()
	conn, err := up.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Info("websocket upgrade failed", zap.Error(err))
		return
	}
	if u := currentAdmin(c); u != nil {
		h.logger.Info("admin subscribed to changes", zap.String("user_id", u.ID))
	}
	h.deps.Hub.Attach(conn)
}
