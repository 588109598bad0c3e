package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/realtime"
	"portfolio-site/internal/service/content"

	"github.com/gorilla/websocket"
)

func TestSubscribe_RequiresToken(t *testing.T) {
	router := newTestRouter(t, newMemoryLinkRepo(), newStubAuth(), func(d *Deps) {
		d.Hub = realtime.NewHub(logDiscard())
	})

	rec := do(router, http.MethodGet, "/admin/ws", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSubscribe_ReceivesChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := realtime.NewHub(logDiscard())
	go hub.Run(ctx)

	links := newMemoryLinkRepo("a")
	router := newTestRouter(t, links, newStubAuth(), func(d *Deps) {
		d.Hub = hub
		d.Content = content.NewService(content.Stores{Links: links, Ordering: links}, hub, logDiscard())
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/admin/ws?access_token=" + adminToken
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Connected() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if hub.Connected() != 1 {
		t.Fatalf("expected one subscriber, got %d", hub.Connected())
	}

	rec := do(router, http.MethodPost, "/admin/api/links", `{"title":"b","url":"https://example.com/b"}`, asAdmin()...)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read event: %v", err)
	}
	var ev realtime.Event
	if err := json.Unmarshal(data, &ev); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if ev.Collection != domain.CollectionLinks || ev.Op != string(content.OpCreate) {
		t.Fatalf("unexpected event: %+v", ev)
	}
}
