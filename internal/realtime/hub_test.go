package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-site/internal/domain"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestHub_DeliversEventsAndShutsDownCleanly(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil)
	hubDone := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(hubDone)
	}()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Attach(conn)
	}))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return hub.Connected() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Publish(Event{Collection: domain.CollectionLinks, Op: "reorder", ID: 3})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev Event
	require.NoError(t, json.Unmarshal(data, &ev))
	assert.Equal(t, domain.CollectionLinks, ev.Collection)
	assert.Equal(t, "reorder", ev.Op)
	assert.Equal(t, int64(3), ev.ID)
	assert.False(t, ev.At.IsZero())

	cancel()
	<-hubDone
	assert.Equal(t, 0, hub.Connected())

	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
	conn.Close()
	srv.Close()
}

func TestHub_PublishOnNilHubIsNoop(t *testing.T) {
	var hub *Hub
	hub.Publish(Event{Collection: domain.CollectionProjects})
}
