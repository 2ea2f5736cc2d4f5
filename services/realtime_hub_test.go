package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// One goroutine publishes events through the hub while another sends
// keepalive pings on the same client, the way the websocket handler does.
// gorilla/websocket panics on concurrent writes, so this fails loudly if
// the two paths ever stop sharing the client's write lock.
func TestPublishAndPingShareOneWriter(t *testing.T) {
	hub := NewRealtimeHub()
	upgrader := websocket.Upgrader{}

	registered := make(chan *WSClient, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		cl := &WSClient{UserID: 7, Conn: conn}
		hub.Register(cl)
		registered <- cl
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.Unregister(cl)
				return
			}
		}
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	cl := <-registered

	const events = 50
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < events; i++ {
			hub.Publish(7, Event{Kind: EventFoodLogged, Payload: i})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < events; i++ {
			_ = cl.Write(websocket.PingMessage, nil)
		}
	}()
	wg.Wait()

	// pings are control frames the client swallows; only events surface
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for got := 0; got < events; got++ {
		_, _, err := conn.ReadMessage()
		require.NoError(t, err, "received %d of %d events", got, events)
	}
}
