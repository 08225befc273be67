package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"nhooyr.io/websocket"

	"github.com/mtlab/wfirma-go/pkg/internal/types"
)

// hub tracks the websocket subscribers of one server.
type hub struct {
	mu   sync.Mutex
	subs map[chan string]struct{}
}

func newHub() *hub {
	return &hub{subs: make(map[chan string]struct{})}
}

func (h *hub) subscribe() chan string {
	ch := make(chan string, 4)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *hub) unsubscribe(ch chan string) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// broadcast delivers the event to every subscriber with buffer room and
// returns the delivered count. A subscriber that stopped draining loses
// events rather than blocking the broadcast.
func (h *hub) broadcast(event string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	delivered := 0
	for ch := range h.subs {
		select {
		case ch <- event:
			delivered++
		default:
		}
	}
	return delivered
}

type wsEvent struct {
	Event string `json:"event"`
	At    string `json:"at"`
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.NotifyLoggers(types.WarnLevel, "%s => level: WARN, event: WSAccept, request_id: %s, error: %v => Websocket upgrade failed", s.componentMetadata, RequestID(r.Context()), err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "stream ended")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	events := s.hub.subscribe()
	defer s.hub.unsubscribe(events)

	// Reads only notice the peer going away; the feed is one-way.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	s.NotifyLoggers(types.DebugLevel, "%s => level: DEBUG, event: WSSubscribe, request_id: %s => Page subscribed", s.componentMetadata, RequestID(r.Context()))

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			payload, err := json.Marshal(wsEvent{Event: event, At: time.Now().UTC().Format(time.RFC3339)})
			if err != nil {
				return
			}
			if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
				return
			}
		}
	}
}
