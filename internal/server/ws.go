package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ukaji3/cpdash-go/pkg/cpdash/models"
)

const (
	wsReadTimeout  = 90 * time.Second
	wsWriteTimeout = 10 * time.Second
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// wsMessage is a session reply: either a state update or an error.
type wsMessage struct {
	State  *models.ViewState `json:"state,omitempty"`
	Update *models.Update    `json:"update,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// handleWS runs one dashboard session. The connection owns its ViewState;
// each text message is an event and gets exactly one reply.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-r.Context().Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	s.log.Debug("session opened", "remote", r.RemoteAddr)
	defer s.log.Debug("session closed", "remote", r.RemoteAddr)

	var state models.ViewState
	for {
		_ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
		mt, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		var req eventRequest
		var reply wsMessage
		if err := json.Unmarshal(data, &req); err != nil {
			reply.Error = "invalid event"
		} else {
			next, update, err := s.dash.Handler.Handle(state, models.Event{Triggered: req.Triggered})
			if err != nil {
				reply.Error = err.Error()
			} else {
				state = next
				reply.State = &next
				reply.Update = &update
			}
		}

		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}
