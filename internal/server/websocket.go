package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type moveAction struct {
	Action string `json:"action"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

func (s *Server) websocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Websocket upgrade failed")
		return
	}

	id := s.hub.Register(conn)
	defer func() {
		s.hub.Unregister(id)
		conn.Close()
	}()

	// New observers get the full state immediately.
	if err := conn.WriteJSON(snapshotPayload(s.engine.Snapshot())); err != nil {
		return
	}

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var base map[string]interface{}
		if err := json.Unmarshal(msg, &base); err != nil {
			s.logger.Debug().Err(err).Msg("Bad websocket payload")
			continue
		}
		action, ok := base["action"].(string)
		if !ok {
			continue
		}

		switch action {
		case "move":
			var mv moveAction
			if err := json.Unmarshal(msg, &mv); err != nil {
				continue
			}
			s.engine.ApplyMove(mv.Row, mv.Col)
			s.hub.Broadcast(snapshotPayload(s.engine.Snapshot()))

		case "observe":
			s.engine.StartObservationPhase()
			s.hub.Broadcast(snapshotPayload(s.engine.Snapshot()))

		case "reset":
			s.engine.Reset()
			s.hub.Broadcast(snapshotPayload(s.engine.Snapshot()))

		case "state":
			// Reply to the asking client only.
			s.hub.mu.RLock()
			cl := s.hub.clients[id]
			s.hub.mu.RUnlock()
			if cl != nil {
				cl.writeMu.Lock()
				_ = cl.conn.WriteJSON(snapshotPayload(s.engine.Snapshot()))
				cl.writeMu.Unlock()
			}

		default:
			s.logger.Debug().Str("action", action).Msg("Unknown websocket action")
		}
	}
}
