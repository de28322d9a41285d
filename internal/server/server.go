// Package server is the presentation-facing boundary of the game core: it
// serves full state snapshots after every command and forwards engine
// events to websocket observers. It never reaches into board internals.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quantumgrid/quantumgrid/internal/game"
	"github.com/quantumgrid/quantumgrid/internal/game/events"
)

// Server exposes one game session over HTTP and websocket.
type Server struct {
	engine *game.Engine
	hub    *Hub
	logger zerolog.Logger
}

// New wires a server to the engine and subscribes the hub to the event
// stream so observers can replay collapses with their own pacing.
func New(engine *game.Engine, bus *events.EventBus) *Server {
	s := &Server{
		engine: engine,
		hub:    NewHub(),
		logger: log.With().Str("component", "server").Logger(),
	}

	if bus != nil {
		for _, eventType := range []string{
			events.TypeCellCollapsed,
			events.TypeEntanglementSevered,
			events.TypePhaseChanged,
			events.TypeBotMove,
			events.TypeGameEnded,
		} {
			bus.SubscribeFunc(eventType, s.forwardEvent)
		}
	}
	return s
}

func (s *Server) forwardEvent(e events.Event) {
	s.hub.Broadcast(gin.H{"kind": "event", "event": e})
}

// Router builds the gin routing table.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.healthHandler)
	r.GET("/api/state", s.stateHandler)
	r.POST("/api/move", s.moveHandler)
	r.POST("/api/observe", s.observeHandler)
	r.POST("/api/reset", s.resetHandler)
	r.GET("/ws", s.websocketHandler)

	return r
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) stateHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.engine.Snapshot())
}

type moveRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (s *Server) moveHandler(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	applied := s.engine.ApplyMove(req.Row, req.Col)
	snap := s.engine.Snapshot()
	s.hub.Broadcast(snapshotPayload(snap))
	c.JSON(http.StatusOK, gin.H{"applied": applied, "snapshot": snap})
}

func (s *Server) observeHandler(c *gin.Context) {
	s.engine.StartObservationPhase()
	snap := s.engine.Snapshot()
	s.hub.Broadcast(snapshotPayload(snap))
	c.JSON(http.StatusOK, snap)
}

func (s *Server) resetHandler(c *gin.Context) {
	s.engine.Reset()
	snap := s.engine.Snapshot()
	s.hub.Broadcast(snapshotPayload(snap))
	c.JSON(http.StatusOK, snap)
}

func snapshotPayload(snap game.Snapshot) gin.H {
	return gin.H{"kind": "snapshot", "snapshot": snap}
}
