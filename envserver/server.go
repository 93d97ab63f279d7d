// Package envserver exposes a single environment instance over HTTP so
// out-of-process drivers can use the transition interface.
package envserver

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/joefarrington/or-gym/spaces"
	"github.com/joefarrington/or-gym/types"
)

// Spaced is implemented by environments that declare their action
// space; the server uses it to validate actions at the boundary.
type Spaced interface {
	ActionSpace() spaces.Space
}

// Server wraps an environment behind an HTTP API. The environment is
// single-threaded, so a mutex serializes all handler access.
type Server struct {
	env    types.Environment
	mu     sync.Mutex
	router *gin.Engine
}

type stepRequest struct {
	Action *int `json:"action" binding:"required"`
}

type stepResponse struct {
	Observation types.Observation `json:"observation"`
	Reward      int               `json:"reward"`
	Done        bool              `json:"done"`
	Info        map[string]any    `json:"info"`
}

type seedRequest struct {
	Seed *uint64 `json:"seed" binding:"required"`
}

func NewServer(env types.Environment) *Server {
	s := &Server{env: env}
	router := gin.Default()
	router.GET("/healthz", s.handleHealth)
	router.POST("/reset", s.handleReset)
	router.POST("/step", s.handleStep)
	router.GET("/sample", s.handleSample)
	router.POST("/seed", s.handleSeed)
	s.router = router
	return s
}

// Run blocks serving the API on the given address
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router, used by the tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (s *Server) handleReset(c *gin.Context) {
	s.mu.Lock()
	obs := s.env.Reset()
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"observation": obs})
}

func (s *Server) handleStep(c *gin.Context) {
	var req stepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !s.validAction(*req.Action) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action out of range"})
		return
	}

	s.mu.Lock()
	obs, reward, done, info := s.env.Step(*req.Action)
	s.mu.Unlock()

	c.JSON(http.StatusOK, stepResponse{
		Observation: obs,
		Reward:      reward,
		Done:        done,
		Info:        info,
	})
}

func (s *Server) handleSample(c *gin.Context) {
	s.mu.Lock()
	action := s.env.SampleAction()
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"action": action})
}

func (s *Server) handleSeed(c *gin.Context) {
	var req seedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	applied := s.env.SetSeed(*req.Seed)
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"seed": applied})
}

// validAction checks the action against the declared action space. The
// core fails loudly on out-of-range actions; remote callers get a 400
// instead.
func (s *Server) validAction(action int) bool {
	spaced, ok := s.env.(Spaced)
	if !ok {
		return true
	}
	discrete, ok := spaced.ActionSpace().(spaces.Discrete)
	if !ok {
		return true
	}
	return discrete.Contains(action)
}
