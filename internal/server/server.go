// HTTP/WebSocket serving layer. The persisted jobs file is the sole source
// of truth: this process only ever reloads it, never writes it.

package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"go-whatsapp-job-monitor/internal/config"
	"go-whatsapp-job-monitor/internal/store"
)

// MonitoringStatus is reported to newly connected websocket clients.
type MonitoringStatus struct {
	TotalJobs  int    `json:"total_jobs"`
	LastUpdate string `json:"last_update"`
}

type Server struct {
	cfg    *config.Config
	store  *store.JobStore
	hub    *Hub
	logger zerolog.Logger

	mu     sync.RWMutex
	status MonitoringStatus

	upgrader websocket.Upgrader
}

func New(cfg *config.Config, st *store.JobStore, logger zerolog.Logger) *Server {
	return &Server{
		cfg:    cfg,
		store:  st,
		hub:    NewHub(logger),
		logger: logger,
		upgrader: websocket.Upgrader{
			//the API is open by design, same as the CORS policy
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Reload re-reads the jobs file and broadcasts the new list plus stats to
// every connected client. Wired as the file watcher's on-change callback.
func (s *Server) Reload() {
	s.store.Load()

	s.mu.Lock()
	s.status = MonitoringStatus{
		TotalJobs:  s.store.Count(),
		LastUpdate: time.Now().Format(time.RFC3339),
	}
	s.mu.Unlock()

	s.logger.Info().Int("jobs", s.store.Count()).Msg("jobs reloaded")
	s.hub.Broadcast(Event{
		Event: "jobs_updated",
		Data: gin.H{
			"jobs":  s.store.All(),
			"stats": s.store.Stats(),
		},
	})
}

// Router builds the gin engine with all API routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:  s.cfg.AllowedOrigins,
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	rateLimiter := NewRateLimiter(s.cfg.RateLimitRPS)

	api := r.Group("/api", rateLimiter.Limit())
	{
		api.GET("/health", s.handleHealth)
		api.GET("/jobs", s.handleJobs)
		api.GET("/jobs/:id", s.handleJob)
		api.GET("/stats", s.handleStats)
		api.GET("/export", s.handleExport)
		api.GET("/images/:filename", s.handleImage)
	}

	r.GET("/ws", s.handleWebSocket)

	return r
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
