package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"go-whatsapp-job-monitor/internal/store"
)

// handleHealth handles GET /api/health
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().Format(time.RFC3339),
		"jobs_loaded": s.store.Count(),
		"clients":     s.hub.ClientCount(),
	})
}

// handleJobs handles GET /api/jobs with optional dateFrom/dateTo/search/type
// filters. Response shape: {jobs, count, total}.
func (s *Server) handleJobs(c *gin.Context) {
	q := store.Query{
		DateFrom: c.Query("dateFrom"),
		DateTo:   c.Query("dateTo"),
		Search:   c.Query("search"),
		Type:     c.DefaultQuery("type", "all"),
	}

	filtered := s.store.Filter(q)

	c.JSON(http.StatusOK, gin.H{
		"jobs":  filtered,
		"count": len(filtered),
		"total": s.store.Count(),
	})
}

// handleJob handles GET /api/jobs/:id
func (s *Server) handleJob(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	job, ok := s.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// handleStats handles GET /api/stats
func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Stats())
}

// handleExport handles GET /api/export: the full unfiltered array.
func (s *Server) handleExport(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.All())
}

// handleImage handles GET /api/images/:filename, looking in the screenshots
// dir first and the extracted-images dir second.
func (s *Server) handleImage(c *gin.Context) {
	filename := c.Param("filename")
	//reject traversal attempts before touching the filesystem
	if filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filename"})
		return
	}

	for _, dir := range []string{s.cfg.ScreenshotsDir, s.cfg.ExtractedImagesDir} {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			c.File(path)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
}

// handleWebSocket upgrades GET /ws and serves the push channel: initial_data
// on connect, jobs_updated on file change or client request_update.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	cl := newClient(conn)
	s.hub.add(cl)

	s.mu.RLock()
	status := s.status
	s.mu.RUnlock()

	s.hub.Send(cl.id, Event{
		Event: "initial_data",
		Data: gin.H{
			"jobs":              s.store.All(),
			"stats":             s.store.Stats(),
			"monitoring_status": status,
		},
	})

	go s.writePump(cl)
	go s.readPump(cl)
}

func (s *Server) writePump(cl *client) {
	for ev := range cl.send {
		if err := cl.conn.WriteJSON(ev); err != nil {
			s.hub.remove(cl.id)
			return
		}
	}
}

func (s *Server) readPump(cl *client) {
	defer s.hub.remove(cl.id)
	for {
		var msg struct {
			Event string `json:"event"`
		}
		if err := cl.conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Event == "request_update" {
			s.hub.Send(cl.id, Event{
				Event: "jobs_updated",
				Data: gin.H{
					"jobs":  s.store.All(),
					"stats": s.store.Stats(),
				},
			})
		}
	}
}
