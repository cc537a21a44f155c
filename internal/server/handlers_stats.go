package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleStats(c *gin.Context) {
	summary, err := s.deps.Stats.Summarize(c.Request.Context(), currentUser(c), time.Now())
	if err != nil {
		s.deps.Log.Error("stats aggregation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "stats": summary})
}
