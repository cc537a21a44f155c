package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adelr/studypet/internal/study"
)

func (s *Server) handleSessionStart(c *gin.Context) {
	var body struct {
		Topic           string `json:"topic"`
		DurationSeconds int    `json:"durationSeconds"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid 'topic'"})
		return
	}

	sess, err := s.deps.Study.Start(c.Request.Context(), currentUser(c), body.Topic, body.DurationSeconds)
	if err != nil {
		s.deps.Log.Error("start session failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "session": sess})
}

func (s *Server) handleSessionComplete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session id"})
		return
	}

	p, ok := s.loadProfile(c)
	if !ok {
		return
	}

	sess, prog, err := s.deps.Study.Complete(c.Request.Context(), currentUser(c), id, p.Progress(), time.Now())
	if err != nil {
		s.sessionError(c, err, "complete")
		return
	}
	applyProgress(p, prog)

	c.JSON(http.StatusOK, gin.H{"status": "success", "session": sess, "profile": p})
}

func (s *Server) handleSessionCancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session id"})
		return
	}

	sess, err := s.deps.Study.Cancel(c.Request.Context(), currentUser(c), id, time.Now())
	if err != nil {
		s.sessionError(c, err, "cancel")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "session": sess})
}

func (s *Server) sessionError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, study.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, study.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Session belongs to another user"})
	default:
		s.deps.Log.Error("session "+action+" failed", "error", err)
		c.JSON(http.StatusConflict, gin.H{"error": "Session is not active"})
	}
}

func (s *Server) handleStudyPlan(c *gin.Context) {
	var body struct {
		Topic            string `json:"topic"`
		AvailableMinutes int    `json:"availableMinutes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid 'topic'"})
		return
	}

	plan, err := s.deps.Planner.Generate(c.Request.Context(), body.Topic, body.AvailableMinutes)
	if err != nil {
		s.deps.Log.Error("plan generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "plan": plan})
}
