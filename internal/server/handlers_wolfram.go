package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adelr/studypet/internal/wolfram"
)

func (s *Server) handleWolframAssist(c *gin.Context) {
	var body wolfram.AssistRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.Task == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid 'task'"})
		return
	}

	input, err := s.deps.Assistant.BuildInput(c.Request.Context(), body)
	if err != nil {
		s.deps.Log.Error("wolfram assist failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build Wolfram query"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "wolframInput": input})
}

func (s *Server) handleWolframQuery(c *gin.Context) {
	var body struct {
		Input string `json:"input"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Input == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid 'input'"})
		return
	}

	res, err := s.deps.Wolfram.Query(c.Request.Context(), body.Input)
	if err != nil {
		if errors.Is(err, wolfram.ErrNoAppID) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Wolfram is not configured"})
			return
		}
		s.deps.Log.Error("wolfram query failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Wolfram query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"input":         res.Input,
		"primaryResult": res.PrimaryResult,
		"explanations":  res.Explanations,
	})
}
