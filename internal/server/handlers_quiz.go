package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adelr/studypet/internal/quiz"
	"github.com/adelr/studypet/internal/store"
)

func (s *Server) handleQuizFromText(c *gin.Context) {
	var body struct {
		Topic        string `json:"topic"`
		NumQuestions int    `json:"numQuestions"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid 'topic'"})
		return
	}

	q, err := s.deps.Quiz.FromText(c.Request.Context(), body.Topic, body.NumQuestions)
	if err != nil {
		s.deps.Log.Error("quiz generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate quiz"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "questions": q.Questions})
}

func (s *Server) handleQuizThemes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success", "themes": quiz.ThemesByCategory()})
}

func (s *Server) handleQuizFromTheme(c *gin.Context) {
	var body struct {
		ThemeID      string `json:"themeId"`
		NumQuestions int    `json:"numQuestions"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.ThemeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid 'themeId'"})
		return
	}

	q, theme, err := s.deps.Quiz.FromTheme(c.Request.Context(), body.ThemeID, body.NumQuestions)
	if err != nil {
		if errors.Is(err, quiz.ErrThemeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Theme not found"})
			return
		}
		s.deps.Log.Error("themed quiz generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate themed quiz"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"themeId": theme.ID,
		"themeData": gin.H{
			"theme":      theme.Theme,
			"subTheme":   theme.SubTheme,
			"difficulty": theme.Difficulty,
			"title":      theme.Title,
		},
		"questions": q.Questions,
	})
}

// handleQuizComplete grades a finished quiz server-side and applies
// the reward exactly once, when the client reports the result.
func (s *Server) handleQuizComplete(c *gin.Context) {
	var body struct {
		Topic     string          `json:"topic"`
		ThemeID   string          `json:"themeId"`
		Questions []quiz.Question `json:"questions"`
		Answers   []int           `json:"answers"`
	}
	// An empty quiz is fine: reward 0, but the completion still counts
	// as today's study activity.
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz result"})
		return
	}

	p, ok := s.loadProfile(c)
	if !ok {
		return
	}

	numCorrect := quiz.Grade(body.Questions, body.Answers)
	reward := quiz.Score(numCorrect)
	now := time.Now()
	prog := s.deps.Progression.ApplyQuizReward(c.Request.Context(), p.Progress(), reward, now)
	applyProgress(p, prog)

	attempt := &store.Attempt{
		UserID:       currentUser(c),
		Topic:        body.Topic,
		ThemeID:      body.ThemeID,
		NumQuestions: len(body.Questions),
		NumCorrect:   numCorrect,
		XPAwarded:    reward,
	}
	if err := s.deps.Store.Attempts().Record(c.Request.Context(), attempt); err != nil {
		s.deps.Log.Error("record attempt failed", "error", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"numCorrect": numCorrect,
		"xpAwarded":  reward,
		"profile":    p,
	})
}
