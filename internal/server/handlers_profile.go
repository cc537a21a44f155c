package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adelr/studypet/internal/progression"
	"github.com/adelr/studypet/internal/store"
)

// loadProfile fetches the caller's profile or writes the 404 itself.
func (s *Server) loadProfile(c *gin.Context) (*store.Profile, bool) {
	p, err := s.deps.Store.Profiles().Fetch(c.Request.Context(), currentUser(c))
	if err != nil {
		s.deps.Log.Error("fetch profile failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return nil, false
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return nil, false
	}
	return p, true
}

// applyProgress folds an updated progress back into the profile struct
// so the response reflects the state the user just earned, without
// waiting for the async write.
func applyProgress(p *store.Profile, prog progression.Progress) {
	p.XP = prog.XP()
	p.Level = string(prog.Level())
	p.CurrentStreak = prog.CurrentStreak()
	p.MaxStreak = prog.MaxStreak()
	p.LastStudyDate = prog.LastStudyDate()
}

func (s *Server) handleProfileGet(c *gin.Context) {
	p, ok := s.loadProfile(c)
	if !ok {
		return
	}

	// Reading the profile is when a lapsed streak gets noticed.
	prog := s.deps.Progression.CheckStreakExpiry(c.Request.Context(), p.Progress(), time.Now())
	applyProgress(p, prog)

	c.JSON(http.StatusOK, gin.H{"status": "success", "profile": p})
}

func (s *Server) handleProfileCreate(c *gin.Context) {
	var body struct {
		Name             string `json:"name"`
		AnimalType       string `json:"animalType"`
		AnimalName       string `json:"animalName"`
		AnimalColor      string `json:"animalColor"`
		StudyGoalMinutes int    `json:"studyGoalMinutes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Name == "" || body.AnimalType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid 'name' or 'animalType'"})
		return
	}

	userID := currentUser(c)
	existing, err := s.deps.Store.Profiles().Fetch(c.Request.Context(), userID)
	if err != nil {
		s.deps.Log.Error("fetch profile failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Profile already exists"})
		return
	}

	p := &store.Profile{
		UserID:           userID,
		Name:             body.Name,
		AnimalType:       body.AnimalType,
		AnimalName:       body.AnimalName,
		AnimalColor:      body.AnimalColor,
		StudyGoalMinutes: body.StudyGoalMinutes,
	}
	if err := s.deps.Store.Profiles().Create(c.Request.Context(), p); err != nil {
		s.deps.Log.Error("create profile failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
		return
	}

	created, err := s.deps.Store.Profiles().Fetch(c.Request.Context(), userID)
	if err != nil || created == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "profile": created})
}

func (s *Server) handleProfileAddXP(c *gin.Context) {
	var body struct {
		Amount int `json:"amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid 'amount'"})
		return
	}

	p, ok := s.loadProfile(c)
	if !ok {
		return
	}

	prog := s.deps.Progression.AddXP(c.Request.Context(), p.Progress(), body.Amount)
	applyProgress(p, prog)

	c.JSON(http.StatusOK, gin.H{"status": "success", "profile": p})
}

// handleProfileSpend deducts XP for a cosmetic purchase. Insufficient
// balance is a normal outcome, not an error status.
func (s *Server) handleProfileSpend(c *gin.Context) {
	var body struct {
		Cost int `json:"cost"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Cost <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid 'cost'"})
		return
	}

	p, ok := s.loadProfile(c)
	if !ok {
		return
	}

	prog, spent := s.deps.Progression.SubtractXP(c.Request.Context(), p.Progress(), body.Cost)
	applyProgress(p, prog)

	c.JSON(http.StatusOK, gin.H{"status": "success", "ok": spent, "profile": p})
}
