// Package server exposes the HTTP API consumed by the companion app.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/adelr/studypet/internal/config"
	"github.com/adelr/studypet/internal/logger"
	"github.com/adelr/studypet/internal/progression"
	"github.com/adelr/studypet/internal/quiz"
	"github.com/adelr/studypet/internal/stats"
	"github.com/adelr/studypet/internal/store"
	"github.com/adelr/studypet/internal/study"
	"github.com/adelr/studypet/internal/wolfram"
)

// Deps carries everything the handlers need.
type Deps struct {
	Config      config.Config
	Log         *logger.Logger
	Store       *store.Store
	Progression *progression.Service
	Quiz        *quiz.Service
	Study       *study.Service
	Planner     *study.Planner
	Wolfram     *wolfram.Client
	Assistant   *wolfram.Assistant
	Stats       stats.Provider
}

// Server is the HTTP front of the app.
type Server struct {
	deps   Deps
	engine *gin.Engine
	http   *http.Server
}

// allowedOrigin keeps the CORS layer usable with a partial config. The
// cors middleware refuses origins without an http(s) scheme, so anything
// else falls back to the same default config.FromEnv would pick.
func allowedOrigin(origin string) string {
	if origin == "*" || strings.HasPrefix(origin, "http://") || strings.HasPrefix(origin, "https://") {
		return origin
	}
	return config.DefaultFrontendOrigin
}

// New builds the router and wires every route.
func New(deps Deps) *Server {
	if deps.Config.LogMode != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{deps: deps}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(deps.Log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowedOrigin(deps.Config.FrontendOrigin)},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-User-ID"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")
	api.GET("/health", s.handleHealth)

	authed := api.Group("")
	authed.Use(requireUser(deps.Config.AuthSecret))

	quizGroup := authed.Group("/quiz")
	quizGroup.POST("/from-text", s.handleQuizFromText)
	quizGroup.GET("/themes", s.handleQuizThemes)
	quizGroup.POST("/from-theme", s.handleQuizFromTheme)
	quizGroup.POST("/complete", s.handleQuizComplete)

	profileGroup := authed.Group("/profile")
	profileGroup.GET("", s.handleProfileGet)
	profileGroup.POST("", s.handleProfileCreate)
	profileGroup.POST("/xp", s.handleProfileAddXP)
	profileGroup.POST("/spend", s.handleProfileSpend)

	studyGroup := authed.Group("/study")
	studyGroup.POST("/sessions", s.handleSessionStart)
	studyGroup.POST("/sessions/:id/complete", s.handleSessionComplete)
	studyGroup.POST("/sessions/:id/cancel", s.handleSessionCancel)
	studyGroup.POST("/plan", s.handleStudyPlan)

	wolframGroup := authed.Group("/wolfram")
	wolframGroup.POST("/assist", s.handleWolframAssist)
	wolframGroup.POST("/query", s.handleWolframQuery)

	authed.GET("/stats", s.handleStats)

	s.engine = router
	return s
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	s.http = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.deps.Config.Port),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.deps.Log.Info("server listening", "port", s.deps.Config.Port)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "studypet-backend"})
}
