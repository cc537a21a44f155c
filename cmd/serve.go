package cmd

import (
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/adelr/studypet/internal/config"
	"github.com/adelr/studypet/internal/llm"
	"github.com/adelr/studypet/internal/logger"
	"github.com/adelr/studypet/internal/progression"
	"github.com/adelr/studypet/internal/quiz"
	"github.com/adelr/studypet/internal/server"
	"github.com/adelr/studypet/internal/stats"
	"github.com/adelr/studypet/internal/store"
	"github.com/adelr/studypet/internal/study"
	"github.com/adelr/studypet/internal/wolfram"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Missing .env is fine; real deployments set the environment.
	_ = godotenv.Load()

	cfg := config.FromEnv()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return err
	}
	defer log.Sync()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, err := llm.NewProvider(ctx, llm.ConfigFromEnv(), log)
	if err != nil {
		return err
	}

	prog := progression.NewService(st.Profiles(), log)

	var statsProvider stats.Provider = stats.NewStoreProvider(st.Profiles(), st.Sessions(), st.Attempts())
	if cfg.StatsProvider == "mock" {
		log.Info("serving mock stats", "reason", "STATS_PROVIDER=mock")
		statsProvider = stats.MockProvider{}
	}

	srv := server.New(server.Deps{
		Config:      cfg,
		Log:         log,
		Store:       st,
		Progression: prog,
		Quiz:        quiz.NewService(provider),
		Study:       study.NewService(st.Sessions(), st.Profiles(), prog),
		Planner:     study.NewPlanner(provider),
		Wolfram:     wolfram.NewClient(cfg.WolframAppID),
		Assistant:   wolfram.NewAssistant(provider),
		Stats:       statsProvider,
	})

	err = srv.Run(ctx)

	// Let in-flight progression writes land before the store closes.
	prog.Wait()
	return err
}
