package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/avg-cs-student/jcblocks/internal/api"
	"github.com/avg-cs-student/jcblocks/internal/constants"
	"github.com/avg-cs-student/jcblocks/internal/game"
	"github.com/avg-cs-student/jcblocks/internal/logging"
	"github.com/avg-cs-student/jcblocks/internal/service"
	"github.com/avg-cs-student/jcblocks/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := storage.OpenAndMigrate(cfg.DBPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{constants.LogFieldPath: cfg.DBPath})
	}
	repo := storage.NewSQLiteRepository(db)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Background scanner: periodically abandon games nobody has touched
	// within the idle timeout.
	go runIdleScanner(ctx, repo, cfg.IdleTimeout, cfg.ScanInterval)

	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := api.NewGameHandler(repo, cfg.Rules, rand.New(rand.NewSource(time.Now().UnixNano())))
	router := api.NewRouter(handler, requestLogger())

	srv := &http.Server{Addr: cfg.ServerAddress, Handler: router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: cfg.ServerAddress})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Fatal("Failed to start server", err, nil)
	}
	logging.Info("Server stopped", nil)
	return nil
}

type idleRepo interface {
	service.GameRepo
	FindIdleGames(before time.Time) ([]game.Game, error)
}

// runIdleScanner abandons idle games every interval until ctx is done.
func runIdleScanner(ctx context.Context, repo idleRepo, idleTimeout, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			scanIdleGames(repo, now.Add(-idleTimeout))
		}
	}
}

func scanIdleGames(repo idleRepo, cutoff time.Time) int {
	games, err := repo.FindIdleGames(cutoff)
	if err != nil {
		logging.Error("idle scanner failed", err, nil)
		return 0
	}
	// process sequentially (keeps DB safe under SQLite)
	n := 0
	for i := range games {
		if err := service.HandleIdleGame(repo, &games[i]); err != nil {
			logging.Error("failed to abandon game", err, logging.Fields{constants.LogFieldGameCode: games[i].Code})
			continue
		}
		n++
	}
	if n > 0 {
		logging.Info("abandoned idle games", logging.Fields{constants.LogFieldCount: n})
	}
	return n
}

// requestLogger logs each request through the structured logger instead of
// gin's default text output.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Debug("request", logging.Fields{
			constants.LogFieldPath:   c.Request.Method + " " + c.Request.URL.Path,
			constants.LogFieldStatus: c.Writer.Status(),
			"duration_ms":            time.Since(start).Milliseconds(),
		})
	}
}
