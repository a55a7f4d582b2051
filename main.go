package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/tertty/ROCK-the-Vote-backend/cliparse"
	"github.com/tertty/ROCK-the-Vote-backend/db"
	"github.com/tertty/ROCK-the-Vote-backend/ledger"
	"github.com/tertty/ROCK-the-Vote-backend/logging"
	"github.com/tertty/ROCK-the-Vote-backend/middleware"
	"github.com/tertty/ROCK-the-Vote-backend/prompts"
	"github.com/tertty/ROCK-the-Vote-backend/router"
	"github.com/tertty/ROCK-the-Vote-backend/store"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.New(cfg.LogFormat, os.Stderr))

	if cfg.VoterIDSalt == "" {
		slog.Warn("VOTER_ID_SALT not set, voter IDs are hashed with an empty key")
	}

	// Open storage
	st, err := openStore(cfg)
	if err != nil {
		slog.Error("store setup failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}
	slog.Info("Store ready", "type", cfg.DatabaseType)

	// Load prompts
	catalog := prompts.Default()
	if cfg.PromptsFile != "" {
		catalog, err = prompts.LoadFile(cfg.PromptsFile)
		if err != nil {
			slog.Error("prompt calendar failed to load", "error", err, "path", cfg.PromptsFile)
			os.Exit(1)
		}
		slog.Info("Prompt calendar loaded", "path", cfg.PromptsFile)
	}

	loc, _ := cfg.Location() // validated by ParseFlags
	l := ledger.New(st, catalog, ledger.SystemClock(loc))
	defer l.Close()

	// Create router
	mux := router.NewRouter(l, cfg)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "timezone", cfg.Timezone)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

func openStore(cfg cliparse.Config) (ledger.Store, error) {
	switch cfg.DatabaseType {
	case cliparse.TypeMemory:
		return store.NewMemoryStore(), nil
	case cliparse.TypeRedis:
		return store.OpenRedis(cfg.DatabaseURL)
	default:
		conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return store.NewSQLStore(conn), nil
	}
}
