// chessd serves live game sessions, FEN validation and move notation over
// HTTP and WebSocket.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lgbarn/chesscore-go/internal/api"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/logging"
	"github.com/lgbarn/chesscore-go/internal/replay"
	"github.com/lgbarn/chesscore-go/internal/session"
)

const (
	programVersion  = "0.1.0"
	shutdownTimeout = 5 * time.Second
)

func main() {
	cfg := config.NewConfig()

	addr := flag.String("addr", getenv("CHESSD_ADDR", cfg.Server.ListenAddr), "listen address")
	origins := flag.String("origins", getenv("CHESSD_ORIGINS", ""), "comma-separated CORS origins (empty disables CORS)")
	strict := flag.Bool("strict", false, "reject moves that leave the mover's king in check")
	logLevel := flag.String("loglevel", getenv("CHESSD_LOG_LEVEL", cfg.LogLevel), "log level: debug, info, warn, error")
	prettyLog := flag.Bool("pretty", false, "human-readable log output")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Printf("chessd version %s\n", programVersion)
		os.Exit(0)
	}

	cfg.Server.ListenAddr = *addr
	cfg.Server.AllowOrigins = *origins
	cfg.Replay.Strict = *strict
	cfg.LogLevel = *logLevel
	cfg.PrettyLog = *prettyLog

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	logger := logging.New(cfg.LogFile, level, cfg.PrettyLog)

	replayer := replay.New(replay.WithLogger(logger), replay.WithStrict(cfg.Replay.Strict))
	manager := session.NewManager(logger, replayer)
	app := api.NewApp(manager, logger, api.Options{
		AllowOrigins: cfg.Server.AllowOrigins,
		Strict:       cfg.Replay.Strict,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Error().Err(err).Msg("shutdown failed")
		}
	}()

	logger.Info().Str("addr", cfg.Server.ListenAddr).Bool("strict", cfg.Replay.Strict).Msg("listening")
	if err := app.Listen(cfg.Server.ListenAddr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
