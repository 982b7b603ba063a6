package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-lexicon/internal/api"
	"go-lexicon/internal/config"
	"go-lexicon/internal/db"
	"go-lexicon/internal/definition"
	"go-lexicon/internal/llm"
	"go-lexicon/internal/lookup"
	redisdb "go-lexicon/internal/redis"
)

func main() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.json"
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gemini, err := llm.NewGeminiClient(ctx, cfg.Gemini, definition.ResultSchema)
	if err != nil {
		fmt.Fprintf(os.Stderr, "LLM init error: %v\n", err)
		os.Exit(1)
	}

	deps := api.Deps{}
	var observers []definition.Observer

	if cfg.HistoryEnabled() {
		gdb, err := db.Open(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
			os.Exit(1)
		}
		defer db.Close(gdb)
		history := lookup.NewHistory(gdb)
		observers = append(observers, history)
		deps.History = history
	} else {
		log.Printf("[Main] Lookup history disabled (no database dsn)")
	}

	if cfg.StatsEnabled() {
		rdb, err := redisdb.Connect(ctx, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Redis init error: %v\n", err)
			os.Exit(1)
		}
		defer rdb.Close()
		stats := lookup.NewStats(rdb)
		observers = append(observers, stats)
		deps.Stats = stats
	} else {
		log.Printf("[Main] Lookup stats disabled (no redis addr)")
	}

	deps.Definitions = definition.NewService(gemini, observers...)

	r := api.SetupRouter(cfg, deps)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		fmt.Printf("Starting server on %s%s\n", addr, cfg.Server.Subpath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Printf("[Main] Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Main] WARNING: graceful shutdown failed: %v", err)
	}
}
