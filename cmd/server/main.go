package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/tezlm/board/internal/board"
	"github.com/tezlm/board/internal/config"
	"github.com/tezlm/board/internal/demo"
	"github.com/tezlm/board/internal/frontend"
	"github.com/tezlm/board/internal/health"
	"github.com/tezlm/board/internal/ws"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	port := flag.Int("port", 0, "Override server port")
	staticDir := flag.String("static", "", "Serve board assets from this directory instead of the embedded copies")
	demoMode := flag.Bool("demo", false, "Run scripted robot authors in the demo room")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *staticDir != "" {
		cfg.Server.StaticDir = *staticDir
	}

	// Embedded assets when built with -tags embed; otherwise fall back to
	// the source tree, unless a static dir is configured explicitly.
	var static http.Handler
	if cfg.Server.StaticDir != "" {
		log.Printf("Serving board assets from filesystem: %s", cfg.Server.StaticDir)
		static = http.FileServer(http.Dir(cfg.Server.StaticDir))
	} else if static = frontend.Handler(); static == nil {
		fallback := filepath.Join("internal", "frontend", "static")
		if _, err := os.Stat(fallback); err == nil {
			log.Printf("No embedded assets, serving from: %s", fallback)
			static = http.FileServer(http.Dir(fallback))
		} else {
			log.Println("No board assets available, serving websocket endpoint only")
		}
	}

	registry := board.NewRegistry(cfg.Board.MaxEvents)
	hub := ws.NewHub(registry)
	server := ws.NewServer(hub, static, cfg.Server.AllowedOrigins)

	mux := http.NewServeMux()
	server.SetupRoutes(mux)
	mux.Handle("/api/health", health.NewReporter(hub))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *demoMode {
		demo.NewPainter(hub, cfg.Demo.Room, cfg.Demo.Interval, cfg.Board.Width, cfg.Board.Height).Start(ctx)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		cancel()
		os.Exit(0)
	}()

	if err := ws.ListenAndServe(cfg.Server.Host, cfg.Server.Port, mux); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
