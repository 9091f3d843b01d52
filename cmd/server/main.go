package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JackT-C/poker/internal/config"
	"github.com/JackT-C/poker/internal/logger"
	"github.com/JackT-C/poker/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	logPath := flag.String("log", "", "log file path (stderr when empty)")
	flag.Parse()

	if err := logger.Init(*logPath); err != nil {
		log.Printf("file logging disabled: %v", err)
	}
	defer logger.Close()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("config load failed, using defaults: %v", err)
		cfg = config.Default()
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("server init failed: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Println("🎰 casino server starting...")
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}
