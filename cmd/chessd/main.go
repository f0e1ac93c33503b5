// chessd serves live chess games over HTTP and WebSocket.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/server"
)

func main() {
	// Flags with env fallbacks.
	addr := flag.String("addr", getenv("CHESSD_ADDR", ":8080"), "listen address")
	maxGames := flag.Int("max-games", getenvInt("CHESSD_MAX_GAMES", 0), "maximum live games (0 = unlimited)")
	origins := flag.String("origins", getenv("CHESSD_ORIGINS", "*"), "allowed CORS origins")
	idle := flag.Duration("idle-timeout", 60*time.Second, "keep-alive idle timeout")
	verbosity := flag.Int("v", 1, "verbosity: 0=errors only, 1=request log, 2=session events")
	flag.Parse()

	cfg := config.NewConfigBuilder().
		WithServerAddr(*addr).
		WithMaxGames(*maxGames).
		WithVerbosity(*verbosity).
		WithLog(os.Stderr).
		Build()
	cfg.Server.AllowOrigins = *origins
	cfg.Server.IdleTimeout = *idle
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	app, games := server.New(cfg)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Printf("shutting down with %d live game(s)", games.Len())
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("HTTP listening on %s", cfg.Server.Addr)
	if err := app.Listen(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("%s: %v", key, err)
		}
		return n
	}
	return def
}
