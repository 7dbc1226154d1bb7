package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamasit07/connect4-cli/internal/config"
	"github.com/iamasit07/connect4-cli/internal/domain"
	"github.com/iamasit07/connect4-cli/internal/repository/redis"
	"github.com/iamasit07/connect4-cli/internal/service/bot"
	"github.com/iamasit07/connect4-cli/internal/service/game"
	"github.com/iamasit07/connect4-cli/internal/transport/console"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.LoadConfig()
	logFile := initLog(cfg.LogFile)
	if logFile != nil {
		defer logFile.Close()
	}
	if envErr != nil {
		log.Println("[CONFIG] No .env file found, using environment only")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	humanID, aiID := domain.Player1, domain.Player2
	if !cfg.HumanFirst {
		humanID, aiID = domain.Player2, domain.Player1
	}

	var cache bot.MoveCache
	if client := redis.Connect(ctx, cfg); client != nil {
		defer client.Close()
		cache = redis.NewMoveCache(client, cfg.MoveCacheTTL)
	}

	renderer := console.NewRenderer(os.Stdout, aiID, bot.SearchDepth, console.UseColor(cfg.ColorMode, os.Stdout))
	human := console.NewHumanSource(os.Stdin, os.Stdout)
	ai := bot.NewPlayer(aiID, cache)

	sources := map[domain.PlayerID]game.MoveSource{humanID: human, aiID: ai}
	session := game.NewSession(sources[domain.Player1], sources[domain.Player2], renderer)

	// The human source blocks on stdin, so an interrupt ends the process here
	// instead of waiting for the read to return.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Printf("[GAME] Game %s interrupted", session.GameID)
		renderer.Interrupted()
		os.Exit(0)
	}()

	if _, err := session.Run(ctx); err != nil {
		if errors.Is(err, io.EOF) {
			renderer.Interrupted()
			return
		}
		log.Printf("[GAME] Fatal: %v", err)
		os.Stderr.WriteString("error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// initLog sends the log to path so it does not mix with the board on screen.
// "-" keeps stderr.
func initLog(path string) *os.File {
	if path == "" || path == "-" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("[CONFIG] Cannot open log file %s: %v, logging to stderr", path, err)
		return nil
	}
	log.SetOutput(f)
	return f
}
