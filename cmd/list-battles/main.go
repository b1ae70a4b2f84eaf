package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/kokoro-battle/internal/config"
	"github.com/KirkDiggler/kokoro-battle/internal/repositories/battles"
	"github.com/KirkDiggler/kokoro-battle/internal/repositories/contestants"
	battleService "github.com/KirkDiggler/kokoro-battle/internal/services/battle"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: list-battles <contestant-id> [limit]")
		os.Exit(1)
	}

	contestantID := os.Args[1]
	limit := 0
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatalf("Invalid limit %q: %v", os.Args[2], err)
		}
		limit = n
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	redisURL := cfg.Redis.URL
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer func() {
		if clientErr := client.Close(); clientErr != nil {
			log.Printf("Failed to close Redis connection: %v", clientErr)
		}
	}()

	ctx := context.Background()
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	svc := battleService.NewService(&battleService.ServiceConfig{
		Contestants: contestants.NewRedis(client),
		History: battles.NewRedisRepository(&battles.RedisRepoConfig{
			Client: client,
			Limit:  cfg.Battle.HistoryLimit,
		}),
	})

	records, err := svc.History(ctx, contestantID, limit)
	if err != nil {
		log.Fatalf("Failed to get history: %v", err)
	}

	wins := 0
	fmt.Printf("Found %d battles for %s:\n", len(records), contestantID)
	for _, rec := range records {
		verdict := "draw"
		switch {
		case rec.WonBy(contestantID):
			verdict = "won"
			wins++
		case rec.Winner != "":
			verdict = "lost"
		}
		fmt.Printf("  %s  %s  %s vs %s  %s in %d rounds (HP %d/%d)\n",
			rec.FoughtAt.Format("2006-01-02 15:04"), rec.ID, rec.Names[0], rec.Names[1], verdict, rec.Rounds, rec.FinalHP[0], rec.FinalHP[1])
	}

	if len(records) > 0 {
		fmt.Printf("Win rate: %d/%d\n", wins, len(records))
	}
}
