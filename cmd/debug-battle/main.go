package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/kokoro-battle/internal/config"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/combat"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/contestant"
	"github.com/KirkDiggler/kokoro-battle/internal/domain/traits"
	"github.com/KirkDiggler/kokoro-battle/internal/engine"
	apperr "github.com/KirkDiggler/kokoro-battle/internal/errors"
	"github.com/KirkDiggler/kokoro-battle/internal/repositories/battles"
	"github.com/KirkDiggler/kokoro-battle/internal/repositories/contestants"
	"github.com/KirkDiggler/kokoro-battle/internal/services"
	battleService "github.com/KirkDiggler/kokoro-battle/internal/services/battle"
)

func main() {
	first := flag.String("a", "", "first contestant (ID or name from the roster)")
	second := flag.String("b", "", "second contestant (ID or name from the roster)")
	seed := flag.Int64("seed", -1, "seed for a reproducible battle, negative for random")
	rounds := flag.Int("rounds", 0, "round cap override")
	batch := flag.Int("batch", 1, "number of battles to run; more than one prints a tally")
	flag.Parse()

	if *first == "" || *second == "" {
		fmt.Println("Usage: debug-battle -a <contestant> -b <contestant> [-seed n] [-rounds n] [-batch n]")
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	catalog := traits.Default()
	if cfg.Data.TraitCatalogPath != "" {
		catalog, err = traits.Load(cfg.Data.TraitCatalogPath)
		if err != nil {
			log.Fatalf("Failed to load trait catalog: %v", err)
		}
	}

	roster, err := contestant.LoadRoster(cfg.Data.ContestantsPath)
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}

	a, ok := roster.Find(*first)
	if !ok {
		log.Fatalf("Contestant %q not found in %s", *first, cfg.Data.ContestantsPath)
	}
	b, ok := roster.Find(*second)
	if !ok {
		log.Fatalf("Contestant %q not found in %s", *second, cfg.Data.ContestantsPath)
	}

	providerConfig := &services.ProviderConfig{
		Engine: engine.New(&engine.Config{
			MaxRounds: cfg.Battle.MaxRounds,
			Traits:    catalog,
		}),
		HistoryLimit:     cfg.Battle.HistoryLimit,
		BatchConcurrency: cfg.Battle.BatchConcurrency,
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient = connectRedis(cfg.Redis.URL)
	}
	if redisClient != nil {
		defer func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				log.Printf("Failed to close Redis connection: %v", closeErr)
			}
		}()
		providerConfig.ContestantRepository = contestants.NewRedis(redisClient)
		providerConfig.HistoryRepository = battles.NewRedisRepository(&battles.RedisRepoConfig{
			Client: redisClient,
			Limit:  cfg.Battle.HistoryLimit,
		})
		log.Println("Using Redis for persistence")
	} else {
		log.Println("Using in-memory repositories")
	}

	provider := services.NewProvider(providerConfig)
	ctx := context.Background()

	for _, c := range []*contestant.Contestant{a, b} {
		if err := upsert(ctx, provider.ContestantRepository, c); err != nil {
			log.Fatalf("Failed to store contestant %s: %v", c.Name, err)
		}
	}

	var seedPtr *uint64
	if *seed >= 0 {
		s := uint64(*seed)
		seedPtr = &s
	}

	if *batch <= 1 {
		out, err := provider.BattleService.Simulate(ctx, &battleService.SimulateInput{
			ContestantAID: a.ID,
			ContestantBID: b.ID,
			Seed:          seedPtr,
			MaxRounds:     *rounds,
		})
		if err != nil {
			log.Fatalf("Battle failed: %v", err)
		}
		printBattle(out)
		return
	}

	pairings := make([]battleService.Pairing, *batch)
	for i := range pairings {
		pairings[i] = battleService.Pairing{ContestantAID: a.ID, ContestantBID: b.ID}
	}

	start := time.Now()
	outputs, err := provider.BattleService.SimulateBatch(ctx, &battleService.SimulateBatchInput{
		Pairings:  pairings,
		Seed:      seedPtr,
		MaxRounds: *rounds,
	})
	if err != nil {
		log.Fatalf("Batch failed: %v", err)
	}

	tally := map[combat.Outcome]int{}
	totalRounds := 0
	for _, out := range outputs {
		tally[out.Result.Outcome]++
		totalRounds += out.Result.Rounds
	}

	fmt.Printf("%d battles in %v\n", len(outputs), time.Since(start).Round(time.Millisecond))
	fmt.Printf("  %s wins: %d\n", a.Name, tally[combat.OutcomeSideA])
	fmt.Printf("  %s wins: %d\n", b.Name, tally[combat.OutcomeSideB])
	fmt.Printf("  draws: %d\n", tally[combat.OutcomeDraw])
	fmt.Printf("  average rounds: %.2f\n", float64(totalRounds)/float64(len(outputs)))
}

func connectRedis(url string) *redis.Client {
	log.Printf("Connecting to Redis at: %s", url)

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory repositories")
		return nil
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory repositories")
		_ = client.Close()
		return nil
	}

	return client
}

func upsert(ctx context.Context, repo contestants.Repository, c *contestant.Contestant) error {
	err := repo.Create(ctx, c)
	if apperr.IsAlreadyExists(err) {
		return repo.Update(ctx, c)
	}
	return err
}

func printBattle(out *battleService.SimulateOutput) {
	fmt.Println(strings.Join(out.Result.Log, "\n"))
	fmt.Println()
	fmt.Printf("Battle ID: %s\n", out.BattleID)
	for side := combat.SideA; side <= combat.SideB; side++ {
		stats := out.Result.Stats[side]
		fmt.Printf("  %s: HP %d ATK %d DEF %d CRIT %.0f%% SPD %d (%s)\n",
			out.Record.Names[side], stats.HP, stats.Attack, stats.Defense, stats.CritChance*100, stats.Speed, stats.Element)
	}
	if out.Record.Seed != nil {
		fmt.Printf("Seed: %d\n", *out.Record.Seed)
	}
}
