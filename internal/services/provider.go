package services

import (
	"github.com/KirkDiggler/kokoro-battle/internal/engine"
	"github.com/KirkDiggler/kokoro-battle/internal/repositories/battles"
	"github.com/KirkDiggler/kokoro-battle/internal/repositories/contestants"
	battleService "github.com/KirkDiggler/kokoro-battle/internal/services/battle"
)

// Provider holds all service instances
type Provider struct {
	BattleService        battleService.Service
	ContestantRepository contestants.Repository
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Engine               *engine.Engine
	ContestantRepository contestants.Repository
	HistoryRepository    battles.Repository
	HistoryLimit         int
	BatchConcurrency     int
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	contestantRepo := cfg.ContestantRepository
	if contestantRepo == nil {
		contestantRepo = contestants.NewInMemoryRepository()
	}

	historyRepo := cfg.HistoryRepository
	if historyRepo == nil {
		historyRepo = battles.NewInMemoryRepository(cfg.HistoryLimit)
	}

	svc := battleService.NewService(&battleService.ServiceConfig{
		Engine:           cfg.Engine,
		Contestants:      contestantRepo,
		History:          historyRepo,
		BatchConcurrency: cfg.BatchConcurrency,
	})

	return &Provider{
		BattleService:        svc,
		ContestantRepository: contestantRepo,
	}
}
