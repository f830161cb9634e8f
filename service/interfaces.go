package service

import (
	"context"

	"economy/models"
)

// LedgerStore defines the interface for ledger persistence
type LedgerStore interface {
	// Load returns the persisted ledger, or an empty snapshot if nothing was persisted yet
	Load(ctx context.Context) (*models.LedgerSnapshot, error)

	// Save replaces the persisted ledger with the given snapshot
	Save(ctx context.Context, snapshot *models.LedgerSnapshot) error
}

// LedgerService defines the interface for economy operations
type LedgerService interface {
	// Load replaces the in-memory ledger with the persisted one
	Load(ctx context.Context) error

	// Save persists the whole in-memory ledger
	Save(ctx context.Context) error

	// PlayCoin resolves a coin flip bet
	PlayCoin(ctx context.Context, discordID int64, guess string, stake int64) (*models.GameResult, error)

	// PlayDice resolves a dice roll bet
	PlayDice(ctx context.Context, discordID int64, guess string, stake int64) (*models.GameResult, error)

	// PlayJackpot stakes into the jackpot pool and draws for the payout
	PlayJackpot(ctx context.Context, discordID int64, stake int64) (*models.JackpotResult, error)

	// Work credits random earnings, gated by the work cooldown
	Work(ctx context.Context, discordID int64) (*models.WorkResult, error)

	// Balance returns the user's balance, zero for unknown users
	Balance(ctx context.Context, discordID int64) int64

	// Jackpot returns the current pool size
	Jackpot(ctx context.Context) int64

	// TopRanking returns the three highest balances
	TopRanking(ctx context.Context) []*models.RankingEntry

	// FullRanking returns every balance, highest first
	FullRanking(ctx context.Context) []*models.RankingEntry
}
