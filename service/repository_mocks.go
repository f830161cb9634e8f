package service

import (
	"context"

	"economy/events"
	"economy/models"

	"github.com/stretchr/testify/mock"
)

// MockLedgerStore is a mock implementation of LedgerStore
type MockLedgerStore struct {
	mock.Mock
}

func (m *MockLedgerStore) Load(ctx context.Context) (*models.LedgerSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LedgerSnapshot), args.Error(1)
}

func (m *MockLedgerStore) Save(ctx context.Context, snapshot *models.LedgerSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

// MockEventEmitter is a mock implementation of events.Emitter
type MockEventEmitter struct {
	mock.Mock
}

func (m *MockEventEmitter) Emit(ctx context.Context, event events.Event) {
	m.Called(ctx, event)
}

// MockLedgerService is a mock implementation of LedgerService
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerService) Save(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerService) PlayCoin(ctx context.Context, discordID int64, guess string, stake int64) (*models.GameResult, error) {
	args := m.Called(ctx, discordID, guess, stake)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameResult), args.Error(1)
}

func (m *MockLedgerService) PlayDice(ctx context.Context, discordID int64, guess string, stake int64) (*models.GameResult, error) {
	args := m.Called(ctx, discordID, guess, stake)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameResult), args.Error(1)
}

func (m *MockLedgerService) PlayJackpot(ctx context.Context, discordID int64, stake int64) (*models.JackpotResult, error) {
	args := m.Called(ctx, discordID, stake)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JackpotResult), args.Error(1)
}

func (m *MockLedgerService) Work(ctx context.Context, discordID int64) (*models.WorkResult, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkResult), args.Error(1)
}

func (m *MockLedgerService) Balance(ctx context.Context, discordID int64) int64 {
	args := m.Called(ctx, discordID)
	return args.Get(0).(int64)
}

func (m *MockLedgerService) Jackpot(ctx context.Context) int64 {
	args := m.Called(ctx)
	return args.Get(0).(int64)
}

func (m *MockLedgerService) TopRanking(ctx context.Context) []*models.RankingEntry {
	args := m.Called(ctx)
	return args.Get(0).([]*models.RankingEntry)
}

func (m *MockLedgerService) FullRanking(ctx context.Context) []*models.RankingEntry {
	args := m.Called(ctx)
	return args.Get(0).([]*models.RankingEntry)
}
