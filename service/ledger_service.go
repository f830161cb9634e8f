package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"economy/events"
	"economy/models"

	log "github.com/sirupsen/logrus"
)

// topRankingSize is the number of entries returned by TopRanking
const topRankingSize = 3

// LedgerConfig holds the optional collaborators of the ledger service
type LedgerConfig struct {
	Rules    Rules
	Outcomes Random           // Fairness-critical draws, defaults to NewCryptoRandom
	Payouts  Random           // Multipliers and work earnings, defaults to a time-seeded NewPseudoRandom
	Now      func() time.Time // Defaults to time.Now
}

type ledgerService struct {
	store    LedgerStore
	emitter  events.Emitter
	rules    Rules
	outcomes Random
	payouts  Random
	now      func() time.Time

	// mu guards balances, jackpot, locks and persistence.
	// It is always acquired after a user lock, never before.
	mu       sync.Mutex
	balances map[int64]int64
	jackpot  int64
	locks    map[int64]*sync.Mutex

	cooldowns *cooldownTracker
}

// NewLedgerService creates a new ledger service with an empty ledger.
// Call Load to restore persisted state.
func NewLedgerService(store LedgerStore, emitter events.Emitter, cfg LedgerConfig) LedgerService {
	if cfg.Rules == (Rules{}) {
		cfg.Rules = DefaultRules()
	}
	if cfg.Outcomes == nil {
		cfg.Outcomes = NewCryptoRandom()
	}
	if cfg.Payouts == nil {
		cfg.Payouts = NewPseudoRandom(uint64(time.Now().UnixNano()))
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &ledgerService{
		store:     store,
		emitter:   emitter,
		rules:     cfg.Rules,
		outcomes:  cfg.Outcomes,
		payouts:   cfg.Payouts,
		now:       cfg.Now,
		balances:  make(map[int64]int64),
		locks:     make(map[int64]*sync.Mutex),
		cooldowns: newCooldownTracker(),
	}
}

func (s *ledgerService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.store.Load(ctx)
	if err != nil {
		return &PersistenceError{Op: "load", Err: err}
	}
	if snapshot == nil {
		return nil
	}

	balances := make(map[int64]int64, len(snapshot.Balances))
	for id, balance := range snapshot.Balances {
		balances[id] = balance
	}
	s.balances = balances
	s.jackpot = snapshot.Jackpot

	log.WithFields(log.Fields{
		"users":   len(balances),
		"jackpot": s.jackpot,
	}).Info("Ledger loaded")
	return nil
}

func (s *ledgerService) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveLocked(ctx)
}

// saveLocked persists a copy of the ledger. Caller holds s.mu.
func (s *ledgerService) saveLocked(ctx context.Context) error {
	snapshot := models.NewLedgerSnapshot()
	for id, balance := range s.balances {
		snapshot.Balances[id] = balance
	}
	snapshot.Jackpot = s.jackpot

	if err := s.store.Save(ctx, snapshot); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// commit runs fn and persists the result under the global lock, then flushes the
// events fn staged. A failed save is logged and reported as an event; the mutation stands.
func (s *ledgerService) commit(ctx context.Context, fn func(pending *events.TransactionalBus)) {
	pending := events.NewTransactionalBus(s.emitter)

	s.mu.Lock()
	fn(pending)
	if err := s.saveLocked(ctx); err != nil {
		log.WithError(err).Error("Ledger mutation was not persisted")
		pending.Publish(events.PersistenceFailedEvent{Op: "save", Error: err.Error()})
	}
	s.mu.Unlock()

	pending.Flush(ctx)
}

// userLock returns the lock of a user, creating it on first use
func (s *ledgerService) userLock(discordID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[discordID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[discordID] = lock
	}
	return lock
}

func (s *ledgerService) balanceOf(discordID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.balances[discordID]
}

func (s *ledgerService) PlayCoin(ctx context.Context, discordID int64, guess string, stake int64) (*models.GameResult, error) {
	return s.playGuess(ctx, models.GameTypeCoin, discordID, guess, stake)
}

func (s *ledgerService) PlayDice(ctx context.Context, discordID int64, guess string, stake int64) (*models.GameResult, error) {
	return s.playGuess(ctx, models.GameTypeDice, discordID, guess, stake)
}

// playGuess resolves a guess-the-outcome game. Checks run in order: cooldown, guess,
// minimum stake, funds.
func (s *ledgerService) playGuess(ctx context.Context, game models.GameType, discordID int64, guess string, stake int64) (*models.GameResult, error) {
	lock := s.userLock(discordID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.cooldowns.check(game, discordID, s.rules.GameCooldown, s.now()); err != nil {
		return nil, err
	}

	var (
		faces          []string
		minStake       int64
		multLo, multHi float64
		err            error
	)
	if game == models.GameTypeCoin {
		faces, minStake = coinFaces, s.rules.CoinMinStake
		multLo, multHi = s.rules.CoinMultiplierMin, s.rules.CoinMultiplierMax
		guess, err = NormalizeCoinGuess(guess)
	} else {
		faces, minStake = diceFaces, s.rules.DiceMinStake
		multLo, multHi = s.rules.DiceMultiplierMin, s.rules.DiceMultiplierMax
		guess, err = ValidateDiceGuess(guess)
	}
	if err != nil {
		return nil, err
	}
	if err := ValidateStake(stake, minStake); err != nil {
		return nil, err
	}
	if err := ValidateFunds(stake, s.balanceOf(discordID)); err != nil {
		return nil, err
	}

	outcome := faces[s.outcomes.IntN(len(faces))]
	result := &models.GameResult{
		Game:    game,
		Correct: guess == outcome,
		Guess:   guess,
		Outcome: outcome,
		Stake:   stake,
	}
	if result.Correct {
		result.Multiplier = uniform(s.payouts, multLo, multHi)
		result.Winnings = int64(float64(stake) * result.Multiplier)
	} else {
		result.Winnings = -stake
	}

	s.commit(ctx, func(pending *events.TransactionalBus) {
		old := s.balances[discordID]
		s.balances[discordID] = old + result.Winnings
		if !result.Correct {
			s.jackpot += stake
		}
		result.Balance = s.balances[discordID]

		pending.Publish(events.BalanceChangeEvent{
			UserID:          discordID,
			OldBalance:      old,
			NewBalance:      result.Balance,
			TransactionType: models.GameTransactionType(game, result.Correct),
			ChangeAmount:    result.Winnings,
		})
	})

	log.WithFields(log.Fields{
		"game":      game,
		"discordID": discordID,
		"stake":     stake,
		"won":       result.Correct,
		"winnings":  result.Winnings,
	}).Debug("Bet resolved")

	return result, nil
}

func (s *ledgerService) PlayJackpot(ctx context.Context, discordID int64, stake int64) (*models.JackpotResult, error) {
	lock := s.userLock(discordID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.cooldowns.check(models.GameTypeJackpot, discordID, s.rules.GameCooldown, s.now()); err != nil {
		return nil, err
	}
	if err := ValidateStake(stake, s.rules.JackpotMinStake); err != nil {
		return nil, err
	}
	if err := ValidateFunds(stake, s.balanceOf(discordID)); err != nil {
		return nil, err
	}

	result := &models.JackpotResult{Stake: stake}
	s.commit(ctx, func(pending *events.TransactionalBus) {
		before := s.balances[discordID]
		s.balances[discordID] = before - stake
		s.jackpot += stake
		pending.Publish(events.BalanceChangeEvent{
			UserID:          discordID,
			OldBalance:      before,
			NewBalance:      before - stake,
			TransactionType: models.TransactionTypeJackpotStake,
			ChangeAmount:    -stake,
		})

		if s.outcomes.IntN(s.rules.JackpotDrawRange) <= s.rules.JackpotWinThreshold {
			payout := s.jackpot / s.rules.JackpotPayoutDivisor
			s.balances[discordID] += payout
			s.jackpot -= payout

			result.Won = true
			result.Payout = payout
			pending.Publish(events.BalanceChangeEvent{
				UserID:          discordID,
				OldBalance:      before - stake,
				NewBalance:      s.balances[discordID],
				TransactionType: models.TransactionTypeJackpotWin,
				ChangeAmount:    payout,
			})
			pending.Publish(events.JackpotWonEvent{
				UserID:  discordID,
				Payout:  payout,
				Jackpot: s.jackpot,
			})
		}

		result.Jackpot = s.jackpot
		result.Balance = s.balances[discordID]
	})

	log.WithFields(log.Fields{
		"discordID": discordID,
		"stake":     stake,
		"won":       result.Won,
		"jackpot":   result.Jackpot,
	}).Debug("Jackpot drawn")

	return result, nil
}

func (s *ledgerService) Work(ctx context.Context, discordID int64) (*models.WorkResult, error) {
	lock := s.userLock(discordID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.cooldowns.check(models.GameTypeWork, discordID, s.rules.WorkCooldown, s.now()); err != nil {
		return nil, err
	}

	span := int(s.rules.WorkMaxAmount - s.rules.WorkMinAmount + 1)
	result := &models.WorkResult{
		Amount: s.rules.WorkMinAmount + int64(s.payouts.IntN(span)),
	}

	s.commit(ctx, func(pending *events.TransactionalBus) {
		old := s.balances[discordID]
		s.balances[discordID] = old + result.Amount
		result.Balance = s.balances[discordID]

		pending.Publish(events.BalanceChangeEvent{
			UserID:          discordID,
			OldBalance:      old,
			NewBalance:      result.Balance,
			TransactionType: models.TransactionTypeWork,
			ChangeAmount:    result.Amount,
		})
		pending.Publish(events.WorkPaidEvent{UserID: discordID, Amount: result.Amount})
	})

	return result, nil
}

func (s *ledgerService) Balance(ctx context.Context, discordID int64) int64 {
	lock := s.userLock(discordID)
	lock.Lock()
	defer lock.Unlock()

	return s.balanceOf(discordID)
}

func (s *ledgerService) Jackpot(ctx context.Context) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.jackpot
}

func (s *ledgerService) TopRanking(ctx context.Context) []*models.RankingEntry {
	return s.ranking(topRankingSize)
}

func (s *ledgerService) FullRanking(ctx context.Context) []*models.RankingEntry {
	return s.ranking(0)
}

// ranking returns balances highest first, ties by ascending ID. limit 0 means all.
func (s *ledgerService) ranking(limit int) []*models.RankingEntry {
	s.mu.Lock()
	entries := make([]*models.RankingEntry, 0, len(s.balances))
	for id, balance := range s.balances {
		entries = append(entries, &models.RankingEntry{DiscordID: id, Balance: balance})
	}
	s.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Balance != entries[j].Balance {
			return entries[i].Balance > entries[j].Balance
		}
		return entries[i].DiscordID < entries[j].DiscordID
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i, entry := range entries {
		entry.Rank = i + 1
	}
	return entries
}
