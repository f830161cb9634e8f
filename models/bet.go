package models

// GameType identifies a gated ledger action
type GameType string

const (
	GameTypeCoin    GameType = "coin"
	GameTypeDice    GameType = "dice"
	GameTypeJackpot GameType = "jackpot"
	GameTypeWork    GameType = "work"
)

// Coin faces. The dice faces are "1" through "6".
const (
	CoinFront = "front"
	CoinBack  = "back"
)

// GameResult represents the outcome of a coin or dice bet (returned to the user)
type GameResult struct {
	Game       GameType
	Correct    bool
	Guess      string
	Outcome    string
	Stake      int64
	Multiplier float64 // Drawn payout factor, zero on a loss
	Winnings   int64   // Signed: payout on a win, -stake on a loss
	Balance    int64
}

// JackpotResult represents the outcome of a jackpot draw
type JackpotResult struct {
	Won     bool
	Stake   int64
	Payout  int64
	Jackpot int64 // Pool size after the draw
	Balance int64
}

// WorkResult represents the earnings of a work action
type WorkResult struct {
	Amount  int64
	Balance int64
}
