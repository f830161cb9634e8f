package service

import "time"

// Rules holds the tunable constants of the economy
type Rules struct {
	CoinMinStake    int64
	DiceMinStake    int64
	JackpotMinStake int64

	GameCooldown time.Duration // Per user, per game type
	WorkCooldown time.Duration

	CoinMultiplierMin float64
	CoinMultiplierMax float64
	DiceMultiplierMin float64
	DiceMultiplierMax float64

	WorkMinAmount int64
	WorkMaxAmount int64 // Inclusive

	JackpotDrawRange     int // Draw is uniform in [0, JackpotDrawRange)
	JackpotWinThreshold  int // Draw <= threshold wins
	JackpotPayoutDivisor int64
}

// DefaultRules returns the standard economy rules
func DefaultRules() Rules {
	return Rules{
		CoinMinStake:    100,
		DiceMinStake:    100,
		JackpotMinStake: 1000,

		GameCooldown: 5 * time.Second,
		WorkCooldown: 60 * time.Second,

		CoinMultiplierMin: 0.8,
		CoinMultiplierMax: 1.8,
		DiceMultiplierMin: 5.5,
		DiceMultiplierMax: 6.5,

		WorkMinAmount: 100,
		WorkMaxAmount: 2000,

		JackpotDrawRange:     100,
		JackpotWinThreshold:  1,
		JackpotPayoutDivisor: 10,
	}
}
