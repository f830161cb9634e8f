package service

import (
	"fmt"
	"strings"

	"economy/models"
)

var coinAliases = map[string]string{
	models.CoinFront: models.CoinFront,
	models.CoinBack:  models.CoinBack,
	"heads":          models.CoinFront,
	"tails":          models.CoinBack,
	"앞":              models.CoinFront,
	"뒤":              models.CoinBack,
}

var diceFaces = []string{"1", "2", "3", "4", "5", "6"}

var coinFaces = []string{models.CoinFront, models.CoinBack}

// NormalizeCoinGuess maps a coin guess to its canonical face
func NormalizeCoinGuess(guess string) (string, error) {
	face, ok := coinAliases[strings.ToLower(strings.TrimSpace(guess))]
	if !ok {
		return "", &ValidationError{Reason: "guess must be 'front' or 'back'"}
	}
	return face, nil
}

// ValidateDiceGuess checks that a dice guess is a face from 1 to 6
func ValidateDiceGuess(guess string) (string, error) {
	guess = strings.TrimSpace(guess)
	for _, face := range diceFaces {
		if guess == face {
			return guess, nil
		}
	}
	return "", &ValidationError{Reason: "guess must be a number from 1 to 6"}
}

// ValidateStake rejects stakes that are absent or below the minimum
func ValidateStake(stake, minimum int64) error {
	if stake < minimum {
		return &ValidationError{Reason: fmt.Sprintf("stake must be at least %d", minimum)}
	}
	return nil
}

// ValidateFunds rejects stakes larger than the current balance
func ValidateFunds(stake, balance int64) error {
	if stake > balance {
		return &ValidationError{Reason: fmt.Sprintf("insufficient balance: have %d, need %d", balance, stake)}
	}
	return nil
}
