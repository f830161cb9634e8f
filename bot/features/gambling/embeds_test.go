package gambling

import (
	"testing"

	"economy/bot/common"
	"economy/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildGameEmbed_Win(t *testing.T) {
	embed := BuildGameEmbed("gambler", &models.GameResult{
		Game:       models.GameTypeDice,
		Correct:    true,
		Guess:      "3",
		Outcome:    "3",
		Stake:      100,
		Multiplier: 6.0,
		Winnings:   600,
		Balance:    1600,
	})

	assert.Equal(t, "🎲 gambler guessed right", embed.Title)
	assert.Equal(t, common.ColorSuccess, embed.Color)
	assert.Contains(t, embed.Description, "- Guess: 3")
	assert.Contains(t, embed.Description, "100 coins × 6 = 600 coins")
	assert.Contains(t, embed.Description, "- Balance: 1,600 coins (+600)")
}

func TestBuildGameEmbed_Loss(t *testing.T) {
	embed := BuildGameEmbed("gambler", &models.GameResult{
		Game:     models.GameTypeCoin,
		Correct:  false,
		Guess:    models.CoinFront,
		Outcome:  models.CoinBack,
		Stake:    200,
		Winnings: -200,
		Balance:  800,
	})

	assert.Equal(t, "🪙 gambler guessed wrong", embed.Title)
	assert.Equal(t, common.ColorDanger, embed.Color)
	assert.Contains(t, embed.Description, "200 coins × -1 = -200 coins")
	assert.Contains(t, embed.Description, "- Balance: 800 coins (-200)")
}

func TestBuildJackpotEmbed(t *testing.T) {
	won := BuildJackpotEmbed("gambler", &models.JackpotResult{Won: true, Stake: 1000, Payout: 520, Jackpot: 4680, Balance: 9520})
	assert.Equal(t, common.ColorGold, won.Color)
	assert.Contains(t, won.Description, "Winnings: 520 coins")
	assert.Contains(t, won.Description, "(+520)")

	lost := BuildJackpotEmbed("gambler", &models.JackpotResult{Stake: 1000, Jackpot: 5200, Balance: 9000})
	assert.Equal(t, common.ColorDanger, lost.Color)
	assert.Contains(t, lost.Description, "Current jackpot: 5,200 coins")
	assert.Contains(t, lost.Description, "Winnings: -1,000 coins")
}
