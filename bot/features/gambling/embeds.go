package gambling

import (
	"fmt"
	"strings"

	"economy/bot/common"
	"economy/models"

	"github.com/bwmarrin/discordgo"
)

func gameIcon(game models.GameType) string {
	switch game {
	case models.GameTypeCoin:
		return "🪙"
	case models.GameTypeDice:
		return "🎲"
	default:
		return "🎰"
	}
}

// BuildGameEmbed renders a resolved coin or dice bet
func BuildGameEmbed(authorName string, result *models.GameResult) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s %s guessed wrong", gameIcon(result.Game), authorName),
		Color: common.ColorDanger,
	}
	if result.Correct {
		embed.Title = fmt.Sprintf("%s %s guessed right", gameIcon(result.Game), authorName)
		embed.Color = common.ColorSuccess
	}

	lines := []string{
		fmt.Sprintf("- Guess: %s", result.Guess),
		fmt.Sprintf("- Result: %s", result.Outcome),
		fmt.Sprintf("## Winnings: %s × %s = %s",
			common.FormatCoins(result.Stake),
			common.FormatMultiplier(result.Stake, result.Winnings),
			common.FormatCoins(result.Winnings)),
		fmt.Sprintf("- Balance: %s (%s)", common.FormatCoins(result.Balance), common.FormatDelta(result.Winnings)),
	}
	embed.Description = strings.Join(lines, "\n")
	return embed
}

// BuildJackpotEmbed renders a jackpot draw
func BuildJackpotEmbed(authorName string, result *models.JackpotResult) *discordgo.MessageEmbed {
	if result.Won {
		return &discordgo.MessageEmbed{
			Title: fmt.Sprintf("🎉 %s hit the jackpot", authorName),
			Description: fmt.Sprintf("Congratulations!\n## Winnings: %s\n- Balance: %s (%s)",
				common.FormatCoins(result.Payout),
				common.FormatCoins(result.Balance),
				common.FormatDelta(result.Payout)),
			Color: common.ColorGold,
		}
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🎰 %s missed the jackpot", authorName),
		Description: fmt.Sprintf("- Current jackpot: %s\n## Winnings: %s\n- Balance: %s",
			common.FormatCoins(result.Jackpot),
			common.FormatCoins(-result.Stake),
			common.FormatCoins(result.Balance)),
		Color: common.ColorDanger,
	}
}

// BuildJackpotAnnouncementEmbed renders the channel announcement of a jackpot win
func BuildJackpotAnnouncementEmbed(discordID, payout, remaining int64) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🎰 Jackpot!",
		Description: fmt.Sprintf("%s won **%s** from the jackpot.\nThe pool is now %s.",
			common.MentionUser(discordID),
			common.FormatCoins(payout),
			common.FormatCoins(remaining)),
		Color: common.ColorGold,
	}
}
