package ranking

import (
	"fmt"
	"strings"

	"economy/bot/common"
	"economy/models"

	"github.com/bwmarrin/discordgo"
)

// BuildTopRankingEmbed renders the three highest balances
func BuildTopRankingEmbed(entries []*models.RankingEntry) *discordgo.MessageEmbed {
	description := rankingLines(entries)
	if description == "" {
		description = "No rankings yet."
	}

	return &discordgo.MessageEmbed{
		Title:       "🏅 Top 3 ranking",
		Description: description,
		Color:       common.ColorInfo,
	}
}

// BuildFullRankingEmbed renders every balance, highest first
func BuildFullRankingEmbed(entries []*models.RankingEntry) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🏅 Full ranking",
		Description: rankingLines(entries),
		Color:       common.ColorInfo,
	}
}

// rankingLines joins one line per entry, cut to fit an embed description
func rankingLines(entries []*models.RankingEntry) string {
	var b strings.Builder
	for i, entry := range entries {
		line := fmt.Sprintf("%d. %s: %s", entry.Rank, common.MentionUser(entry.DiscordID), common.FormatCoins(entry.Balance))
		if i > 0 {
			line = "\n" + line
		}

		more := fmt.Sprintf("\n…and %d more", len(entries)-i)
		if b.Len()+len(line)+len(more) > common.MaxDescriptionLength {
			b.WriteString(more)
			break
		}
		b.WriteString(line)
	}
	return b.String()
}
