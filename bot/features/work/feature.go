package work

import (
	"context"
	"fmt"

	"economy/bot/common"
	"economy/models"
	"economy/service"

	"github.com/bwmarrin/discordgo"
)

// cooldownTitle is shown while the work cooldown is running
const cooldownTitle = "😮‍💨 Taking a break"

// Feature handles the work command
type Feature struct {
	ledger service.LedgerService
}

// New creates a new work feature instance
func New(ledger service.LedgerService) *Feature {
	return &Feature{ledger: ledger}
}

// HandleWork handles `work`
func (f *Feature) HandleWork(ctx context.Context, r common.Responder, inv *common.Invocation) {
	result, err := f.ledger.Work(ctx, inv.DiscordID)
	if err != nil {
		common.Reply(r, inv, common.BuildErrorEmbed(err, cooldownTitle))
		return
	}
	common.Reply(r, inv, BuildWorkEmbed(inv.AuthorName, result))
}

// BuildWorkEmbed renders credited work earnings
func BuildWorkEmbed(authorName string, result *models.WorkResult) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("⚒️ %s went to work", authorName),
		Description: fmt.Sprintf("Earned %s through honest labour.\n- Balance: %s (%s)",
			common.FormatCoins(result.Amount),
			common.FormatCoins(result.Balance),
			common.FormatDelta(result.Amount)),
		Color: common.ColorSuccess,
	}
}
