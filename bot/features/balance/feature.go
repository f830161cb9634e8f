package balance

import (
	"context"
	"fmt"

	"economy/bot/common"
	"economy/service"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the balance command
type Feature struct {
	ledger service.LedgerService
}

func New(ledger service.LedgerService) *Feature {
	return &Feature{ledger: ledger}
}

// HandleBalance handles `balance`
func (f *Feature) HandleBalance(ctx context.Context, r common.Responder, inv *common.Invocation) {
	balance := f.ledger.Balance(ctx, inv.DiscordID)
	jackpot := f.ledger.Jackpot(ctx)
	common.Reply(r, inv, BuildBalanceEmbed(inv.AuthorName, balance, jackpot))
}

// BuildBalanceEmbed renders a user's wallet
func BuildBalanceEmbed(authorName string, balance, jackpot int64) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("💰 %s's wallet", authorName),
		Description: fmt.Sprintf("Current balance: %s", common.FormatCoins(balance)),
		Color:       common.ColorInfo,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Jackpot: %s", common.FormatCoins(jackpot)),
		},
	}
}
