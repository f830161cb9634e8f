package gambling

import (
	"context"

	"economy/bot/common"
	"economy/service"
)

// Feature handles the coin, dice and jackpot commands
type Feature struct {
	ledger service.LedgerService
}

// New creates a new gambling feature instance
func New(ledger service.LedgerService) *Feature {
	return &Feature{ledger: ledger}
}

// HandleCoinFlip handles `coin-flip <guess> <stake>`
func (f *Feature) HandleCoinFlip(ctx context.Context, r common.Responder, inv *common.Invocation) {
	result, err := f.ledger.PlayCoin(ctx, inv.DiscordID, inv.Arg(0), inv.StakeArg(1))
	if err != nil {
		common.Reply(r, inv, common.BuildErrorEmbed(err, ""))
		return
	}
	common.Reply(r, inv, BuildGameEmbed(inv.AuthorName, result))
}

// HandleDiceRoll handles `dice-roll <guess> <stake>`
func (f *Feature) HandleDiceRoll(ctx context.Context, r common.Responder, inv *common.Invocation) {
	result, err := f.ledger.PlayDice(ctx, inv.DiscordID, inv.Arg(0), inv.StakeArg(1))
	if err != nil {
		common.Reply(r, inv, common.BuildErrorEmbed(err, ""))
		return
	}
	common.Reply(r, inv, BuildGameEmbed(inv.AuthorName, result))
}

// HandleJackpot handles `jackpot-play <stake>`
func (f *Feature) HandleJackpot(ctx context.Context, r common.Responder, inv *common.Invocation) {
	result, err := f.ledger.PlayJackpot(ctx, inv.DiscordID, inv.StakeArg(0))
	if err != nil {
		common.Reply(r, inv, common.BuildErrorEmbed(err, ""))
		return
	}
	common.Reply(r, inv, BuildJackpotEmbed(inv.AuthorName, result))
}
