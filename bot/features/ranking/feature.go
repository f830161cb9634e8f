package ranking

import (
	"context"

	"economy/bot/common"
	"economy/service"
)

// Feature handles the ranking commands
type Feature struct {
	ledger service.LedgerService
}

func New(ledger service.LedgerService) *Feature {
	return &Feature{ledger: ledger}
}

// HandleTopRanking handles `top-ranking`
func (f *Feature) HandleTopRanking(ctx context.Context, r common.Responder, inv *common.Invocation) {
	common.Reply(r, inv, BuildTopRankingEmbed(f.ledger.TopRanking(ctx)))
}

// HandleFullRanking handles `full-ranking`
func (f *Feature) HandleFullRanking(ctx context.Context, r common.Responder, inv *common.Invocation) {
	common.Reply(r, inv, BuildFullRankingEmbed(f.ledger.FullRanking(ctx)))
}
