package models

// TransactionType represents the type of balance change
type TransactionType string

const (
	TransactionTypeCoinWin      TransactionType = "coin_win"
	TransactionTypeCoinLoss     TransactionType = "coin_loss"
	TransactionTypeDiceWin      TransactionType = "dice_win"
	TransactionTypeDiceLoss     TransactionType = "dice_loss"
	TransactionTypeJackpotStake TransactionType = "jackpot_stake"
	TransactionTypeJackpotWin   TransactionType = "jackpot_win"
	TransactionTypeWork         TransactionType = "work"
)

// GameTransactionType returns the transaction type for a resolved coin or dice bet
func GameTransactionType(game GameType, won bool) TransactionType {
	switch {
	case game == GameTypeCoin && won:
		return TransactionTypeCoinWin
	case game == GameTypeCoin:
		return TransactionTypeCoinLoss
	case won:
		return TransactionTypeDiceWin
	default:
		return TransactionTypeDiceLoss
	}
}
