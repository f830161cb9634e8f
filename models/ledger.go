package models

// LedgerSnapshot is the persisted form of the ledger.
// Balance keys are encoded as decimal strings in JSON.
type LedgerSnapshot struct {
	Balances map[int64]int64 `json:"balances"`
	Jackpot  int64           `json:"jackpot"`
}

// NewLedgerSnapshot returns an empty snapshot
func NewLedgerSnapshot() *LedgerSnapshot {
	return &LedgerSnapshot{Balances: make(map[int64]int64)}
}
