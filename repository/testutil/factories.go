package testutil

import "economy/models"

// CreateTestSnapshot creates a snapshot with a few users and a jackpot
func CreateTestSnapshot() *models.LedgerSnapshot {
	return &models.LedgerSnapshot{
		Balances: map[int64]int64{
			123456789012345678: 1500,
			987654321098765432: -200,
			111111:             0,
		},
		Jackpot: 4200,
	}
}

// CreateTestSnapshotWithUsers creates a snapshot with count users holding increasing balances
func CreateTestSnapshotWithUsers(count int, jackpot int64) *models.LedgerSnapshot {
	snapshot := models.NewLedgerSnapshot()
	for i := 1; i <= count; i++ {
		snapshot.Balances[int64(i)] = int64(i) * 100
	}
	snapshot.Jackpot = jackpot
	return snapshot
}
