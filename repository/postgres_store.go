package repository

import (
	"context"
	"errors"
	"fmt"

	"economy/database"
	"economy/models"

	"github.com/jackc/pgx/v5"
)

// PostgresStore persists the ledger in the ledger_balances and ledger_jackpot tables
type PostgresStore struct {
	db *database.DB
}

// NewPostgresStore creates a postgres-backed ledger store
func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Load reads every balance and the jackpot row
func (s *PostgresStore) Load(ctx context.Context) (*models.LedgerSnapshot, error) {
	snapshot := models.NewLedgerSnapshot()

	rows, err := s.db.Query(ctx, `SELECT discord_id, balance FROM ledger_balances`)
	if err != nil {
		return nil, fmt.Errorf("failed to query balances: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var discordID, balance int64
		if err := rows.Scan(&discordID, &balance); err != nil {
			return nil, fmt.Errorf("failed to scan balance: %w", err)
		}
		snapshot.Balances[discordID] = balance
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate balances: %w", err)
	}

	err = s.db.QueryRow(ctx, `SELECT amount FROM ledger_jackpot WHERE id = 1`).Scan(&snapshot.Jackpot)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to query jackpot: %w", err)
	}

	return snapshot, nil
}

// Save replaces all balances and the jackpot in one transaction
func (s *PostgresStore) Save(ctx context.Context, snapshot *models.LedgerSnapshot) error {
	return s.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM ledger_balances`); err != nil {
			return fmt.Errorf("failed to clear balances: %w", err)
		}

		rows := make([][]any, 0, len(snapshot.Balances))
		for discordID, balance := range snapshot.Balances {
			rows = append(rows, []any{discordID, balance})
		}
		if _, err := tx.CopyFrom(ctx,
			pgx.Identifier{"ledger_balances"},
			[]string{"discord_id", "balance"},
			pgx.CopyFromRows(rows),
		); err != nil {
			return fmt.Errorf("failed to copy balances: %w", err)
		}

		query := `
			INSERT INTO ledger_jackpot (id, amount, updated_at)
			VALUES (1, $1, NOW())
			ON CONFLICT (id) DO UPDATE SET amount = EXCLUDED.amount, updated_at = NOW()
		`
		if _, err := tx.Exec(ctx, query, snapshot.Jackpot); err != nil {
			return fmt.Errorf("failed to update jackpot: %w", err)
		}
		return nil
	})
}
