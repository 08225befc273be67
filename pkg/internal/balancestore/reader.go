package balancestore

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Latest returns the most recent snapshot row per account, ordered by
// account id.
func (s *Store) Latest(ctx context.Context) ([]Balance, error) {
	db, err := s.ensureDB(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, latestSQL(s.table))
	if err != nil {
		return nil, fmt.Errorf("balance store: latest: %w", err)
	}
	return scanBalances(rows)
}

// History returns snapshots for one account, newest first. A non-positive
// limit falls back to the default window.
func (s *Store) History(ctx context.Context, accountID string, limit int) ([]Balance, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	db, err := s.ensureDB(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, historySQL(s.table), accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("balance store: history: %w", err)
	}
	return scanBalances(rows)
}

func scanBalances(rows *sql.Rows) ([]Balance, error) {
	defer rows.Close()
	var out []Balance
	for rows.Next() {
		var b Balance
		var recordedAt string
		if err := rows.Scan(&b.AccountID, &b.Name, &b.Currency, &b.Balance, &recordedAt); err != nil {
			return nil, fmt.Errorf("balance store: scan: %w", err)
		}
		at, err := time.Parse(time.RFC3339, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("balance store: recorded_at %q: %w", recordedAt, err)
		}
		b.RecordedAt = at
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("balance store: rows: %w", err)
	}
	return out, nil
}
