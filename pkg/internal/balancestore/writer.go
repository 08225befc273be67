package balancestore

import (
	"context"
	"fmt"
	"time"

	"github.com/mtlab/wfirma-go/pkg/internal/types"
)

// Record inserts one snapshot batch inside a transaction. Rows without a
// RecordedAt share a single capture time so the batch reads back as one
// snapshot.
func (s *Store) Record(ctx context.Context, balances []Balance) error {
	if len(balances) == 0 {
		return nil
	}
	db, err := s.ensureDB(ctx)
	if err != nil {
		return err
	}
	now := time.Now().UTC()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("balance store: begin: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, insertSQL(s.table))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("balance store: prepare: %w", err)
	}
	defer stmt.Close()

	for _, b := range balances {
		at := b.RecordedAt
		if at.IsZero() {
			at = now
		}
		if _, err := stmt.ExecContext(ctx, b.AccountID, b.Name, b.Currency, b.Balance, at.UTC().Format(time.RFC3339)); err != nil {
			tx.Rollback()
			return fmt.Errorf("balance store: insert account %s: %w", b.AccountID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("balance store: commit: %w", err)
	}

	s.NotifyLoggers(types.InfoLevel, "%s => level: INFO, event: Record, rows: %d => Snapshot stored", s.componentMetadata, len(balances))
	return nil
}
