// package balancestore persists company account balance snapshots through
// database/sql. The driver stays a caller choice; cmd and the tests blank
// import modernc.org/sqlite and hand the store a DSN.
package balancestore

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/mtlab/wfirma-go/pkg/internal/types"
	"github.com/mtlab/wfirma-go/pkg/internal/utils"
)

const (
	defaultDriver       = "sqlite"
	defaultTable        = "account_balances"
	defaultHistoryLimit = 100
)

// Balance is one account snapshot row.
type Balance struct {
	AccountID  string
	Name       string
	Currency   string
	Balance    float64
	RecordedAt time.Time
}

// Store writes and reads snapshot rows. Construct with NewStore, then Init
// before the first Record.
type Store struct {
	componentMetadata types.ComponentMetadata

	driverName string
	dsn        string
	table      string

	db     *sql.DB
	dbLock sync.Mutex

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewStore builds a store with defaults and applies options.
func NewStore(options ...types.Option[*Store]) *Store {
	s := &Store{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "BALANCE_STORE",
		},
		driverName: defaultDriver,
		table:      defaultTable,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Init opens the database when needed and creates the snapshot table and
// its lookup index.
func (s *Store) Init(ctx context.Context) error {
	db, err := s.ensureDB(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, createTableDDL(s.table)); err != nil {
		return fmt.Errorf("balance store: create table: %w", err)
	}
	if _, err := db.ExecContext(ctx, createIndexDDL(s.table)); err != nil {
		return fmt.Errorf("balance store: create index: %w", err)
	}
	s.NotifyLoggers(types.DebugLevel, "%s => level: DEBUG, event: Init, table: %s => Schema ready", s.componentMetadata, s.table)
	return nil
}

// Close releases the underlying handle.
func (s *Store) Close() error {
	s.dbLock.Lock()
	defer s.dbLock.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) ensureDB(ctx context.Context) (*sql.DB, error) {
	s.dbLock.Lock()
	defer s.dbLock.Unlock()
	if s.db != nil {
		return s.db, nil
	}
	if s.dsn == "" {
		return nil, fmt.Errorf("balance store: dsn is required")
	}
	db, err := sql.Open(s.driverName, s.dsn)
	if err != nil {
		return nil, fmt.Errorf("balance store: open: %w", err)
	}
	// One connection keeps :memory: databases coherent and serializes
	// sqlite writes.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("balance store: ping: %w", err)
	}
	s.db = db
	return db, nil
}
