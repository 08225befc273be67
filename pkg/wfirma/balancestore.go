package wfirma

import (
	"database/sql"

	"github.com/mtlab/wfirma-go/pkg/internal/balancestore"
)

// BalanceStore persists company account balance snapshots through
// database/sql. Callers blank import the driver they want.
type BalanceStore = balancestore.Store

// Balance is one account snapshot row.
type Balance = balancestore.Balance

// NewBalanceStore builds a store from options. Call Init before the
// first Record.
func NewBalanceStore(options ...Option[*BalanceStore]) *BalanceStore {
	return balancestore.NewStore(options...)
}

// BalanceStoreWithDSN sets the data source name.
func BalanceStoreWithDSN(dsn string) Option[*BalanceStore] {
	return balancestore.WithDSN(dsn)
}

// BalanceStoreWithDriver overrides the database/sql driver name.
func BalanceStoreWithDriver(name string) Option[*BalanceStore] {
	return balancestore.WithDriver(name)
}

// BalanceStoreWithDB hands the store an open handle instead of a DSN.
func BalanceStoreWithDB(db *sql.DB) Option[*BalanceStore] {
	return balancestore.WithDB(db)
}

// BalanceStoreWithTable overrides the snapshot table name.
func BalanceStoreWithTable(table string) Option[*BalanceStore] {
	return balancestore.WithTable(table)
}

// BalanceStoreWithLogger attaches loggers to the store.
func BalanceStoreWithLogger(loggers ...Logger) Option[*BalanceStore] {
	return balancestore.WithLogger(loggers...)
}

// BalancesFromAccounts lifts a decoded company_accounts response into
// snapshot rows.
func BalancesFromAccounts(doc Map) []Balance {
	return balancestore.FromAccounts(doc)
}
