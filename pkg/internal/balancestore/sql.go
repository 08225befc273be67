package balancestore

import "fmt"

// recorded_at is stored as RFC3339 UTC text so ordering and MAX() work on
// any database/sql driver.

func createTableDDL(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	account_id TEXT NOT NULL,
	name TEXT NOT NULL,
	currency TEXT NOT NULL,
	balance REAL NOT NULL,
	recorded_at TEXT NOT NULL
)`, table)
}

func createIndexDDL(table string) string {
	return fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_account_time ON %s (account_id, recorded_at)", table, table)
}

func insertSQL(table string) string {
	return fmt.Sprintf("INSERT INTO %s (account_id, name, currency, balance, recorded_at) VALUES (?, ?, ?, ?, ?)", table)
}

func latestSQL(table string) string {
	return fmt.Sprintf(`SELECT b.account_id, b.name, b.currency, b.balance, b.recorded_at
FROM %s b
JOIN (SELECT account_id, MAX(recorded_at) AS recorded_at FROM %s GROUP BY account_id) m
ON b.account_id = m.account_id AND b.recorded_at = m.recorded_at
ORDER BY b.account_id`, table, table)
}

func historySQL(table string) string {
	return fmt.Sprintf(`SELECT account_id, name, currency, balance, recorded_at
FROM %s
WHERE account_id = ?
ORDER BY recorded_at DESC
LIMIT ?`, table)
}
