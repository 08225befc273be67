package balancestore

import (
	"context"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mtlab/wfirma-go/pkg/internal/xmlcodec"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st := NewStore(WithDSN(":memory:"))
	if err := st.Init(context.Background()); err != nil {
		t.Fatalf("init error: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestRecordAndLatest(t *testing.T) {
	st := newTestStore(t)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	batch := []Balance{
		{AccountID: "2", Name: "EUR wallet", Currency: "EUR", Balance: 1250.40, RecordedAt: at},
		{AccountID: "1", Name: "Main", Currency: "PLN", Balance: 20000, RecordedAt: at},
	}
	if err := st.Record(context.Background(), batch); err != nil {
		t.Fatalf("record error: %v", err)
	}

	got, err := st.Latest(context.Background())
	if err != nil {
		t.Fatalf("latest error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].AccountID != "1" || got[0].Balance != 20000 {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if got[1].Currency != "EUR" || !got[1].RecordedAt.Equal(at) {
		t.Fatalf("unexpected second row: %+v", got[1])
	}
}

func TestLatestPicksNewestSnapshot(t *testing.T) {
	st := newTestStore(t)
	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	if err := st.Record(context.Background(), []Balance{{AccountID: "1", Name: "Main", Currency: "PLN", Balance: 100, RecordedAt: t1}}); err != nil {
		t.Fatalf("record error: %v", err)
	}
	if err := st.Record(context.Background(), []Balance{{AccountID: "1", Name: "Main", Currency: "PLN", Balance: 150, RecordedAt: t2}}); err != nil {
		t.Fatalf("record error: %v", err)
	}

	got, err := st.Latest(context.Background())
	if err != nil {
		t.Fatalf("latest error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	if got[0].Balance != 150 || !got[0].RecordedAt.Equal(t2) {
		t.Fatalf("expected the newer snapshot, got %+v", got[0])
	}
}

func TestHistory(t *testing.T) {
	st := newTestStore(t)
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	var batch []Balance
	for i := 0; i < 3; i++ {
		batch = append(batch, Balance{
			AccountID:  "1",
			Name:       "Main",
			Currency:   "PLN",
			Balance:    float64(100 * (i + 1)),
			RecordedAt: base.AddDate(0, 0, i),
		})
	}
	batch = append(batch, Balance{AccountID: "2", Name: "Other", Currency: "PLN", Balance: 5, RecordedAt: base})
	if err := st.Record(context.Background(), batch); err != nil {
		t.Fatalf("record error: %v", err)
	}

	got, err := st.History(context.Background(), "1", 2)
	if err != nil {
		t.Fatalf("history error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Balance != 300 || got[1].Balance != 200 {
		t.Fatalf("expected newest first, got %+v", got)
	}

	got, err = st.History(context.Background(), "1", 0)
	if err != nil {
		t.Fatalf("history error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected the default limit to return all 3 rows, got %d", len(got))
	}
}

func TestRecordEmptyBatch(t *testing.T) {
	st := newTestStore(t)
	if err := st.Record(context.Background(), nil); err != nil {
		t.Fatalf("expected empty batch to be a no-op, got %v", err)
	}
	got, err := st.Latest(context.Background())
	if err != nil {
		t.Fatalf("latest error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %d", len(got))
	}
}

func TestRecordFillsCaptureTime(t *testing.T) {
	st := newTestStore(t)
	if err := st.Record(context.Background(), []Balance{{AccountID: "1", Name: "Main", Currency: "PLN", Balance: 1}}); err != nil {
		t.Fatalf("record error: %v", err)
	}
	got, err := st.Latest(context.Background())
	if err != nil {
		t.Fatalf("latest error: %v", err)
	}
	if len(got) != 1 || got[0].RecordedAt.IsZero() {
		t.Fatalf("expected a capture time to be filled in, got %+v", got)
	}
}

func TestFromAccounts(t *testing.T) {
	doc := xmlcodec.Map{
		"company_accounts": xmlcodec.Map{
			"company_account": xmlcodec.List{
				xmlcodec.Map{"id": "1", "name": "Main", "currency": "PLN", "balance": "20000.00"},
				xmlcodec.Map{"id": "2", "name": "Wallet", "money": "512.30"},
			},
		},
	}
	rows := FromAccounts(doc)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].AccountID != "1" || rows[0].Balance != 20000 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Balance != 512.30 || rows[1].Currency != "PLN" {
		t.Fatalf("expected the money fallback and PLN default, got %+v", rows[1])
	}

	if rows := FromAccounts(xmlcodec.Map{"status": xmlcodec.Map{"code": "OK"}}); len(rows) != 0 {
		t.Fatalf("expected no rows without an accounts section, got %+v", rows)
	}
}
