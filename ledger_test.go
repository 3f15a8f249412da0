package till

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/yatai/till/kv"
)

func TestLedgerAppendAndDailyTotal(t *testing.T) {
	store := kv.NewMem()
	day := NewDay(2025, 8, 24)
	ledger := NewLedgerStore(store, day, "JPY")

	records := []CheckoutRecord{
		{ID: "r-1", Time: "2025-08-24 11:00:00", Items: []CheckoutItem{{Name: "Karaage", Price: yen(350), Qty: 2}}, Total: yen(700)},
		{ID: "r-2", Time: "2025-08-24 12:00:00", Items: []CheckoutItem{{Name: "Ramune", Price: yen(50), Qty: 1}}, Total: yen(50)},
	}
	for _, r := range records {
		if err := ledger.Append(r); err != nil {
			t.Fatalf("Append() unexpected error: %v", err)
		}
	}

	loaded := ledger.Load()
	if len(loaded) != 2 {
		t.Fatalf("Load() = %d records, want 2", len(loaded))
	}
	if loaded[0].ID != "r-1" || loaded[1].ID != "r-2" {
		t.Errorf("commit order not preserved: %q, %q", loaded[0].ID, loaded[1].ID)
	}

	// DailyTotal is exactly the sum of the record totals.
	sum := decimal.Zero
	for _, r := range loaded {
		sum = sum.Add(r.Total)
	}
	if got := ledger.DailyTotal(); !got.Equal(M(sum, "JPY")) || !sum.Equal(yen(750)) {
		t.Errorf("DailyTotal() = %v, want sum %v", got, sum)
	}
}

func TestLedgerLoadCorruptIsEmpty(t *testing.T) {
	store := kv.NewMem()
	day := NewDay(2025, 8, 24)
	store.Set(OrdersKey(day), `{"not":"an array"}`)
	ledger := NewLedgerStore(store, day, "JPY")
	if got := ledger.Load(); len(got) != 0 {
		t.Errorf("Load() on corrupt storage = %v, want empty", got)
	}
}

func TestLedgerExport(t *testing.T) {
	store := kv.NewMem()
	day := NewDay(2025, 8, 24)
	ledger := NewLedgerStore(store, day, "JPY")

	// Empty ledger refuses to export.
	if _, err := ledger.Export(t.TempDir()); err != ErrEmptyLedger {
		t.Fatalf("Export() of an empty ledger = %v, want ErrEmptyLedger", err)
	}

	ledger.Append(CheckoutRecord{ID: "r-1", Time: "2025-08-24 11:00:00",
		Items: []CheckoutItem{{Name: "Karaage", Price: yen(350), Qty: 1}}, Total: yen(350)})

	dir := t.TempDir()
	path, err := ledger.Export(dir)
	if err != nil {
		t.Fatalf("Export() unexpected error: %v", err)
	}
	if got, want := filepath.Base(path), "orders_2025-08-24.json"; got != want {
		t.Errorf("export named %q, want %q", got, want)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read export: %v", err)
	}
	if !strings.Contains(string(content), "\n") {
		t.Error("export is not pretty-printed")
	}
	var artifact struct {
		Date      string           `json:"date"`
		Checkouts []CheckoutRecord `json:"checkouts"`
	}
	if err := json.Unmarshal(content, &artifact); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if artifact.Date != "2025-08-24" || len(artifact.Checkouts) != 1 {
		t.Errorf("export = %+v, want the day and its 1 checkout", artifact)
	}
}

// Scenario: reset with both keys empty offers the reinitialize prompt,
// distinct from the destructive one offered when anything is stored.
func TestLedgerResetPrompts(t *testing.T) {
	store := kv.NewMem()
	day := NewDay(2025, 8, 24)
	ledger := NewLedgerStore(store, day, "JPY")

	var prompt string
	capture := func(p string) bool { prompt = p; return true }

	if err := ledger.Reset(capture); err != nil {
		t.Fatalf("Reset() unexpected error: %v", err)
	}
	emptyPrompt := prompt
	if !strings.Contains(emptyPrompt, "Reinitialize") {
		t.Errorf("empty-keys prompt = %q, want a reinitialize wording", emptyPrompt)
	}

	store.Set(OrdersKey(day), `[]`)
	if err := ledger.Reset(capture); err != nil {
		t.Fatalf("Reset() unexpected error: %v", err)
	}
	if prompt == emptyPrompt {
		t.Error("destructive prompt must differ from the reinitialize prompt")
	}
	if _, ok := store.Get(OrdersKey(day)); ok {
		t.Error("orders key still present after Reset()")
	}
}

func TestLedgerResetDeclined(t *testing.T) {
	store := kv.NewMem()
	day := NewDay(2025, 8, 24)
	store.Set(OrdersKey(day), `[{"name":"6","price":450}]`)
	store.Set(CartKey(day), `[{"menuId":"3","name":"Karaage","price":350}]`)
	ledger := NewLedgerStore(store, day, "JPY")

	if err := ledger.Reset(func(string) bool { return false }); err != ErrDeclined {
		t.Fatalf("Reset() declined error = %v, want ErrDeclined", err)
	}
	if _, ok := store.Get(OrdersKey(day)); !ok {
		t.Error("declined Reset() removed the orders key")
	}
	if _, ok := store.Get(CartKey(day)); !ok {
		t.Error("declined Reset() removed the cart key")
	}
}
