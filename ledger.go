package till

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/yatai/till/kv"
)

// LedgerStore owns the ordered collection of committed checkouts for one
// calendar day. Records are appended on checkout and immutable afterward,
// except for wholesale deletion on reset.
type LedgerStore struct {
	store    kv.Store
	day      Day
	currency string
}

// NewLedgerStore builds the ledger store for a day.
func NewLedgerStore(store kv.Store, day Day, currency string) *LedgerStore {
	return &LedgerStore{store: store, day: day, currency: currency}
}

// Day returns the day this ledger is scoped to.
func (s *LedgerStore) Day() Day { return s.day }

// Load returns the day's checkouts in commit order, normalized to the
// canonical shape. Missing or corrupt storage yields an empty ledger.
func (s *LedgerStore) Load() []CheckoutRecord {
	value, ok := s.store.Get(OrdersKey(s.day))
	if !ok {
		return nil
	}
	return decodeRecords(value)
}

// Append persists the day's checkouts plus record.
func (s *LedgerStore) Append(record CheckoutRecord) error {
	records := append(s.Load(), record)
	content, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	return s.store.Set(OrdersKey(s.day), string(content))
}

// DailyTotal sums the totals of every committed checkout.
func (s *LedgerStore) DailyTotal() Money {
	total := decimal.Zero
	for _, r := range s.Load() {
		total = total.Add(r.Total)
	}
	return M(total, s.currency)
}

// exportArtifact is the shape of the downloadable day export.
type exportArtifact struct {
	Date      string           `json:"date"`
	Checkouts []CheckoutRecord `json:"checkouts"`
}

// Export writes the day's ledger as pretty JSON into dir, named after the
// orders key (orders_D.json), and returns the written path. An empty ledger
// is a user-visible, non-fatal error and writes nothing.
func (s *LedgerStore) Export(dir string) (string, error) {
	records := s.Load()
	if len(records) == 0 {
		return "", ErrEmptyLedger
	}
	content, err := json.MarshalIndent(exportArtifact{
		Date:      s.day.String(),
		Checkouts: records,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not encode export: %w", err)
	}
	path := filepath.Join(dir, OrdersKey(s.day)+".json")
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("could not write export %q: %w", path, err)
	}
	return path, nil
}

// Reset deletes the day's orders and cart keys after confirmation. When
// both are already empty a distinct "reinitialize" prompt is offered
// instead of the destructive one; both paths perform the same idempotent
// key removal.
func (s *LedgerStore) Reset(confirm Confirmer) error {
	_, hasOrders := s.store.Get(OrdersKey(s.day))
	_, hasCart := s.store.Get(CartKey(s.day))

	var prompt string
	if !hasOrders && !hasCart {
		prompt = fmt.Sprintf("Keys for %s are already empty. Reinitialize them anyway?", s.day)
	} else {
		prompt = fmt.Sprintf("Delete all orders and the cart for %s? This cannot be undone.", s.day)
	}
	if !confirm(prompt) {
		return ErrDeclined
	}
	if err := s.store.Remove(OrdersKey(s.day)); err != nil {
		return err
	}
	return s.store.Remove(CartKey(s.day))
}
