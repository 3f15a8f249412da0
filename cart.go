package till

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"github.com/yatai/till/kv"
)

// CartLine is one unit of a single catalog item added to the in-progress
// cart. It is created on add and destroyed on clear or on commit.
type CartLine struct {
	MenuID  string          `json:"menuId"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	AddedAt string          `json:"addedAt"`
}

// CartStore owns the in-progress cart of one day.
type CartStore struct {
	store   kv.Store
	day     Day
	catalog *Catalog
}

// NewCartStore builds the cart store for a day, selling from catalog.
func NewCartStore(store kv.Store, day Day, catalog *Catalog) *CartStore {
	return &CartStore{store: store, day: day, catalog: catalog}
}

// Load returns the cart lines in the order they were added. A missing or
// corrupt key yields an empty cart.
func (s *CartStore) Load() []CartLine {
	value, ok := s.store.Get(CartKey(s.day))
	if !ok {
		return nil
	}
	var lines []CartLine
	if err := json.Unmarshal([]byte(value), &lines); err != nil {
		log.Printf("corrupt cart value ignored: %v", err)
		return nil
	}
	return lines
}

// Add looks up the catalog and appends one unit of the item to the cart.
// An unknown id is a silent no-op; the returned boolean reports whether a
// line was added.
func (s *CartStore) Add(menuID string) bool {
	item, ok := s.catalog.Item(menuID)
	if !ok {
		log.Printf("unknown menu id %q ignored", menuID)
		return false
	}
	lines := append(s.Load(), CartLine{
		MenuID:  item.ID,
		Name:    item.Name,
		Price:   item.Price,
		AddedAt: now().Format(clockFormat),
	})
	if err := s.save(lines); err != nil {
		log.Printf("could not persist cart: %v", err)
		return false
	}
	return true
}

// Subtotal sums the raw cart line prices.
func (s *CartStore) Subtotal() Money {
	total := decimal.Zero
	for _, l := range s.Load() {
		total = total.Add(l.Price)
	}
	return M(total, s.catalog.Currency())
}

// Clear empties the cart after confirmation. An already-empty cart skips
// the prompt and no-ops; declining leaves the cart untouched.
func (s *CartStore) Clear(confirm Confirmer) error {
	if len(s.Load()) == 0 {
		return nil
	}
	if !confirm(fmt.Sprintf("Clear the cart for %s?", s.day)) {
		return ErrDeclined
	}
	return s.store.Remove(CartKey(s.day))
}

// save persists the cart, honoring the contract that an empty cart is
// represented by key absence.
func (s *CartStore) save(lines []CartLine) error {
	if len(lines) == 0 {
		return s.store.Remove(CartKey(s.day))
	}
	content, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.store.Set(CartKey(s.day), string(content))
}
