package till

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// MenuItem is one entry of the stall's menu: an id, a display name and a
// unit price in the catalog currency.
type MenuItem struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Catalog is the immutable menu the till sells from. It is loaded once at
// startup and shared read-only by the cart and the aggregation.
type Catalog struct {
	currency string
	items    []MenuItem
	byID     map[string]MenuItem
}

// NewCatalog builds a catalog from a currency and a fixed list of items.
func NewCatalog(currency string, items ...MenuItem) *Catalog {
	c := &Catalog{currency: currency, byID: make(map[string]MenuItem, len(items))}
	for _, it := range items {
		c.items = append(c.items, it)
		c.byID[it.ID] = it
	}
	return c
}

// LoadCatalog reads a catalog from a JSON file of the form
// {"currency":"JPY","items":[{"id":"1","name":"Yakisoba","price":500}]}.
func LoadCatalog(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read catalog file %q: %w", path, err)
	}
	var file struct {
		Currency string     `json:"currency"`
		Items    []MenuItem `json:"items"`
	}
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("could not decode catalog file %q: %w", path, err)
	}
	if file.Currency == "" {
		file.Currency = "JPY"
	}
	return NewCatalog(file.Currency, file.Items...), nil
}

// DefaultCatalog returns the built-in stall menu, used when no catalog file
// is given.
func DefaultCatalog() *Catalog {
	price := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	return NewCatalog("JPY",
		MenuItem{ID: "1", Name: "Yakisoba", Price: price(500)},
		MenuItem{ID: "2", Name: "Takoyaki", Price: price(450)},
		MenuItem{ID: "3", Name: "Karaage", Price: price(350)},
		MenuItem{ID: "4", Name: "Frankfurt", Price: price(300)},
		MenuItem{ID: "5", Name: "Kakigori", Price: price(250)},
		MenuItem{ID: "6", Name: "Curry Rice", Price: price(450)},
		MenuItem{ID: "7", Name: "Onigiri", Price: price(150)},
		MenuItem{ID: "8", Name: "Ramune", Price: price(50)},
	)
}

// Item returns the menu item with this id, if any.
func (c *Catalog) Item(id string) (MenuItem, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// Items returns the menu in declaration order. The caller must not mutate it.
func (c *Catalog) Items() []MenuItem { return c.items }

// Currency returns the catalog currency code.
func (c *Catalog) Currency() string { return c.currency }
