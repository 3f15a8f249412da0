package till

import (
	"github.com/shopspring/decimal"
)

// groupKey identifies an aggregation group: same menu item (or name for
// catalog-less legacy lines) at the same price.
type groupKey struct {
	id    string
	price string
}

// Aggregate groups raw cart lines into quantity-counted checkout items, in
// first-seen group order, and returns them with their total. The total
// always equals the flat sum of the cart line prices.
func Aggregate(lines []CartLine) ([]CheckoutItem, decimal.Decimal) {
	var items []CheckoutItem
	index := make(map[groupKey]int)
	total := decimal.Zero

	for _, line := range lines {
		id := line.MenuID
		if id == "" {
			id = line.Name
		}
		key := groupKey{id: id, price: line.Price.String()}
		if at, ok := index[key]; ok {
			items[at].Qty++
		} else {
			index[key] = len(items)
			items = append(items, CheckoutItem{
				MenuID: line.MenuID,
				Name:   line.Name,
				Price:  line.Price,
				Qty:    1,
			})
		}
		total = total.Add(line.Price)
	}
	return items, total
}

// Checkout commits the current cart into the ledger and clears the cart.
// An empty cart aborts with ErrEmptyCart and no partial effects.
func Checkout(cart *CartStore, ledger *LedgerStore) (CheckoutRecord, error) {
	lines := cart.Load()
	if len(lines) == 0 {
		return CheckoutRecord{}, ErrEmptyCart
	}
	items, total := Aggregate(lines)
	record := CheckoutRecord{
		ID:    freshID(),
		Time:  now().Format(clockFormat),
		Items: items,
		Total: total,
	}
	if err := ledger.Append(record); err != nil {
		return CheckoutRecord{}, err
	}
	if err := cart.store.Remove(CartKey(cart.day)); err != nil {
		return record, err
	}
	return record, nil
}
