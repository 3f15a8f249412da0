package till

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// CheckoutItem is one quantity-counted line of a committed checkout. It is
// derived from cart lines at commit time, or read back from a persisted
// record; it is never persisted on its own.
type CheckoutItem struct {
	MenuID string          `json:"menuId,omitempty"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Qty    int             `json:"qty"`
}

// CheckoutRecord is one committed order in the day's ledger. Immutable once
// appended, except for wholesale deletion on reset.
type CheckoutRecord struct {
	ID    string          `json:"id"`
	Time  string          `json:"time"`
	Items []CheckoutItem  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// decodeRecords turns a stored orders value into canonical records.
//
// The stored sequence may mix the current shape (array-valued "items") with
// the legacy single-item shape; both are normalized. A value that is not
// valid JSON, or whose top level is not an array, degrades to an empty
// sequence with a logged diagnostic: corruption must never crash the caller.
func decodeRecords(value string) []CheckoutRecord {
	var raw []any
	if err := json.Unmarshal([]byte(value), &raw); err != nil {
		log.Printf("corrupt orders value ignored: %v", err)
		return nil
	}
	records := make([]CheckoutRecord, 0, len(raw))
	for i, r := range raw {
		obj, ok := r.(map[string]any)
		if !ok {
			log.Printf("orders entry %d is not an object, skipped", i)
			continue
		}
		records = append(records, normalizeRecord(obj, i))
	}
	return records
}

// normalizeRecord converts one raw decoded record, at index idx of the
// stored sequence, into the canonical shape.
func normalizeRecord(raw map[string]any, idx int) CheckoutRecord {
	when, parsed := parseClock(asString(raw["time"]))
	if !parsed {
		// A broken timestamp must never block loading, and must never be
		// back-dated to an unknown past.
		when = now()
	}

	var rec CheckoutRecord
	if items, ok := raw["items"].([]any); ok {
		rec = normalizeCurrent(raw, items)
		if rec.ID == "" {
			rec.ID = freshID()
		}
	} else {
		rec = normalizeLegacy(raw)
		if rec.ID == "" {
			rec.ID = fmt.Sprintf("legacy-%d-%d", idx, when.Unix())
		}
	}
	rec.Time = when.Format(clockFormat)
	return rec
}

// normalizeCurrent coerces a record with an array-valued item list.
func normalizeCurrent(raw map[string]any, items []any) CheckoutRecord {
	rec := CheckoutRecord{ID: asString(raw["id"])}
	for _, it := range items {
		obj, _ := it.(map[string]any)
		item := CheckoutItem{
			MenuID: asString(obj["menuId"]),
			Name:   asString(obj["name"]),
			Price:  decimal.Zero,
			Qty:    1,
		}
		if item.Name == "" {
			item.Name = "unknown"
		}
		if price, ok := asDecimal(obj["price"]); ok {
			item.Price = price
		}
		if qty, ok := asDecimal(obj["qty"]); ok && qty.IntPart() >= 1 {
			item.Qty = int(qty.IntPart())
		}
		rec.Items = append(rec.Items, item)
	}
	// A stored numeric total is kept verbatim; anything else is recomputed.
	if total, ok := asDecimal(raw["total"]); ok {
		rec.Total = total
	} else {
		rec.Total = itemsTotal(rec.Items)
	}
	return rec
}

// normalizeLegacy synthesizes one quantity-1 line item from the legacy
// single-item shape {name, price, menuId?}.
func normalizeLegacy(raw map[string]any) CheckoutRecord {
	price, _ := asDecimal(raw["price"])
	name := asString(raw["name"])
	if name == "" {
		name = "unknown"
	}
	item := CheckoutItem{
		MenuID: asString(raw["menuId"]),
		Name:   name,
		Price:  price,
		Qty:    1,
	}
	return CheckoutRecord{
		ID:    asString(raw["id"]),
		Items: []CheckoutItem{item},
		Total: price,
	}
}

func itemsTotal(items []CheckoutItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	return total
}

// freshID synthesizes a record id unique within the day. Legacy fallback
// ids carry a distinct prefix so the two strategies cannot collide.
func freshID() string { return fmt.Sprintf("r-%d", now().UnixNano()) }

// asString coerces a decoded JSON value to a string, "" when it is not one.
func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asDecimal coerces a decoded JSON value numerically. Numbers are taken as
// is; numeric strings are accepted because legacy records stored prices
// both ways.
func asDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}
