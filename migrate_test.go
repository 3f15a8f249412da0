package till

import (
	"testing"
	"time"

	"github.com/yatai/till/kv"
)

// Scenario: local 2025-01-01, UTC still 2024-12-31. UTC-keyed orders exist,
// local-keyed absent: migration copies the value and leaves the source.
func TestMigrateLegacyKeys(t *testing.T) {
	store := kv.NewMem()
	local := NewDay(2025, time.January, 1)
	utc := NewDay(2024, time.December, 31)
	orders := `[{"name":"6","price":450}]`
	store.Set(OrdersKey(utc), orders)

	MigrateLegacyKeys(store, local, utc)

	got, ok := store.Get(OrdersKey(local))
	if !ok || got != orders {
		t.Errorf("local orders = %q, %v; want the UTC value copied verbatim", got, ok)
	}
	src, ok := store.Get(OrdersKey(utc))
	if !ok || src != orders {
		t.Errorf("UTC source = %q, %v; must be unchanged", src, ok)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := kv.NewMem()
	local := NewDay(2025, time.January, 1)
	utc := NewDay(2024, time.December, 31)
	store.Set(OrdersKey(utc), `[{"name":"6","price":450}]`)

	MigrateLegacyKeys(store, local, utc)
	first, _ := store.Get(OrdersKey(local))

	// Mutate the source; a second run must not re-copy.
	store.Set(OrdersKey(utc), `[]`)
	MigrateLegacyKeys(store, local, utc)
	second, _ := store.Get(OrdersKey(local))

	if first != second {
		t.Errorf("second run changed local data: %q -> %q", first, second)
	}
}

func TestMigrateNoOpWhenDatesAgree(t *testing.T) {
	store := kv.NewMem()
	day := NewDay(2025, time.June, 15)
	store.Set(OrdersKey(day), `[]`)

	MigrateLegacyKeys(store, day, day)
	if keys, _ := store.Keys(); len(keys) != 1 {
		t.Errorf("same-day migration touched the store: %v", keys)
	}
}

func TestMigrateNeverOverwritesLocal(t *testing.T) {
	store := kv.NewMem()
	local := NewDay(2025, time.January, 1)
	utc := NewDay(2024, time.December, 31)
	store.Set(CartKey(local), `[{"menuId":"3"}]`)
	store.Set(CartKey(utc), `[{"menuId":"8"}]`)

	MigrateLegacyKeys(store, local, utc)
	got, _ := store.Get(CartKey(local))
	if got != `[{"menuId":"3"}]` {
		t.Errorf("populated local slot was overwritten: %q", got)
	}
}

// Orders and cart migrate independently of each other.
func TestMigrateIndependentSlots(t *testing.T) {
	store := kv.NewMem()
	local := NewDay(2025, time.January, 1)
	utc := NewDay(2024, time.December, 31)
	store.Set(OrdersKey(local), `[]`) // local orders already present
	store.Set(CartKey(utc), `[{"menuId":"8"}]`)

	MigrateLegacyKeys(store, local, utc)

	if got, _ := store.Get(OrdersKey(local)); got != `[]` {
		t.Errorf("local orders overwritten: %q", got)
	}
	if got, ok := store.Get(CartKey(local)); !ok || got != `[{"menuId":"8"}]` {
		t.Errorf("cart not migrated: %q, %v", got, ok)
	}
}
