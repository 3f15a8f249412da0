package till

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// testCatalog is the fixed menu the store tests sell from.
func testCatalog() *Catalog {
	return NewCatalog("JPY",
		MenuItem{ID: "3", Name: "Karaage", Price: decimal.NewFromInt(350)},
		MenuItem{ID: "6", Name: "Curry Rice", Price: decimal.NewFromInt(450)},
		MenuItem{ID: "8", Name: "Ramune", Price: decimal.NewFromInt(50)},
	)
}

// freezeClock pins the till's clock for the duration of a test.
func freezeClock(t *testing.T, at time.Time) {
	t.Helper()
	saved := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = saved })
}

// yen is a shorthand for decimal amounts in tests.
func yen(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
