package till

import (
	"testing"
	"time"
)

func TestDayKeys(t *testing.T) {
	d := NewDay(2025, time.January, 1)
	if got, want := OrdersKey(d), "orders_2025-01-01"; got != want {
		t.Errorf("OrdersKey() = %q, want %q", got, want)
	}
	if got, want := CartKey(d), "cart_2025-01-01"; got != want {
		t.Errorf("CartKey() = %q, want %q", got, want)
	}
}

func TestDayNormalizes(t *testing.T) {
	// Out-of-range day-of-month rolls over like time.Date.
	d := NewDay(2024, time.December, 32)
	if got, want := d.String(), "2025-01-01"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2025-08-24")
	if err != nil {
		t.Fatalf("ParseDay() unexpected error: %v", err)
	}
	if got, want := d, NewDay(2025, time.August, 24); got != want {
		t.Errorf("ParseDay() = %v, want %v", got, want)
	}
	if _, err := ParseDay("24/08/2025"); err == nil {
		t.Error("ParseDay() accepted a malformed day")
	}
}

func TestParseClock(t *testing.T) {
	if _, ok := parseClock("2025-08-24 12:30:00"); !ok {
		t.Error("parseClock() rejected the till's own format")
	}
	if _, ok := parseClock("2025-08-24T12:30:00+09:00"); !ok {
		t.Error("parseClock() rejected RFC3339")
	}
	if _, ok := parseClock("noon-ish"); ok {
		t.Error("parseClock() accepted garbage")
	}
	if _, ok := parseClock(""); ok {
		t.Error("parseClock() accepted an empty timestamp")
	}
}
