package till

import "testing"

func TestMoneyString(t *testing.T) {
	if got, want := M(yen(350), "JPY").String(), "¥350"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMoneyAdd(t *testing.T) {
	sum := M(yen(350), "JPY").Add(M(yen(50), "JPY"))
	if !sum.Equal(M(yen(400), "JPY")) {
		t.Errorf("Add() = %v, want ¥400", sum)
	}
	// The empty currency is weak and adopts the other side.
	sum = Money{}.Add(M(yen(50), "JPY"))
	if sum.Currency() != "JPY" {
		t.Errorf("Currency() = %q, want JPY", sum.Currency())
	}
}
