package engine

import (
	"testing"
)

// ============================================================================
// VIEW AND FILTER TESTS
// ============================================================================

type orderFixture struct {
	City     string
	Tier     string
	Amount   float64
	AmountOK bool
}

var fixtureAdapter = NewDomainAdapter[orderFixture]().
	Dimension("city", func(o orderFixture) string { return o.City }).
	Dimension("membership", func(o orderFixture) string { return o.Tier }).
	Measure("amount", func(o orderFixture) (float64, bool) { return o.Amount, o.AmountOK })

func TestDomainAdapterBind(t *testing.T) {
	view := fixtureAdapter.Bind([]orderFixture{
		{City: "Pune", Tier: "Gold", Amount: 500, AmountOK: true},
		{City: "Delhi", Tier: "Silver", Amount: 0, AmountOK: false},
	})

	if view.Len() != 2 {
		t.Fatalf("Len = %d, want 2", view.Len())
	}
	if got := view.Dimension(0, "city"); got != "Pune" {
		t.Errorf("Dimension(0, city) = %q, want Pune", got)
	}
	if v, ok := view.Measure(0, "amount"); !ok || v != 500 {
		t.Errorf("Measure(0, amount) = (%v, %v), want (500, true)", v, ok)
	}
	// Missing measure is reported as absent, not zero-valued.
	if _, ok := view.Measure(1, "amount"); ok {
		t.Error("Measure(1, amount) should be absent")
	}
	// Unregistered keys resolve to zero values.
	if got := view.Dimension(0, "unknown"); got != "" {
		t.Errorf("Dimension(0, unknown) = %q, want empty", got)
	}
}

func TestDomainAdapterKeyOrder(t *testing.T) {
	dims := fixtureAdapter.Bind(nil).DimensionKeys()
	want := []string{"city", "membership"}
	if len(dims) != len(want) {
		t.Fatalf("DimensionKeys = %v, want %v", dims, want)
	}
	for i := range want {
		if dims[i] != want[i] {
			t.Fatalf("DimensionKeys = %v, want %v", dims, want)
		}
	}
}

func TestApplyFilters(t *testing.T) {
	view := fixtureAdapter.Bind([]orderFixture{
		{City: "Pune", Tier: "Gold", Amount: 500, AmountOK: true},
		{City: "Pune", Tier: "Silver", Amount: 200, AmountOK: true},
		{City: "Delhi", Tier: "Gold", Amount: 300, AmountOK: true},
	})

	gold := ApplyFilters(view, ByDimension("membership", "Gold"))
	if gold.Len() != 2 {
		t.Fatalf("gold filter kept %d rows, want 2", gold.Len())
	}

	// AND across dimensions.
	goldPune := ApplyFilters(view, Filters{Dimensions: map[string][]string{
		"membership": {"Gold"},
		"city":       {"Pune"},
	}})
	if goldPune.Len() != 1 {
		t.Fatalf("gold+Pune filter kept %d rows, want 1", goldPune.Len())
	}
	if v, ok := goldPune.Measure(0, "amount"); !ok || v != 500 {
		t.Errorf("filtered Measure = (%v, %v), want (500, true)", v, ok)
	}
}

func TestApplyFiltersCaseInsensitive(t *testing.T) {
	view := fixtureAdapter.Bind([]orderFixture{
		{City: "Pune", Tier: "gold", Amount: 500, AmountOK: true},
	})
	if got := ApplyFilters(view, ByDimension("membership", "Gold")).Len(); got != 1 {
		t.Errorf("case-insensitive filter kept %d rows, want 1", got)
	}
}

func TestApplyFiltersEmptyIsIdentity(t *testing.T) {
	view := fixtureAdapter.Bind([]orderFixture{{City: "Pune"}})
	if got := ApplyFilters(view, Filters{}); got != view {
		t.Error("empty filter should return the original view")
	}
}

func TestSubViewDelegation(t *testing.T) {
	view := fixtureAdapter.Bind([]orderFixture{
		{City: "Pune", Tier: "Gold", Amount: 500, AmountOK: true},
		{City: "Delhi", Tier: "Gold", Amount: 300, AmountOK: true},
	})
	sub := ApplyFilters(view, ByDimension("city", "Delhi"))

	if sub.Len() != 1 {
		t.Fatalf("sub Len = %d, want 1", sub.Len())
	}
	if got := sub.Dimension(0, "city"); got != "Delhi" {
		t.Errorf("sub Dimension = %q, want Delhi", got)
	}
	// Out-of-range access is safe.
	if got := sub.Dimension(5, "city"); got != "" {
		t.Errorf("out-of-range Dimension = %q, want empty", got)
	}
	if _, ok := sub.Measure(-1, "amount"); ok {
		t.Error("out-of-range Measure should be absent")
	}
	if len(sub.DimensionKeys()) != len(view.DimensionKeys()) {
		t.Error("SubView should expose parent dimension keys")
	}
}
