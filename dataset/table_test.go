package dataset

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRoundTrip(t *testing.T) {
	orders := []Order{
		{OrderID: "1", UserID: "1", RestaurantID: "10", RawAmount: "500", RawDate: "15-03-2023",
			Extra: map[string]string{"delivery_slot": "lunch"}},
		{OrderID: "2", UserID: "2", RestaurantID: "777", RawAmount: "abc", RawDate: "garbled",
			Extra: map[string]string{"delivery_slot": ""}},
	}
	for i := range orders {
		orders[i].Amount, orders[i].AmountOK = coerceAmount(orders[i].RawAmount)
		orders[i].OrderDate, orders[i].DateOK = parseDayFirst(orders[i].RawDate)
	}
	cols := []string{ColOrderID, ColUserID, ColRestaurantID, ColTotalAmount, ColOrderDate, "delivery_slot"}

	table, _ := Join(orders, cols, sampleUsers(), sampleRestaurants())

	path := filepath.Join(t.TempDir(), OutputFile)
	require.NoError(t, WriteTable(table, path))

	got, err := ReadTable(path)
	require.NoError(t, err)

	if diff := cmp.Diff(table, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-wrote +reloaded):\n%s", diff)
	}

	// Raw text survives verbatim, so the malformed cells stay malformed.
	assert.Equal(t, "abc", got.Rows[1].RawAmount)
	assert.False(t, got.Rows[1].AmountOK)
	assert.False(t, got.Rows[1].DateOK)
	// Unmatched restaurant persists an empty rating, reloaded as missing.
	assert.False(t, got.Rows[1].RatingOK)
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), OutputFile))
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestCoerceRating(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"4.2", 4.2, true},
		{"", 0, false},
		{"n/a", 0, false},
	}
	for _, tt := range tests {
		got, ok := coerceRating(tt.in)
		assert.Equal(t, tt.wantOK, ok, "coerceRating(%q)", tt.in)
		assert.Equal(t, tt.want, got, "coerceRating(%q)", tt.in)
	}
}
