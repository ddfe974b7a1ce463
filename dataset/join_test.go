package dataset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUsers() []User {
	return []User{
		{UserID: "1", Membership: "Gold", City: "Pune"},
		{UserID: "2", Membership: "Silver", City: "Mumbai"},
	}
}

func sampleRestaurants() []Restaurant {
	return []Restaurant{
		{RestaurantID: 10, Name: "Ruchi Foods", Cuisine: "Chinese", Rating: 4.2},
	}
}

func TestJoinPreservesEveryOrder(t *testing.T) {
	orders := []Order{
		{OrderID: "1", UserID: "1", RestaurantID: "10", RawAmount: "500", Amount: 500, AmountOK: true},
		{OrderID: "2", UserID: "999", RestaurantID: "10", RawAmount: "600", Amount: 600, AmountOK: true},
		{OrderID: "3", UserID: "2", RestaurantID: "777", RawAmount: "300", Amount: 300, AmountOK: true},
	}
	cols := []string{ColOrderID, ColUserID, ColRestaurantID, ColTotalAmount, ColOrderDate}

	table, stats := Join(orders, cols, sampleUsers(), sampleRestaurants())

	require.Len(t, table.Rows, len(orders), "left join must not drop or duplicate order rows")
	assert.Equal(t, JoinStats{
		Orders:            3,
		MatchedUsers:      2,
		MatchedRestaurant: 2,
		OrphanUsers:       1,
		OrphanRestaurants: 1,
	}, stats)

	// Matched row carries both parent sides.
	assert.Equal(t, "Gold", table.Rows[0].Membership)
	assert.Equal(t, "Chinese", table.Rows[0].Cuisine)
	assert.True(t, table.Rows[0].RatingOK)

	// Unknown user leaves the user side empty, restaurant side intact.
	assert.Empty(t, table.Rows[1].Membership)
	assert.Empty(t, table.Rows[1].City)
	assert.Equal(t, "Ruchi Foods", table.Rows[1].RestaurantName)

	// Unknown restaurant leaves the restaurant side empty and rating missing.
	assert.Empty(t, table.Rows[2].RestaurantName)
	assert.False(t, table.Rows[2].RatingOK)
}

func TestJoinRenamesCollidingOrderColumns(t *testing.T) {
	orders := []Order{{
		OrderID: "1", UserID: "1", RestaurantID: "10",
		Extra: map[string]string{"restaurant_name": "stale order-side copy"},
	}}
	cols := []string{ColOrderID, ColUserID, ColRestaurantID, "restaurant_name"}

	table, _ := Join(orders, cols, sampleUsers(), sampleRestaurants())

	wantColumns := []string{
		ColOrderID, ColUserID, ColRestaurantID, "restaurant_name_order",
		ColMembership, ColCity, ColRestaurantName, ColCuisine, ColRating,
	}
	if diff := cmp.Diff(wantColumns, table.Columns); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}

	// The catalog name wins the canonical column; the order-side copy moves.
	assert.Equal(t, "Ruchi Foods", table.Rows[0].RestaurantName)
	assert.Equal(t, "stale order-side copy", table.Rows[0].Extra["restaurant_name_order"])
}

func TestJoinDuplicateParentIDsFirstWins(t *testing.T) {
	users := append(sampleUsers(), User{UserID: "1", Membership: "Bronze", City: "Delhi"})
	orders := []Order{{OrderID: "1", UserID: "1", RestaurantID: "10"}}
	cols := []string{ColOrderID, ColUserID, ColRestaurantID}

	table, _ := Join(orders, cols, users, sampleRestaurants())

	require.Len(t, table.Rows, 1, "a duplicated parent id must not fan out order rows")
	assert.Equal(t, "Gold", table.Rows[0].Membership)
}
