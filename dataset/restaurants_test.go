package dataset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadRestaurants(t *testing.T) {
	path := writeFile(t, t.TempDir(), "restaurants.sql",
		"-- seed data for the restaurant catalog\n"+
			"INSERT INTO restaurants VALUES (10, 'Ruchi Foods', 'Chinese', 4.2);\n"+
			"INSERT INTO restaurants VALUES (11, 'Grand Cafe', 'Punjabi', 4.8);\n"+
			"\n"+
			"INSERT INTO restaurants VALUES (12, 'Broken Row', 'Thai');\n"+
			"COMMIT;\n")

	restaurants, skipped, err := LoadRestaurants(path, zap.NewNop())
	require.NoError(t, err)

	want := []Restaurant{
		{RestaurantID: 10, Name: "Ruchi Foods", Cuisine: "Chinese", Rating: 4.2},
		{RestaurantID: 11, Name: "Grand Cafe", Cuisine: "Punjabi", Rating: 4.8},
	}
	if diff := cmp.Diff(want, restaurants); diff != "" {
		t.Errorf("restaurants mismatch (-want +got):\n%s", diff)
	}

	// Comment, partial tuple, and COMMIT are three skipped lines; the blank
	// line is not counted.
	assert.Equal(t, 3, skipped)
}

func TestLoadRestaurantsNamesMayContainCommas(t *testing.T) {
	path := writeFile(t, t.TempDir(), "restaurants.sql",
		"INSERT INTO restaurants VALUES (7, 'Soup, Salad & Co', 'Continental', 3.5);\n")

	restaurants, skipped, err := LoadRestaurants(path, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Zero(t, skipped)
	assert.Equal(t, "Soup, Salad & Co", restaurants[0].Name)
}

func TestLoadRestaurantsMissingFile(t *testing.T) {
	_, _, err := LoadRestaurants(t.TempDir()+"/absent.sql", zap.NewNop())
	assert.Error(t, err)
}
