package report

import (
	"testing"
	"time"

	"github.com/feastline/feastline/dataset"
	"github.com/stretchr/testify/assert"
)

func TestBandForRating(t *testing.T) {
	tests := []struct {
		rating float64
		ok     bool
		want   string
	}{
		{3.0, true, "3.0-3.5"},
		{3.5, true, "3.0-3.5"}, // upper bound belongs to the lower band
		{3.6, true, "3.6-4.0"},
		{4.0, true, "3.6-4.0"},
		{4.2, true, "4.1-4.5"},
		{4.5, true, "4.1-4.5"},
		{4.6, true, "4.6-5.0"},
		{5.0, true, "4.6-5.0"},
		{2.9, true, ResidualBand},
		{5.1, true, ResidualBand},
		{0, false, ResidualBand},
	}
	for _, tt := range tests {
		got := bandForRating(tt.rating, tt.ok)
		assert.Equal(t, tt.want, got, "bandForRating(%v, %v)", tt.rating, tt.ok)
	}
}

func TestBindRowsDerivedDimensions(t *testing.T) {
	rows := []dataset.Row{
		{
			Order: dataset.Order{
				OrderID:   "1",
				RawDate:   "15-03-2023",
				OrderDate: time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC),
				DateOK:    true,
			},
			Rating:   4.2,
			RatingOK: true,
		},
	}

	view := BindRows(rows)
	assert.Equal(t, "Q1", view.Dimension(0, DimQuarter))
	assert.Equal(t, "4.1-4.5", view.Dimension(0, DimRatingBand))

	// Unparsed dates have no quarter.
	empty := BindRows([]dataset.Row{{}})
	assert.Equal(t, "", empty.Dimension(0, DimQuarter))
	assert.Equal(t, ResidualBand, empty.Dimension(0, DimRatingBand))
}
