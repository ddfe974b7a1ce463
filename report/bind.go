package report

import (
	"fmt"

	"github.com/feastline/feastline/dataset"
	"github.com/feastline/feastline/engine"
)

// ============================================================================
// BINDING — expose dataset.Row to the engine (zero-copy)
// ============================================================================
// The adapter is declared once; derived dimensions (calendar quarter, rating
// band) are computed per read so the denormalized table itself stays raw.
// ============================================================================

// Derived dimension keys, available only through BindRows.
const (
	DimQuarter    = "quarter"
	DimRatingBand = "rating_band"
)

var rowAdapter = engine.NewDomainAdapter[dataset.Row]().
	Dimension(dataset.ColOrderID, func(r dataset.Row) string { return r.OrderID }).
	Dimension(dataset.ColUserID, func(r dataset.Row) string { return r.UserID }).
	Dimension(dataset.ColRestaurantID, func(r dataset.Row) string { return r.RestaurantID }).
	Dimension(dataset.ColMembership, func(r dataset.Row) string { return r.Membership }).
	Dimension(dataset.ColCity, func(r dataset.Row) string { return r.City }).
	Dimension(dataset.ColRestaurantName, func(r dataset.Row) string { return r.RestaurantName }).
	Dimension(dataset.ColCuisine, func(r dataset.Row) string { return r.Cuisine }).
	Dimension(DimQuarter, func(r dataset.Row) string {
		if q := r.Quarter(); q > 0 {
			return fmt.Sprintf("Q%d", q)
		}
		return ""
	}).
	Dimension(DimRatingBand, func(r dataset.Row) string { return bandForRating(r.Rating, r.RatingOK) }).
	Measure(dataset.ColTotalAmount, func(r dataset.Row) (float64, bool) { return r.Amount, r.AmountOK }).
	Measure(dataset.ColRating, func(r dataset.Row) (float64, bool) { return r.Rating, r.RatingOK })

// BindRows wraps denormalized rows as an engine view.
func BindRows(rows []dataset.Row) engine.RecordView {
	return rowAdapter.Bind(rows)
}

// ============================================================================
// RATING BANDS
// ============================================================================
// Four fixed bands tested in ascending order, first match wins; the lower
// bound of the first band is inclusive, every upper bound is inclusive.
// Anything below 3.0, above 5.0, or missing falls to the residual band, so
// every rating maps to exactly one band.
// ============================================================================

// ResidualBand collects ratings outside the four named bands.
const ResidualBand = "unrated"

var ratingBands = []struct {
	upper float64
	label string
}{
	{3.5, "3.0-3.5"},
	{4.0, "3.6-4.0"},
	{4.5, "4.1-4.5"},
	{5.0, "4.6-5.0"},
}

func bandForRating(rating float64, ok bool) string {
	if !ok || rating < 3.0 || rating > 5.0 {
		return ResidualBand
	}
	for _, b := range ratingBands {
		if rating <= b.upper {
			return b.label
		}
	}
	return ResidualBand
}
