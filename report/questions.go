package report

import (
	"fmt"
	"math"

	"github.com/feastline/feastline/dataset"
	"github.com/feastline/feastline/engine"
)

// ============================================================================
// QUESTIONS — ten independent, pure view→answer computations
// ============================================================================
// Each question validates the columns it needs and fails on its own: a broken
// question yields a diagnostic line while the rest of the report still runs.
// Leader selection is deterministic — ties resolve to the lexicographically
// smallest group key (engine.MaxGroup/MinGroup).
// ============================================================================

// GoldRevenueCity reports the city with the highest total spend among
// gold-tier members.
func GoldRevenueCity(view engine.RecordView, cfg *config) (string, error) {
	if err := requireKeys(view, []string{dataset.ColMembership, dataset.ColCity}, []string{cfg.Measure}); err != nil {
		return "", err
	}

	gold := engine.ApplyFilters(view, engine.ByDimension(dataset.ColMembership, cfg.GoldTier))
	groups := engine.GroupAndAggregate(gold, []string{dataset.ColCity}, cfg.Measure, "sum", "", 0)
	best, ok := engine.MaxGroup(groups)
	if !ok {
		return "", fmt.Errorf("no %s-tier orders with a known city", cfg.GoldTier)
	}
	return fmt.Sprintf("%s (total %s)", best.Label, engine.FormatAmount(best.Value)), nil
}

// TopAOVCuisine reports the cuisine with the highest mean order value.
func TopAOVCuisine(view engine.RecordView, cfg *config) (string, error) {
	if err := requireKeys(view, []string{dataset.ColCuisine}, []string{cfg.Measure}); err != nil {
		return "", err
	}

	groups := engine.GroupAndAggregate(view, []string{dataset.ColCuisine}, cfg.Measure, "avg", "", 0)
	best, ok := engine.MaxGroup(withMeasuredRows(groups, cfg.Measure))
	if !ok {
		return "", fmt.Errorf("no orders with a known cuisine and a valid amount")
	}
	return fmt.Sprintf("%s (mean %s)", best.Label, engine.FormatAmount(best.Value)), nil
}

// BigSpenderCount counts distinct users whose total spend is strictly above
// the configured threshold.
func BigSpenderCount(view engine.RecordView, cfg *config) (string, error) {
	if err := requireKeys(view, []string{dataset.ColUserID}, []string{cfg.Measure}); err != nil {
		return "", err
	}

	groups := engine.GroupAndAggregate(view, []string{dataset.ColUserID}, cfg.Measure, "sum", "", 0)
	count := 0
	for _, g := range groups {
		if g.Key != "" && g.Value > cfg.SpendThreshold {
			count++
		}
	}
	return fmt.Sprintf("%s users", engine.FormatInt(count)), nil
}

// TopRatingBandRevenue reports the rating band with the highest total spend.
// The residual band competes like any other.
func TopRatingBandRevenue(view engine.RecordView, cfg *config) (string, error) {
	if err := requireKeys(view, []string{DimRatingBand}, []string{cfg.Measure}); err != nil {
		return "", err
	}

	groups := engine.GroupAndAggregate(view, []string{DimRatingBand}, cfg.Measure, "sum", "", 0)
	best, ok := engine.MaxGroup(groups)
	if !ok {
		return "", fmt.Errorf("no rated orders")
	}
	return fmt.Sprintf("%s (total %s)", best.Label, engine.FormatAmount(best.Value)), nil
}

// TopGoldAOVCity reports the city with the highest mean order value among
// gold-tier members.
func TopGoldAOVCity(view engine.RecordView, cfg *config) (string, error) {
	if err := requireKeys(view, []string{dataset.ColMembership, dataset.ColCity}, []string{cfg.Measure}); err != nil {
		return "", err
	}

	gold := engine.ApplyFilters(view, engine.ByDimension(dataset.ColMembership, cfg.GoldTier))
	groups := engine.GroupAndAggregate(gold, []string{dataset.ColCity}, cfg.Measure, "avg", "", 0)
	best, ok := engine.MaxGroup(withMeasuredRows(groups, cfg.Measure))
	if !ok {
		return "", fmt.Errorf("no %s-tier orders with a known city and a valid amount", cfg.GoldTier)
	}
	return fmt.Sprintf("%s (mean %s)", best.Label, engine.FormatAmount(best.Value)), nil
}

// RarestCuisine reports the cuisine served by the fewest distinct restaurants.
func RarestCuisine(view engine.RecordView, _ *config) (string, error) {
	if err := requireKeys(view, []string{dataset.ColCuisine, dataset.ColRestaurantID}, nil); err != nil {
		return "", err
	}

	groups := engine.GroupBy(view, dataset.ColCuisine)
	for i := range groups {
		groups[i].Value = float64(engine.CountDistinct(groups[i].View, dataset.ColRestaurantID))
	}
	best, ok := engine.MinGroup(groups)
	if !ok {
		return "", fmt.Errorf("no orders with a known cuisine")
	}
	return fmt.Sprintf("%s (%d restaurants)", best.Label, int(best.Value)), nil
}

// GoldMemberShare reports gold-tier rows as a percentage of all rows,
// rounded to the nearest integer. Rows with an unparsable amount still count
// on both sides of the ratio.
func GoldMemberShare(view engine.RecordView, cfg *config) (string, error) {
	if err := requireKeys(view, []string{dataset.ColMembership}, nil); err != nil {
		return "", err
	}
	total := view.Len()
	if total == 0 {
		return "", fmt.Errorf("dataset is empty")
	}

	gold := engine.ApplyFilters(view, engine.ByDimension(dataset.ColMembership, cfg.GoldTier)).Len()
	pct := int(math.Round(float64(gold) / float64(total) * 100))
	return fmt.Sprintf("%d%%", pct), nil
}

// TopBoutiqueRestaurant reports, among restaurants with fewer orders than the
// boutique cutoff, the one with the highest mean order value. Grouping uses
// the restaurant-side display name — never an order-side synonym column.
func TopBoutiqueRestaurant(view engine.RecordView, cfg *config) (string, error) {
	if err := requireKeys(view, []string{dataset.ColRestaurantName}, []string{cfg.Measure}); err != nil {
		return "", err
	}

	groups := engine.GroupAndAggregate(view, []string{dataset.ColRestaurantName}, cfg.Measure, "avg", "", 0)
	boutique := make([]engine.Group, 0, len(groups))
	for _, g := range withMeasuredRows(groups, cfg.Measure) {
		if g.Count < cfg.BoutiqueCutoff {
			boutique = append(boutique, g)
		}
	}
	best, ok := engine.MaxGroup(boutique)
	if !ok {
		return "", fmt.Errorf("no restaurant has fewer than %d orders", cfg.BoutiqueCutoff)
	}
	return fmt.Sprintf("%s (mean %s over %d orders)", best.Label, engine.FormatAmount(best.Value), best.Count), nil
}

// TopMembershipCuisine reports the (membership, cuisine) pair with the
// highest total spend.
func TopMembershipCuisine(view engine.RecordView, cfg *config) (string, error) {
	if err := requireKeys(view, []string{dataset.ColMembership, dataset.ColCuisine}, []string{cfg.Measure}); err != nil {
		return "", err
	}

	groups := engine.GroupAndAggregate(view, []string{dataset.ColMembership, dataset.ColCuisine}, cfg.Measure, "sum", "", 0)
	pairs := make([]engine.Group, 0, len(groups))
	for _, g := range groups {
		if g.Key == "" {
			continue
		}
		for _, sg := range g.SubGroups {
			if sg.Key == "" {
				continue
			}
			pairs = append(pairs, engine.Group{
				Key:   g.Key + "|" + sg.Key,
				Label: g.Label + " / " + sg.Label,
				Value: sg.Value,
				Count: sg.Count,
			})
		}
	}
	best, ok := engine.MaxGroup(pairs)
	if !ok {
		return "", fmt.Errorf("no orders with both membership and cuisine known")
	}
	return fmt.Sprintf("%s (total %s)", best.Label, engine.FormatAmount(best.Value)), nil
}

// TopQuarter reports the calendar quarter with the highest total spend.
// Rows whose order date failed coercion have no quarter and are excluded.
func TopQuarter(view engine.RecordView, cfg *config) (string, error) {
	if err := requireKeys(view, []string{DimQuarter}, []string{cfg.Measure}); err != nil {
		return "", err
	}

	groups := engine.GroupAndAggregate(view, []string{DimQuarter}, cfg.Measure, "sum", "", 0)
	best, ok := engine.MaxGroup(groups)
	if !ok {
		return "", fmt.Errorf("no orders with a parseable date")
	}
	return fmt.Sprintf("%s (total %s)", best.Label, engine.FormatAmount(best.Value)), nil
}

// ============================================================================
// HELPERS
// ============================================================================

// withMeasuredRows drops groups in which no row carries a valid measure, so a
// group of entirely-unparsable amounts cannot win a mean-based leaderboard.
func withMeasuredRows(groups []engine.Group, measure string) []engine.Group {
	out := make([]engine.Group, 0, len(groups))
	for _, g := range groups {
		if g.View != nil && engine.CountMeasure(g.View, measure) > 0 {
			out = append(out, g)
		}
	}
	return out
}

// requireKeys verifies the view exposes every dimension and measure a
// question needs, so one missing column degrades one answer, not the run.
func requireKeys(view engine.RecordView, dims []string, measures []string) error {
	have := make(map[string]bool)
	for _, k := range view.DimensionKeys() {
		have[k] = true
	}
	for _, k := range dims {
		if !have[k] {
			return fmt.Errorf("dimension %q not present in dataset", k)
		}
	}

	haveM := make(map[string]bool)
	for _, k := range view.MeasureKeys() {
		haveM[k] = true
	}
	for _, k := range measures {
		if !haveM[k] {
			return fmt.Errorf("measure %q not present in dataset", k)
		}
	}
	return nil
}
