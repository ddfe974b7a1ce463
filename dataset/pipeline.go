package dataset

import (
	"fmt"

	"go.uber.org/zap"
)

// ============================================================================
// PIPELINE — Loader/Joiner orchestration
// ============================================================================
// One synchronous pass: validate inputs, load each source fully, join, and
// persist the denormalized table. Each input file is consumed and closed
// before the next stage begins; the whole dataset is held in memory — a
// deliberate scaling limit for this batch-sized workload, not an oversight.
// ============================================================================

// Build runs the full Loader/Joiner and persists the result to outPath.
// If any required source is absent the run aborts before producing output.
func Build(loc Locator, outPath string, log *zap.Logger) (*Table, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if err := loc.Validate(); err != nil {
		return nil, err
	}

	orders, orderColumns, err := LoadOrders(loc.Orders, log)
	if err != nil {
		return nil, err
	}

	users, err := LoadUsers(loc.Users, log)
	if err != nil {
		return nil, err
	}

	restaurants, _, err := LoadRestaurants(loc.Catalog, log)
	if err != nil {
		return nil, err
	}

	table, stats := Join(orders, orderColumns, users, restaurants)
	if len(table.Rows) != len(orders) {
		// left-join invariant: output rows == input order rows
		return nil, fmt.Errorf("join produced %d rows from %d orders", len(table.Rows), len(orders))
	}

	log.Info("joined sources",
		zap.Int("rows", stats.Orders),
		zap.Int("matched_users", stats.MatchedUsers),
		zap.Int("matched_restaurants", stats.MatchedRestaurant),
		zap.Int("orphan_users", stats.OrphanUsers),
		zap.Int("orphan_restaurants", stats.OrphanRestaurants))

	if err := WriteTable(table, outPath); err != nil {
		return nil, err
	}
	log.Info("wrote denormalized dataset", zap.String("path", outPath), zap.Int("rows", len(table.Rows)))

	return table, nil
}
