package dataset

import "strconv"

// ============================================================================
// JOIN — Order ⋈ User ⋈ Restaurant (two left joins)
// ============================================================================
// Every order row survives: an unmatched user_id or restaurant_id leaves the
// parent-side fields empty instead of dropping the row. Parent keys are
// indexed first-wins, so a duplicated parent id cannot duplicate order rows.
// ============================================================================

// JoinStats summarizes the outcome of the join for logging and tests.
type JoinStats struct {
	Orders            int `json:"orders"`
	MatchedUsers      int `json:"matchedUsers"`
	MatchedRestaurant int `json:"matchedRestaurants"`
	OrphanUsers       int `json:"orphanUsers"`       // orders with no user match
	OrphanRestaurants int `json:"orphanRestaurants"` // orders with no restaurant match
}

// parent-side columns of the denormalized schema; an order-side passthrough
// column with one of these names is renamed with OrderSideSuffix.
var parentColumns = map[string]bool{
	ColMembership:     true,
	ColCity:           true,
	ColRestaurantName: true,
	ColCuisine:        true,
	ColRating:         true,
}

// Join left-joins orders to users on user_id, then to restaurants on
// restaurant_id. orderColumns is the order-source header, used to keep the
// persisted column order stable and to resolve name collisions.
func Join(orders []Order, orderColumns []string, users []User, restaurants []Restaurant) (*Table, JoinStats) {
	userByID := make(map[string]User, len(users))
	for _, u := range users {
		if _, exists := userByID[u.UserID]; !exists {
			userByID[u.UserID] = u
		}
	}

	restByID := make(map[string]Restaurant, len(restaurants))
	for _, r := range restaurants {
		key := strconv.Itoa(r.RestaurantID)
		if _, exists := restByID[key]; !exists {
			restByID[key] = r
		}
	}

	columns, renames := joinColumns(orderColumns)

	stats := JoinStats{Orders: len(orders)}
	rows := make([]Row, 0, len(orders))
	for _, o := range orders {
		row := Row{Order: o}
		row.Extra = renameExtras(o.Extra, renames)

		if u, ok := userByID[o.UserID]; ok {
			row.Membership = u.Membership
			row.City = u.City
			stats.MatchedUsers++
		} else {
			stats.OrphanUsers++
		}

		if r, ok := restByID[o.RestaurantID]; ok {
			row.RestaurantName = r.Name
			row.Cuisine = r.Cuisine
			row.Rating = r.Rating
			row.RatingOK = true
			stats.MatchedRestaurant++
		} else {
			stats.OrphanRestaurants++
		}

		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}, stats
}

// joinColumns produces the persisted column order: order columns first (in
// source order, collisions suffixed), then user columns, then restaurant
// columns. Returns the rename map applied to order-side passthrough columns.
func joinColumns(orderColumns []string) ([]string, map[string]string) {
	renames := make(map[string]string)
	columns := make([]string, 0, len(orderColumns)+5)
	for _, c := range orderColumns {
		if !orderCanonical[c] && parentColumns[c] {
			renamed := c + OrderSideSuffix
			renames[c] = renamed
			columns = append(columns, renamed)
			continue
		}
		columns = append(columns, c)
	}
	columns = append(columns, ColMembership, ColCity, ColRestaurantName, ColCuisine, ColRating)
	return columns, renames
}

func renameExtras(extra map[string]string, renames map[string]string) map[string]string {
	if extra == nil || len(renames) == 0 {
		return extra
	}
	out := make(map[string]string, len(extra))
	for k, v := range extra {
		if renamed, ok := renames[k]; ok {
			out[renamed] = v
		} else {
			out[k] = v
		}
	}
	return out
}
