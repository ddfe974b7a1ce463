package dataset

import "time"

// ============================================================================
// SOURCE ENTITIES — one struct per input source
// ============================================================================
// All entities are recreated fresh each run from the source files and are
// immutable after load. Numeric and date fields keep their raw source text
// alongside the coerced value: a cell that fails coercion stays in the
// persisted dataset verbatim but is invisible to sums and means.
// ============================================================================

// Order is one row of the order source.
type Order struct {
	OrderID      string
	UserID       string
	RestaurantID string

	RawAmount string  // source text, persisted as-is
	Amount    float64 // coerced value, meaningful only when AmountOK
	AmountOK  bool

	RawDate   string // source text, persisted as-is
	OrderDate time.Time
	DateOK    bool

	// Extra carries passthrough columns the order source defines beyond the
	// canonical five. Keyed by source header name.
	Extra map[string]string
}

// User is one record of the user source.
type User struct {
	UserID     string `json:"user_id"`
	Membership string `json:"membership"`
	City       string `json:"city"`
}

// Restaurant is one catalog tuple extracted from the restaurant source.
type Restaurant struct {
	RestaurantID int
	Name         string
	Cuisine      string
	Rating       float64
}

// Row is one denormalized record: Order ⋈ User ⋈ Restaurant.
// Unmatched foreign keys leave the parent-side fields at their zero values;
// the row itself is never dropped.
type Row struct {
	Order

	// User side
	Membership string
	City       string

	// Restaurant side. RestaurantName is always the restaurant-side name;
	// an order-side column with a colliding name is kept in Extra under a
	// "_order"-suffixed key.
	RestaurantName string
	Cuisine        string
	Rating         float64
	RatingOK       bool
}

// Quarter returns the calendar quarter (1–4) of the order date,
// or 0 when the date failed coercion.
func (r Row) Quarter() int {
	if !r.DateOK {
		return 0
	}
	return (int(r.OrderDate.Month())-1)/3 + 1
}

// Table is the denormalized dataset: the terminal artifact of the
// Loader/Joiner and the only thing the report stage reads.
type Table struct {
	Columns []string // persisted column order
	Rows    []Row
}

// Canonical column names of the persisted dataset.
const (
	ColOrderID        = "order_id"
	ColUserID         = "user_id"
	ColRestaurantID   = "restaurant_id"
	ColTotalAmount    = "total_amount"
	ColOrderDate      = "order_date"
	ColMembership     = "membership"
	ColCity           = "city"
	ColRestaurantName = "restaurant_name"
	ColCuisine        = "cuisine"
	ColRating         = "rating"
)

// OrderSideSuffix marks an order-source passthrough column whose name collides
// with a user- or restaurant-side column after the join. The parent side keeps
// the canonical name; the order side is renamed deterministically.
const OrderSideSuffix = "_order"
