package dataset

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ============================================================================
// ORDER SOURCE — delimited tabular file
// ============================================================================

// Canonical order columns. Anything else in the source header is carried
// through to the denormalized dataset untouched.
var orderCanonical = map[string]bool{
	ColOrderID:      true,
	ColUserID:       true,
	ColRestaurantID: true,
	ColTotalAmount:  true,
	ColOrderDate:    true,
}

// Order dates are written day-first; ISO dates appear in some exports.
var orderDateLayouts = []string{
	"2-1-2006",
	"2/1/2006",
	"2-1-2006 15:04:05",
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// LoadOrders reads the order source. total_amount and order_date are coerced;
// a cell that fails coercion is kept as raw text and marked missing rather
// than treated as an error or as zero.
func LoadOrders(path string, log *zap.Logger) ([]Order, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read order source: %w", err)
	}

	headers, rows, skipped, err := readRecords(data)
	if err != nil {
		return nil, nil, fmt.Errorf("order source %s: %w", path, err)
	}

	orders := make([]Order, 0, len(rows))
	for _, rec := range rows {
		o := Order{
			OrderID:      rec[ColOrderID],
			UserID:       rec[ColUserID],
			RestaurantID: rec[ColRestaurantID],
			RawAmount:    rec[ColTotalAmount],
			RawDate:      rec[ColOrderDate],
		}
		o.Amount, o.AmountOK = coerceAmount(o.RawAmount)
		o.OrderDate, o.DateOK = parseDayFirst(o.RawDate)

		for _, h := range headers {
			if !orderCanonical[h] {
				if o.Extra == nil {
					o.Extra = make(map[string]string)
				}
				o.Extra[h] = rec[h]
			}
		}
		orders = append(orders, o)
	}

	log.Info("loaded order source",
		zap.String("path", path),
		zap.Int("orders", len(orders)),
		zap.Int("rows_skipped", skipped))

	return orders, headers, nil
}

// coerceAmount parses a numeric amount, reporting ok=false on malformed input.
func coerceAmount(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseDayFirst parses a date string trying day-first layouts before ISO.
func parseDayFirst(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
