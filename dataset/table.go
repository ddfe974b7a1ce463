package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// ============================================================================
// TABLE PERSISTENCE — the single flat output file
// ============================================================================
// The denormalized table is written once, before any aggregation, so the
// report stage can be re-run later without repeating the join. Coerced cells
// are persisted as their raw source text: an unparsable amount stays
// unparsable after a reload, which keeps re-runs idempotent.
// ============================================================================

// WriteTable persists the table as delimited text at path.
func WriteTable(t *Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write dataset header: %w", err)
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = cellValue(row, col)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write dataset row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush dataset file: %w", err)
	}
	return nil
}

func cellValue(row Row, col string) string {
	switch col {
	case ColOrderID:
		return row.OrderID
	case ColUserID:
		return row.UserID
	case ColRestaurantID:
		return row.RestaurantID
	case ColTotalAmount:
		return row.RawAmount
	case ColOrderDate:
		return row.RawDate
	case ColMembership:
		return row.Membership
	case ColCity:
		return row.City
	case ColRestaurantName:
		return row.RestaurantName
	case ColCuisine:
		return row.Cuisine
	case ColRating:
		if !row.RatingOK {
			return ""
		}
		return strconv.FormatFloat(row.Rating, 'f', -1, 64)
	default:
		return row.Extra[col]
	}
}

// ReadTable reloads a previously persisted table. Coercion runs again on the
// raw cells, so missing-value semantics match the original build exactly.
func ReadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
	}

	headers, records, _, err := readRecords(data)
	if err != nil {
		return nil, fmt.Errorf("dataset file %s: %w", path, err)
	}

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		row := Row{
			Order: Order{
				OrderID:      rec[ColOrderID],
				UserID:       rec[ColUserID],
				RestaurantID: rec[ColRestaurantID],
				RawAmount:    rec[ColTotalAmount],
				RawDate:      rec[ColOrderDate],
			},
			Membership:     rec[ColMembership],
			City:           rec[ColCity],
			RestaurantName: rec[ColRestaurantName],
			Cuisine:        rec[ColCuisine],
		}
		row.Amount, row.AmountOK = coerceAmount(row.RawAmount)
		row.OrderDate, row.DateOK = parseDayFirst(row.RawDate)
		row.Rating, row.RatingOK = coerceRating(rec[ColRating])

		for _, h := range headers {
			if orderCanonical[h] || parentColumns[h] {
				continue
			}
			if row.Extra == nil {
				row.Extra = make(map[string]string)
			}
			row.Extra[h] = rec[h]
		}
		rows = append(rows, row)
	}

	return &Table{Columns: headers, Rows: rows}, nil
}

func coerceRating(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
