package dataset

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ============================================================================
// RESTAURANT SOURCE — catalog tuples embedded in insert-statement text
// ============================================================================
// The catalog is free-form SQL-ish text. A restaurant is extracted only from
// a line carrying a full 4-tuple (<int id>, '<name>', '<cuisine>', <decimal
// rating>). Non-matching lines (comments, headers, partial statements) are
// skipped — a lossy but accepted behavior. The skip total is counted and
// reported instead of discarded silently.
// ============================================================================

// catalogTuple matches one fixed-arity restaurant tuple per line.
var catalogTuple = regexp.MustCompile(`\((\d+),\s*'([^']*)',\s*'([^']*)',\s*([\d.]+)\)`)

// LoadRestaurants scans the catalog line by line and extracts every full
// tuple match. Returns the restaurants and the count of non-empty lines that
// carried no tuple.
func LoadRestaurants(path string, log *zap.Logger) ([]Restaurant, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read restaurant catalog: %w", err)
	}
	defer f.Close()

	var restaurants []Restaurant
	skipped := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		m := catalogTuple.FindStringSubmatch(line)
		if m == nil {
			if strings.TrimSpace(line) != "" {
				skipped++
			}
			continue
		}

		id, err := strconv.Atoi(m[1])
		if err != nil {
			skipped++
			continue
		}
		rating, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			skipped++
			continue
		}

		restaurants = append(restaurants, Restaurant{
			RestaurantID: id,
			Name:         m[2],
			Cuisine:      m[3],
			Rating:       rating,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("restaurant catalog %s: %w", path, err)
	}

	if skipped > 0 {
		log.Warn("catalog lines without a full tuple were skipped",
			zap.String("path", path),
			zap.Int("skipped", skipped))
	}
	log.Info("loaded restaurant catalog",
		zap.String("path", path),
		zap.Int("restaurants", len(restaurants)),
		zap.Int("lines_skipped", skipped))

	return restaurants, skipped, nil
}
