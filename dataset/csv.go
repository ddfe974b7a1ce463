package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ============================================================================
// TOLERANT CSV READER
// ============================================================================
// Real-world exports arrive with BOMs, legacy encodings, lazy quoting, and
// ragged rows. The reader normalizes to UTF-8, pads/truncates rows to the
// header width, and skips rows it cannot parse instead of failing the file.
// ============================================================================

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// decodeToUTF8 strips a UTF-8 BOM and falls back to Latin-1 decoding when the
// bytes are not valid UTF-8.
func decodeToUTF8(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, bomUTF8)
	if utf8.Valid(data) {
		return data, nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("latin-1 fallback decode failed: %w", err)
	}
	return decoded, nil
}

// readRecords parses CSV bytes into trimmed headers plus one map per row.
// Ragged rows are padded or truncated to the header width; unparsable rows
// are counted in skipped and dropped.
func readRecords(data []byte) (headers []string, rows []map[string]string, skipped int, err error) {
	decoded, err := decodeToUTF8(data)
	if err != nil {
		return nil, nil, 0, err
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err = reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, 0, fmt.Errorf("empty file: no header row found")
		}
		return nil, nil, 0, fmt.Errorf("failed to read header row: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	width := len(headers)
	for {
		row, rerr := reader.Read()
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			skipped++
			continue
		}

		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			row = padded
		} else if len(row) > width {
			row = row[:width]
		}

		record := make(map[string]string, width)
		for i, h := range headers {
			record[h] = strings.TrimSpace(row[i])
		}
		rows = append(rows, record)
	}

	return headers, rows, skipped, nil
}
