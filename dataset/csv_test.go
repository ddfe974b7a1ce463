package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecordsStripsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("order_id,total_amount\n1,500\n")...)

	headers, rows, skipped, err := readRecords(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"order_id", "total_amount"}, headers)
	assert.Len(t, rows, 1)
	assert.Zero(t, skipped)
	assert.Equal(t, "1", rows[0]["order_id"])
}

func TestReadRecordsLatin1Fallback(t *testing.T) {
	// "Café" with a raw Latin-1 é (0xE9) — not valid UTF-8.
	data := []byte("name\nCaf\xe9\n")

	_, rows, _, err := readRecords(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Café", rows[0]["name"])
}

func TestReadRecordsPadsAndTruncatesRaggedRows(t *testing.T) {
	data := []byte("a,b,c\n1,2\n4,5,6,7\n")

	headers, rows, skipped, err := readRecords(data)
	require.NoError(t, err)
	require.Len(t, headers, 3)
	require.Len(t, rows, 2)
	assert.Zero(t, skipped)

	assert.Equal(t, "", rows[0]["c"], "short row should be padded")
	assert.Equal(t, "6", rows[1]["c"], "long row should be truncated")
}

func TestReadRecordsEmptyFile(t *testing.T) {
	_, _, _, err := readRecords(nil)
	assert.ErrorContains(t, err, "no header row")
}
