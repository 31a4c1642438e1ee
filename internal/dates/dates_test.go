package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"01-06-24", "01 June 2024"},
		{"1-6-24", "01 June 2024"},
		{"15-12-25", "15 December 2025"},
		{"05-01-24", "05 January 2024"},
	}
	for _, tc := range cases {
		got, err := ParseQuery(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestParseQueryInvalidMonth(t *testing.T) {
	// Aralık dışı ay hata değildir; "Invalid" ay adı hiçbir kayıtla eşleşmez
	got, err := ParseQuery("01-13-24")
	require.NoError(t, err)
	assert.Equal(t, "01 Invalid 2024", got)

	got, err = ParseQuery("01-abc-24")
	require.NoError(t, err)
	assert.Equal(t, "01 Invalid 2024", got)

	got, err = ParseQuery("01-00-24")
	require.NoError(t, err)
	assert.Equal(t, "01 Invalid 2024", got)
}

func TestParseQueryBadShape(t *testing.T) {
	_, err := ParseQuery("01-06")
	assert.Error(t, err)

	_, err = ParseQuery("2024-06-01-05")
	assert.Error(t, err)
}

func TestFormatDay(t *testing.T) {
	// UTC 23:00 + 6 saat = ertesi gün
	late := time.Date(2024, time.May, 31, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "01 June 2024", FormatDay(late))

	// Gün içi bir an aynı günde kalır
	noon := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "01 June 2024", FormatDay(noon))
}

func TestStoredAndQueryFormsRoundTrip(t *testing.T) {
	// Kayıt biçimi ile sorgu çevirisi aynı metni üretmeli ki eşitlik
	// filtresi tutsun
	day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	stored := FormatDay(day)

	parsed, err := ParseQuery("01-06-24")
	require.NoError(t, err)
	assert.Equal(t, stored, parsed)
}
