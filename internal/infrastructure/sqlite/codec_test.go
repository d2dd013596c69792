package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIngredientsCodec(t *testing.T) {
	cases := [][]string{
		{"water", "glycerin"},
		{"water"},
		{},
	}
	for _, in := range cases {
		assert.Equal(t, in, decodeIngredients(encodeIngredients(in)))
	}
}

func TestIngredientsCodec_EmptyColumnIsEmptyList(t *testing.T) {
	got := decodeIngredients("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTimeRoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 34, 56, 0, time.UTC)
	assert.Equal(t, now, parseTime(formatTime(now)))
}

func TestParseTime_BadValueIsZero(t *testing.T) {
	assert.True(t, parseTime("not a time").IsZero())
}
