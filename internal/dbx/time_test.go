package dbx

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime_FixedWidthUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	a := FormatTime(time.Date(2024, 1, 1, 3, 0, 0, 0, loc))
	b := FormatTime(time.Date(2024, 1, 1, 0, 0, 0, 5, time.UTC))

	assert.Equal(t, "2024-01-01T00:00:00.000000000Z", a)
	assert.Equal(t, "2024-01-01T00:00:00.000000005Z", b)
	assert.Len(t, a, len(b))
	assert.Less(t, a, b)
}

func TestNullTime_RoundTrip(t *testing.T) {
	ns := NullTime(nil)
	assert.False(t, ns.Valid)
	got, err := ParseNullTime(ns)
	require.NoError(t, err)
	assert.Nil(t, got)

	now := time.Date(2024, 6, 1, 12, 30, 0, 123, time.UTC)
	got, err = ParseNullTime(NullTime(&now))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, now.Equal(*got))

	_, err = ParseNullTime(sql.NullString{String: "garbage", Valid: true})
	assert.Error(t, err)
}
