package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("bogus", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("30/08/2026")
	assert.Error(t, err)
	_, err = ParseDate("2026-13-01")
	assert.Error(t, err)
}

func TestToday(t *testing.T) {
	now := time.Date(2026, 8, 30, 18, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), Today(now))
}

func TestNullableString(t *testing.T) {
	assert.Nil(t, NullableString(""))
	p := NullableString("x")
	require.NotNil(t, p)
	assert.Equal(t, "x", *p)
}

func TestStringOrEmpty(t *testing.T) {
	assert.Equal(t, "", StringOrEmpty(nil))
	s := "value"
	assert.Equal(t, "value", StringOrEmpty(&s))
}
