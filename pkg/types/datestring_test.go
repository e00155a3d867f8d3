package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateString_Validate(t *testing.T) {
	valid := []string{"2026-09-14", "2026-01-01", "2028-02-29"}
	for _, s := range valid {
		assert.NoError(t, DateString(s).Validate(), s)
	}

	invalid := []string{"", "2026-13-01", "2026-02-30", "14-09-2026", "2026/09/14", "tomorrow"}
	for _, s := range invalid {
		assert.Error(t, DateString(s).Validate(), s)
	}
}

func TestDateString_AddDays(t *testing.T) {
	got, err := DateString("2026-09-14").AddDays(7)
	require.NoError(t, err)
	assert.Equal(t, DateString("2026-09-21"), got)

	got, err = DateString("2026-09-30").AddDays(1)
	require.NoError(t, err)
	assert.Equal(t, DateString("2026-10-01"), got)

	got, err = DateString("2026-01-01").AddDays(-1)
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-12-31"), got)
}

func TestDateString_Weekday(t *testing.T) {
	wd, err := DateString("2026-09-14").Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, wd)

	wd, err = DateString("2026-09-13").Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, wd)
}

func TestDateString_Scan(t *testing.T) {
	var ds DateString

	require.NoError(t, ds.Scan(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, DateString("2026-09-14"), ds)

	require.NoError(t, ds.Scan("2026-09-15T00:00:00Z"))
	assert.Equal(t, DateString("2026-09-15"), ds)

	require.NoError(t, ds.Scan([]byte("2026-09-16")))
	assert.Equal(t, DateString("2026-09-16"), ds)

	require.NoError(t, ds.Scan(nil))
	assert.True(t, ds.IsZero())

	assert.Error(t, ds.Scan(42))
}
