package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleFilter_Window(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	f := ScheduleFilter{}
	from, to, err := f.Window(now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC), to)

	f = ScheduleFilter{Year: 2024, Month: 2}
	_, to, err = f.Window(now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 29, to.Day())

	f = ScheduleFilter{Start: "2026-03-05", End: "2026-03-07", Year: 2024, Month: 2}
	from, to, err = f.Window(now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 5, from.Day())
	assert.Equal(t, time.Date(2026, 3, 7, 23, 59, 59, 0, time.UTC), to)

	f = ScheduleFilter{Year: 2026, Month: 14}
	_, _, err = f.Window(now, time.UTC)
	assert.Error(t, err)
}

func TestKindName(t *testing.T) {
	assert.Equal(t, "연차휴가", KindName(KindAnnual))
	assert.Equal(t, "", KindName(99))
}
