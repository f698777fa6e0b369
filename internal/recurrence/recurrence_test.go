package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetdesk/internal/domain/entity"
)

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestNextAfter_Monthly(t *testing.T) {
	start := date(2025, time.January, 10, 9)

	next, err := NextAfter(entity.RecurMonthly, start, nil, date(2025, time.March, 15, 0), true)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, date(2025, time.April, 10, 9), *next)
}

func TestNextAfter_StartInFuture(t *testing.T) {
	start := date(2025, time.June, 1, 8)

	next, err := NextAfter(entity.RecurDaily, start, nil, date(2025, time.January, 1, 0), true)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, start, *next)
}

func TestNextAfter_Biweekly(t *testing.T) {
	start := date(2025, time.January, 6, 9)

	next, err := NextAfter(entity.RecurBiweekly, start, nil, start.Add(time.Hour), true)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, date(2025, time.January, 20, 9), *next)
}

func TestNextAfter_OnBoundaryInstant(t *testing.T) {
	start := date(2025, time.January, 6, 9)
	onOccurrence := date(2025, time.January, 13, 9)

	inclusive, err := NextAfter(entity.RecurWeekly, start, nil, onOccurrence, true)
	require.NoError(t, err)
	require.NotNil(t, inclusive)
	assert.Equal(t, onOccurrence, *inclusive)

	strict, err := NextAfter(entity.RecurWeekly, start, nil, onOccurrence, false)
	require.NoError(t, err)
	require.NotNil(t, strict)
	assert.Equal(t, date(2025, time.January, 20, 9), *strict)
}

func TestNextAfter_RespectsEndDate(t *testing.T) {
	start := date(2025, time.January, 1, 9)
	until := date(2025, time.January, 3, 9)

	next, err := NextAfter(entity.RecurDaily, start, &until, date(2025, time.February, 1, 0), true)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestNextAfter_UnknownPattern(t *testing.T) {
	_, err := NextAfter(entity.RecurrencePattern("hourly"), time.Now(), nil, time.Now(), true)
	assert.Error(t, err)
}

func TestNextTriggerFor_UniqueUsesScheduledAt(t *testing.T) {
	at := date(2025, time.May, 5, 10)
	r := &entity.Reminder{ScheduleKind: entity.ScheduleUnique, ScheduledAt: at}

	got := NextTriggerFor(r, date(2025, time.June, 1, 0))
	require.NotNil(t, got)
	assert.Equal(t, at, *got)
}

func TestNextTriggerFor_RecurringPrefersStoredValue(t *testing.T) {
	stored := date(2025, time.July, 1, 9)
	r := &entity.Reminder{
		ScheduleKind:      entity.ScheduleRecurring,
		RecurrencePattern: entity.RecurWeekly,
		ScheduledAt:       date(2025, time.January, 7, 9),
		NextTrigger:       &stored,
	}

	got := NextTriggerFor(r, date(2025, time.June, 30, 0))
	require.NotNil(t, got)
	assert.Equal(t, stored, *got)
}

func TestNextTriggerFor_RecurringRecomputesStaleValue(t *testing.T) {
	stale := date(2025, time.January, 14, 9)
	r := &entity.Reminder{
		ScheduleKind:      entity.ScheduleRecurring,
		RecurrencePattern: entity.RecurWeekly,
		ScheduledAt:       date(2025, time.January, 7, 9),
		NextTrigger:       &stale,
	}

	got := NextTriggerFor(r, date(2025, time.January, 16, 0))
	require.NotNil(t, got)
	assert.Equal(t, date(2025, time.January, 21, 9), *got)
}

func TestNextTriggerFor_ExhaustedRecurrence(t *testing.T) {
	end := date(2025, time.February, 1, 9)
	r := &entity.Reminder{
		ScheduleKind:      entity.ScheduleRecurring,
		RecurrencePattern: entity.RecurDaily,
		ScheduledAt:       date(2025, time.January, 1, 9),
		RecurrenceEndDate: &end,
	}

	got := NextTriggerFor(r, date(2025, time.March, 1, 0))
	assert.Nil(t, got)
}
