package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interacai/flowcore/ent"
	"github.com/interacai/flowcore/ent/appointment"
)

// Tuesday.
var testDay = time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

// dawn is early enough that no same-day slot is in the past.
var dawn = testDay.Add(1 * time.Hour)

func at(t *testing.T, clock string) time.Time {
	t.Helper()
	ts, err := parseClock(testDay, clock)
	require.NoError(t, err)
	return ts
}

func rule(start, end string) *ent.AvailabilityRule {
	return &ent.AvailabilityRule{
		ID:        "rule-" + start,
		DayOfWeek: 1,
		StartTime: start,
		EndTime:   end,
		IsActive:  true,
	}
}

func booked(t *testing.T, start, end string) *ent.Appointment {
	t.Helper()
	return &ent.Appointment{
		StartAt: at(t, start),
		EndAt:   at(t, end),
		Status:  appointment.StatusScheduled,
	}
}

func TestMondayIndex(t *testing.T) {
	tests := []struct {
		weekday  time.Weekday
		expected int
	}{
		{time.Monday, 0},
		{time.Tuesday, 1},
		{time.Wednesday, 2},
		{time.Thursday, 3},
		{time.Friday, 4},
		{time.Saturday, 5},
		{time.Sunday, 6},
	}

	for _, tt := range tests {
		t.Run(tt.weekday.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, mondayIndex(tt.weekday))
		})
	}
}

func TestParseClock(t *testing.T) {
	t.Run("anchors clock to the given day", func(t *testing.T) {
		ts, err := parseClock(testDay, "14:30")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, time.September, 1, 14, 30, 0, 0, time.UTC), ts)
	})

	t.Run("tolerates surrounding whitespace", func(t *testing.T) {
		ts, err := parseClock(testDay, " 09:00 ")
		require.NoError(t, err)
		assert.Equal(t, 9, ts.Hour())
	})

	for _, bad := range []string{"9am", "25:00", "", "12:60"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := parseClock(testDay, bad)
			assert.Error(t, err)
		})
	}
}

func TestSlotsForDay(t *testing.T) {
	hour := 60 * time.Minute

	t.Run("steps through the window by duration", func(t *testing.T) {
		slots := slotsForDay(testDay, hour, []*ent.AvailabilityRule{rule("09:00", "12:00")}, nil, dawn)

		require.Len(t, slots, 3)
		assert.Equal(t, at(t, "09:00"), slots[0].StartAt)
		assert.Equal(t, at(t, "10:00"), slots[0].EndAt)
		assert.Equal(t, at(t, "10:00"), slots[1].StartAt)
		assert.Equal(t, at(t, "11:00"), slots[2].StartAt)
	})

	t.Run("last slot must fit inside the window", func(t *testing.T) {
		slots := slotsForDay(testDay, hour, []*ent.AvailabilityRule{rule("09:00", "12:30")}, nil, dawn)

		require.Len(t, slots, 3)
		assert.Equal(t, at(t, "11:00"), slots[2].StartAt)
	})

	t.Run("window shorter than duration yields nothing", func(t *testing.T) {
		slots := slotsForDay(testDay, hour, []*ent.AvailabilityRule{rule("09:00", "09:30")}, nil, dawn)
		assert.Empty(t, slots)
	})

	t.Run("booked slot is excluded", func(t *testing.T) {
		existing := []*ent.Appointment{booked(t, "10:00", "11:00")}
		slots := slotsForDay(testDay, hour, []*ent.AvailabilityRule{rule("09:00", "12:00")}, existing, dawn)

		require.Len(t, slots, 2)
		assert.Equal(t, at(t, "09:00"), slots[0].StartAt)
		assert.Equal(t, at(t, "11:00"), slots[1].StartAt)
	})

	t.Run("partial overlap also blocks", func(t *testing.T) {
		existing := []*ent.Appointment{booked(t, "10:30", "11:30")}
		slots := slotsForDay(testDay, hour, []*ent.AvailabilityRule{rule("09:00", "12:00")}, existing, dawn)

		require.Len(t, slots, 1)
		assert.Equal(t, at(t, "09:00"), slots[0].StartAt)
	})

	t.Run("back-to-back appointment does not block", func(t *testing.T) {
		existing := []*ent.Appointment{booked(t, "09:00", "10:00")}
		slots := slotsForDay(testDay, hour, []*ent.AvailabilityRule{rule("09:00", "12:00")}, existing, dawn)

		require.Len(t, slots, 2)
		assert.Equal(t, at(t, "10:00"), slots[0].StartAt)
	})

	t.Run("appointment spanning the window blocks everything", func(t *testing.T) {
		existing := []*ent.Appointment{booked(t, "08:00", "13:00")}
		slots := slotsForDay(testDay, hour, []*ent.AvailabilityRule{rule("09:00", "12:00")}, existing, dawn)
		assert.Empty(t, slots)
	})

	t.Run("slots at or before now are excluded", func(t *testing.T) {
		now := at(t, "10:00")
		slots := slotsForDay(testDay, hour, []*ent.AvailabilityRule{rule("09:00", "12:00")}, nil, now)

		require.Len(t, slots, 1)
		assert.Equal(t, at(t, "11:00"), slots[0].StartAt)
	})

	t.Run("overlapping rules yield each start once", func(t *testing.T) {
		rules := []*ent.AvailabilityRule{rule("09:00", "11:00"), rule("10:00", "12:00")}
		slots := slotsForDay(testDay, hour, rules, nil, dawn)

		require.Len(t, slots, 3)
		assert.Equal(t, at(t, "09:00"), slots[0].StartAt)
		assert.Equal(t, at(t, "10:00"), slots[1].StartAt)
		assert.Equal(t, at(t, "11:00"), slots[2].StartAt)
	})

	t.Run("rules are merged in start order", func(t *testing.T) {
		rules := []*ent.AvailabilityRule{rule("14:00", "16:00"), rule("09:00", "10:00")}
		slots := slotsForDay(testDay, hour, rules, nil, dawn)

		require.Len(t, slots, 3)
		assert.Equal(t, at(t, "09:00"), slots[0].StartAt)
		assert.Equal(t, at(t, "14:00"), slots[1].StartAt)
		assert.Equal(t, at(t, "15:00"), slots[2].StartAt)
	})

	t.Run("malformed rule is skipped", func(t *testing.T) {
		rules := []*ent.AvailabilityRule{rule("9am", "12:00"), rule("13:00", "14:00")}
		slots := slotsForDay(testDay, hour, rules, nil, dawn)

		require.Len(t, slots, 1)
		assert.Equal(t, at(t, "13:00"), slots[0].StartAt)
	})

	t.Run("thirty minute duration", func(t *testing.T) {
		slots := slotsForDay(testDay, 30*time.Minute, []*ent.AvailabilityRule{rule("09:00", "10:30")}, nil, dawn)

		require.Len(t, slots, 3)
		assert.Equal(t, at(t, "09:30"), slots[1].StartAt)
		assert.Equal(t, at(t, "10:00"), slots[2].StartAt)
		assert.Equal(t, at(t, "10:30"), slots[2].EndAt)
	})
}

func TestSlotDisplayFormat(t *testing.T) {
	assert.Equal(t, "Tuesday, September 1 at 10:00 AM", at(t, "10:00").Format(slotDisplayFormat))
	assert.Equal(t, "Tuesday, September 1 at 2:30 PM", at(t, "14:30").Format(slotDisplayFormat))
}
