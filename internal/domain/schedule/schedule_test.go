//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-booking/internal/domain/schedule"
)

func mustParse(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()
	tod, err := schedule.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func standardPolicy(t *testing.T) schedule.Policy {
	t.Helper()
	p, err := schedule.NewPolicy(mustParse(t, "09:00"), mustParse(t, "17:00"), []time.Weekday{time.Sunday}, 30, 30)
	require.NoError(t, err)
	return p
}

func labels(slots []schedule.TimeOfDay) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

// futureDay is a Monday well past any test clock.
var futureDay = time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC)

func TestParseTimeOfDay(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tod, err := schedule.ParseTimeOfDay("09:30")
		require.NoError(t, err)
		assert.Equal(t, 9, tod.Hour())
		assert.Equal(t, 30, tod.Minute())
		assert.Equal(t, "09:30", tod.String())
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"", "9", "25:00", "12:60", "noon"} {
			_, err := schedule.ParseTimeOfDay(s)
			assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay, s)
		}
	})
}

func TestIntervalOverlaps(t *testing.T) {
	base := schedule.NewInterval(mustParse(t, "10:00"), 30)

	cases := []struct {
		name  string
		other schedule.Interval
		want  bool
	}{
		{"identical", schedule.NewInterval(mustParse(t, "10:00"), 30), true},
		{"contained", schedule.NewInterval(mustParse(t, "10:10"), 10), true},
		{"straddles start", schedule.NewInterval(mustParse(t, "09:45"), 30), true},
		{"straddles end", schedule.NewInterval(mustParse(t, "10:15"), 30), true},
		{"ends at start", schedule.NewInterval(mustParse(t, "09:30"), 30), false},
		{"starts at end", schedule.NewInterval(mustParse(t, "10:30"), 30), false},
		{"disjoint before", schedule.NewInterval(mustParse(t, "08:00"), 30), false},
		{"disjoint after", schedule.NewInterval(mustParse(t, "12:00"), 30), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
			assert.Equal(t, tc.want, tc.other.Overlaps(base))
		})
	}
}

func TestCandidates_FutureDayFullGrid(t *testing.T) {
	p := standardPolicy(t)
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

	got := p.Candidates(futureDay, now, 30, 30)

	want := []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
		"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
		"15:00", "15:30", "16:00", "16:30",
	}
	if diff := cmp.Diff(want, labels(got)); diff != "" {
		t.Errorf("Candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidates_ClosedWeekday(t *testing.T) {
	p := standardPolicy(t)
	sunday := time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())

	assert.Empty(t, p.Candidates(sunday, time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC), 30, 30))
}

func TestCandidates_SameDayAdvancesPastNow(t *testing.T) {
	p := standardPolicy(t)

	t.Run("mid-afternoon", func(t *testing.T) {
		now := time.Date(2030, 6, 3, 14, 5, 0, 0, time.UTC)
		got := p.Candidates(futureDay, now, 30, 30)
		// 09:00 + 15-minute steps lands on 14:15, the first strictly
		// future grid point, then 30-minute strides.
		want := []string{"14:15", "14:45", "15:15", "15:45", "16:15"}
		assert.Equal(t, want, labels(got))
	})

	t.Run("now exactly on a grid point is excluded", func(t *testing.T) {
		now := time.Date(2030, 6, 3, 16, 0, 0, 0, time.UTC)
		got := p.Candidates(futureDay, now, 30, 30)
		assert.Equal(t, []string{"16:15"}, labels(got))
	})

	t.Run("before opening behaves like a future day", func(t *testing.T) {
		now := time.Date(2030, 6, 3, 7, 30, 0, 0, time.UTC)
		got := p.Candidates(futureDay, now, 30, 30)
		require.NotEmpty(t, got)
		assert.Equal(t, "09:00", got[0].String())
		assert.Len(t, got, 16)
	})

	t.Run("after closing yields nothing", func(t *testing.T) {
		now := time.Date(2030, 6, 3, 17, 30, 0, 0, time.UTC)
		assert.Empty(t, p.Candidates(futureDay, now, 30, 30))
	})

	t.Run("fine step narrower than a fine gap", func(t *testing.T) {
		now := time.Date(2030, 6, 3, 9, 3, 0, 0, time.UTC)
		got := p.Candidates(futureDay, now, 30, 10)
		require.NotEmpty(t, got)
		// gap 10 < 15, so the walk past now uses the gap itself.
		assert.Equal(t, "09:10", got[0].String())
	})
}

func TestCandidates_Invariants(t *testing.T) {
	p := standardPolicy(t)
	now := time.Date(2030, 6, 3, 11, 7, 0, 0, time.UTC)

	for _, gap := range []int{10, 15, 30, 45} {
		for _, dur := range []int{15, 30, 60, 90} {
			got := p.Candidates(futureDay, now, dur, gap)
			for i, s := range got {
				if i > 0 {
					assert.Greater(t, s, got[i-1], "starts must be strictly increasing")
				}
				assert.LessOrEqual(t, s.Add(dur), p.Close, "slot must end by closing")
				assert.Greater(t, s, schedule.TimeOfDayFrom(now), "slot must be strictly future")
			}
		}
	}
}

func TestCandidates_DurationLongerThanDay(t *testing.T) {
	p := standardPolicy(t)
	assert.Empty(t, p.Candidates(futureDay, time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC), 9*60, 30))
}

func TestFreeSlots_RemovesConflictingStartsOnly(t *testing.T) {
	p := standardPolicy(t)
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	busy := []schedule.Interval{schedule.NewInterval(mustParse(t, "10:00"), 30)}

	got := p.FreeSlots(futureDay, now, 30, 30, busy)

	assert.NotContains(t, labels(got), "10:00")
	assert.Contains(t, labels(got), "09:30")
	assert.Contains(t, labels(got), "10:30")
	assert.Len(t, got, 15)
}

func TestFreeSlots_LongBookingShadowsMultipleStarts(t *testing.T) {
	p := standardPolicy(t)
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	busy := []schedule.Interval{schedule.NewInterval(mustParse(t, "10:00"), 90)}

	got := p.FreeSlots(futureDay, now, 30, 30, busy)

	for _, blocked := range []string{"10:00", "10:30", "11:00"} {
		assert.NotContains(t, labels(got), blocked)
	}
	assert.Contains(t, labels(got), "09:30")
	assert.Contains(t, labels(got), "11:30")
}

func TestIsFree(t *testing.T) {
	busy := []schedule.Interval{
		schedule.NewInterval(mustParse(t, "10:00"), 30),
		schedule.NewInterval(mustParse(t, "13:00"), 60),
	}

	assert.True(t, schedule.IsFree(schedule.NewInterval(mustParse(t, "09:00"), 60), busy))
	assert.True(t, schedule.IsFree(schedule.NewInterval(mustParse(t, "10:30"), 30), busy))
	assert.False(t, schedule.IsFree(schedule.NewInterval(mustParse(t, "09:45"), 30), busy))
	assert.False(t, schedule.IsFree(schedule.NewInterval(mustParse(t, "13:30"), 30), busy))
	assert.True(t, schedule.IsFree(schedule.NewInterval(mustParse(t, "14:00"), 30), busy))
}

func TestParseWeekdays(t *testing.T) {
	got, err := schedule.ParseWeekdays("Sunday, monday")
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Monday}, got)

	_, err = schedule.ParseWeekdays("Funday")
	assert.ErrorIs(t, err, schedule.ErrInvalidWeekday)

	got, err = schedule.ParseWeekdays("  ")
	require.NoError(t, err)
	assert.Empty(t, got)
}
