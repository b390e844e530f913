package schedule

// Interval is a half-open [Start, End) span within one day. End-touching
// intervals do not overlap, so back-to-back bookings are allowed.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

func NewInterval(start TimeOfDay, durationMin int) Interval {
	return Interval{Start: start, End: start.Add(durationMin)}
}

func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// IsFree reports whether the candidate interval overlaps none of the busy
// intervals. Order of busy is irrelevant to the result.
func IsFree(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return false
		}
	}
	return true
}
