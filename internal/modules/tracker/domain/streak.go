package domain

// CurrentStreak counts consecutive goal-met days ending at today or
// yesterday. Today counts as soon as its goal is met, even mid-day.
// Walking backward from yesterday, only a goal-met record on exactly the
// expected date extends the streak; a missing day, an unmet goal, or an
// out-of-order key all terminate the walk identically.
func (s TrackingState) CurrentStreak(today DayKey) int {
	streak := 0
	if s.GoalReached() {
		streak++
	}

	records := append([]DailyRecord(nil), s.History...)
	sortHistory(records)

	expected := today.Prev()
	for _, record := range records {
		if record.DateKey == today {
			// Today is covered above; an archived record for it (from a
			// manual snapshot) must not double-count.
			continue
		}
		if record.DateKey == expected && record.GoalMet() {
			streak++
			expected = expected.Prev()
			continue
		}
		break
	}
	return streak
}

// LongestStreak is the longest run of adjacent goal-met days anywhere in
// history, with the current streak competing as a candidate so an
// in-progress record run is never under-reported.
func (s TrackingState) LongestStreak(today DayKey) int {
	longest := s.CurrentStreak(today)

	records := append([]DailyRecord(nil), s.History...)
	sortHistory(records)

	run := 0
	var expected DayKey
	for _, record := range records {
		if !record.GoalMet() {
			run = 0
			expected = ""
			continue
		}
		if expected != "" && record.DateKey == expected {
			run++
		} else {
			run = 1
		}
		expected = record.DateKey.Prev()
		if run > longest {
			longest = run
		}
	}
	return longest
}
