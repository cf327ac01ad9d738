package availability

import (
	"slices"
	"time"
)

// FindSlots walks the lookahead window from the request origin and collects
// the first MaxResults conflict-free slots inside business hours, in
// chronological order. All arithmetic stays in the zone carried by From; a
// conflict that pushes the cursor into another zone is re-based before the
// next day's open/close are computed.
//
// Pure and deterministic: no I/O, busy intervals are read-only input.
func FindSlots(req SearchRequest, busy []BusyInterval) ([]Slot, error) {
	req = req.Normalized()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	loc := req.From.Location()
	cursor := req.From
	horizon := req.From.Add(req.Lookahead)

	intervals := slices.Clone(busy)
	slices.SortFunc(intervals, func(a, b BusyInterval) int {
		return a.start.Compare(b.start)
	})

	slots := make([]Slot, 0, req.MaxResults)
	for cursor.Before(horizon) && len(slots) < req.MaxResults {
		if !req.Hours.Allows(cursor.Weekday()) {
			cursor = req.Hours.OpenOn(nextDay(cursor, loc))
			continue
		}

		open := req.Hours.OpenOn(cursor)
		closeAt := req.Hours.CloseOn(cursor)
		if cursor.Before(open) {
			cursor = open
		}
		if !cursor.Before(closeAt) {
			cursor = req.Hours.OpenOn(nextDay(cursor, loc))
			continue
		}

		slotEnd := cursor.Add(req.Duration)
		if slotEnd.After(closeAt) {
			// would straddle the close boundary, even if nominally free
			cursor = req.Hours.OpenOn(nextDay(cursor, loc))
			continue
		}

		if conflict, found := firstConflict(intervals, cursor, slotEnd); found {
			cursor = conflict.end.In(loc)
			continue
		}

		slots = append(slots, Slot{Start: cursor, End: slotEnd})
		cursor = slotEnd
	}

	return slots, nil
}

// firstConflict returns the earliest-starting busy interval overlapping
// [start, end). Input must be sorted by start.
func firstConflict(sorted []BusyInterval, start, end time.Time) (BusyInterval, bool) {
	for _, b := range sorted {
		if !b.start.Before(end) {
			break
		}
		if b.Overlaps(start, end) {
			return b, true
		}
	}
	return BusyInterval{}, false
}

func nextDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, loc)
}
