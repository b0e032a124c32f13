package schedule

import (
	"sort"
	"time"

	"github.com/darasaonline/darasa/core/batch"
)

// Placeholder metadata substituted when a session references a batch that is
// not in the loaded batch list. Batches and sessions come from independent
// fetches that may be momentarily out of sync, so a miss is not fatal.
var unknownBatch = BatchMeta{
	BatchName:  "Unknown Batch",
	CourseName: "Course",
}

// DeriveStatus computes a session's display status from wall-clock time.
// Both boundaries are inclusive: a class starting or ending exactly now is
// ongoing. Callers must re-derive on every render pass; the result is never
// cached because it changes with nothing but the clock.
func DeriveStatus(start, end, now time.Time) string {
	switch {
	case now.Before(start):
		return StatusUpcoming
	case now.After(end):
		return StatusCompleted
	default:
		return StatusOngoing
	}
}

// JoinBatchMetadata looks the session's batch up by id and returns its
// display metadata, falling back to placeholders on a miss.
func JoinBatchMetadata(s Session, batches []batch.Batch) BatchMeta {
	for _, b := range batches {
		if b.ID == s.BatchID {
			return BatchMeta{
				BatchName:  b.Name,
				CourseName: b.CourseName,
				Students:   b.StudentsCount(),
			}
		}
	}
	return unknownBatch
}

// GroupByDate buckets items by the calendar date of their start in loc,
// ascending. Within a bucket the source order is preserved; the server does
// not guarantee time-ascending order within a day and neither do we.
func GroupByDate(items []Item, now time.Time, loc *time.Location) []DayGroup {
	if loc == nil {
		loc = time.Local
	}

	byDate := make(map[time.Time]*DayGroup)
	order := make([]time.Time, 0)
	for _, it := range items {
		day := midnight(it.StartTime, loc)
		grp, ok := byDate[day]
		if !ok {
			grp = &DayGroup{Date: day, Label: dayLabel(day, midnight(now, loc))}
			byDate[day] = grp
			order = append(order, day)
		}
		grp.Items = append(grp.Items, it)
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })
	groups := make([]DayGroup, 0, len(order))
	for _, day := range order {
		groups = append(groups, *byDate[day])
	}
	return groups
}

// Build turns flat session and batch lists into the date-grouped,
// status-annotated schedule a page renders.
func Build(sessions []Session, batches []batch.Batch, now time.Time, loc *time.Location) []DayGroup {
	items := make([]Item, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, Item{
			Session:   s,
			BatchMeta: JoinBatchMetadata(s, batches),
			Status:    DeriveStatus(s.StartTime, s.EndsAt(), now),
		})
	}
	return GroupByDate(items, now, loc)
}

func midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func dayLabel(day, today time.Time) string {
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow"
	default:
		return day.Weekday().String()
	}
}
