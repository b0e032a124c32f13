package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/darasaonline/darasa/core/batch"
)

var tz = time.FixedZone("EAT", 3*60*60)

func ts(day, hour, min int) time.Time {
	return time.Date(2021, time.March, day, hour, min, 0, 0, tz)
}

func Test_DeriveStatus(t *testing.T) {
	start := ts(8, 10, 0)
	end := ts(8, 11, 0)

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"before start", ts(8, 9, 59), StatusUpcoming},
		{"at start", start, StatusOngoing},
		{"mid class", ts(8, 10, 30), StatusOngoing},
		{"at end", end, StatusOngoing},
		{"after end", ts(8, 11, 1), StatusCompleted},
		{"previous day", ts(7, 10, 30), StatusUpcoming},
		{"next day", ts(9, 10, 30), StatusCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(start, end, tt.now))
		})
	}
}

func Test_Session_EndsAt(t *testing.T) {
	start := ts(8, 10, 0)
	explicit := ts(8, 12, 30)

	s := Session{StartTime: start, Duration: 45}
	assert.Equal(t, start.Add(45*time.Minute), s.EndsAt())

	s.EndTime = &explicit
	assert.Equal(t, explicit, s.EndsAt())
}

func Test_GroupByDate(t *testing.T) {
	now := ts(8, 9, 0) // Monday

	items := []Item{
		{Session: Session{ID: "c", StartTime: ts(9, 8, 0)}},  // tomorrow
		{Session: Session{ID: "a", StartTime: ts(8, 16, 0)}}, // today, later
		{Session: Session{ID: "b", StartTime: ts(8, 10, 0)}}, // today, earlier
		{Session: Session{ID: "d", StartTime: ts(11, 9, 0)}}, // Thursday
	}

	groups := GroupByDate(items, now, tz)

	assert.Len(t, groups, 3)
	assert.Equal(t, "Today", groups[0].Label)
	assert.Equal(t, "Tomorrow", groups[1].Label)
	assert.Equal(t, "Thursday", groups[2].Label)

	// buckets ascend by date
	for i := 1; i < len(groups); i++ {
		assert.True(t, groups[i-1].Date.Before(groups[i].Date))
	}

	// source order within a bucket is preserved, not time-sorted
	assert.Equal(t, "a", groups[0].Items[0].ID)
	assert.Equal(t, "b", groups[0].Items[1].ID)

	// union of buckets == input, each exactly once
	seen := map[string]int{}
	for _, g := range groups {
		for _, it := range g.Items {
			seen[it.ID]++
		}
	}
	assert.Len(t, seen, len(items))
	for id, n := range seen {
		assert.Equal(t, 1, n, "item %s duplicated", id)
	}
}

func Test_GroupByDate_empty(t *testing.T) {
	assert.Empty(t, GroupByDate(nil, ts(8, 9, 0), tz))
}

func Test_JoinBatchMetadata(t *testing.T) {
	batches := []batch.Batch{
		{ID: "b1", Name: "Math101", CourseName: "Mathematics", Students: []string{"s1", "s2"}},
		{ID: "b2", Name: "Phy201", CourseName: "Physics"},
	}

	meta := JoinBatchMetadata(Session{BatchID: "b1"}, batches)
	assert.Equal(t, "Math101", meta.BatchName)
	assert.Equal(t, "Mathematics", meta.CourseName)
	assert.Equal(t, 2, meta.Students)

	// missing reference is tolerated with placeholders
	meta = JoinBatchMetadata(Session{BatchID: "gone"}, batches)
	assert.Equal(t, "Unknown Batch", meta.BatchName)
	assert.Equal(t, "Course", meta.CourseName)
	assert.Equal(t, 0, meta.Students)
}

func Test_Build(t *testing.T) {
	now := ts(8, 10, 30)
	batches := []batch.Batch{
		{ID: "b1", Name: "Math101", CourseName: "Mathematics", Students: []string{"s1", "s2"}, StudentLimit: 30},
	}
	sessions := []Session{
		// started 30 minutes ago, runs for an hour
		{ID: "sess1", BatchID: "b1", Topic: "Fractions", StartTime: ts(8, 10, 0), Duration: 60},
	}

	groups := Build(sessions, batches, now, tz)

	assert.Len(t, groups, 1)
	assert.Equal(t, "Today", groups[0].Label)
	it := groups[0].Items[0]
	assert.Equal(t, StatusOngoing, it.Status)
	assert.Equal(t, "Math101", it.BatchName)
	assert.Equal(t, 2, it.Students)
}
