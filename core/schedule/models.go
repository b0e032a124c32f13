package schedule

import (
	"time"

	"github.com/darasaonline/darasa/core"
)

// Session statuses, derived from wall-clock time and never persisted.
const (
	StatusUpcoming  = "upcoming"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// Meeting types
const (
	MeetingZoom       = "zoom"
	MeetingGoogleMeet = "google_meet"
	MeetingInApp      = "in_app"
)

// NoBatchSentinel is the placeholder option value a picker shows when the
// teacher has no batches; it must never reach the server as a selection.
const NoBatchSentinel = "no-batches"

// Session is a scheduled live class as returned by the server.
type Session struct {
	ID               string     `json:"id"`
	BatchID          string     `json:"batch_id"`
	Topic            string     `json:"topic"`
	Description      string     `json:"description"`
	StartTime        time.Time  `json:"start_time"`
	EndTime          *time.Time `json:"end_time,omitempty"`
	Duration         int        `json:"duration"` // minutes; used when EndTime is absent
	MeetingType      string     `json:"meeting_type"`
	MeetingLink      string     `json:"meeting_link"`
	ParticipantLimit int        `json:"participant_limit"`
	StudentsCount    int        `json:"students_count"`
}

// EndsAt resolves the session's end instant: the explicit end time when the
// server sent one, otherwise start + duration.
func (s Session) EndsAt() time.Time {
	if s.EndTime != nil {
		return *s.EndTime
	}
	return s.StartTime.Add(time.Duration(s.Duration) * time.Minute)
}

// BatchMeta is the slice of batch data a schedule item displays.
type BatchMeta struct {
	BatchName  string `json:"batch_name"`
	CourseName string `json:"course_name"`
	Students   int    `json:"batch_students"`
}

// Item is the display-ready representation of a session: the record itself,
// the joined batch metadata and the status derived at build time.
type Item struct {
	Session
	BatchMeta
	Status string `json:"status"`
}

// DayGroup holds the items whose start falls on one calendar date.
type DayGroup struct {
	Date  time.Time `json:"date"` // midnight, viewer's location
	Label string    `json:"label"`
	Items []Item    `json:"items"`
}

// NewSession contains information needed to schedule a new live class.
// Validation happens locally, before any network call.
type NewSession struct {
	BatchID     string `json:"batch_id" validate:"required"`
	Topic       string `json:"topic" validate:"required"`
	Description string `json:"description"`
	StartTime   string `json:"start_time" validate:"required"` // RFC 3339
	EndTime     string `json:"end_time" validate:"required"`   // RFC 3339
	MeetingType string `json:"meeting_type" validate:"omitempty,meeting_type"`
	MeetingLink string `json:"meeting_link" validate:"omitempty,url"`

	start time.Time
	end   time.Time
}

// DurationMinutes is only meaningful after Validate has parsed the times.
func (ns *NewSession) DurationMinutes() int {
	return int(ns.end.Sub(ns.start) / time.Minute)
}

func (ns *NewSession) Start() time.Time { return ns.start }
func (ns *NewSession) End() time.Time   { return ns.end }

func (ns *NewSession) clean() {
	ns.BatchID = core.CleanString(ns.BatchID)
	ns.Topic = core.CleanString(ns.Topic)
	ns.Description = core.CleanString(ns.Description)
	ns.MeetingType = core.CleanString(ns.MeetingType, true /* lower */)
	ns.MeetingLink = core.CleanString(ns.MeetingLink)
}
