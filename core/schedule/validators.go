package schedule

import (
	"time"

	"github.com/pkg/errors"

	"github.com/darasaonline/darasa/core"
)

var (
	ErrEndNotAfterStart = errors.New("end time must be after start time")
	ErrNoBatchSelected  = errors.New("a batch must be selected")

	errBadStart = core.FieldError{Field: "start_time", Error: "invalid timestamp"}
	errBadEnd   = core.FieldError{Field: "end_time", Error: "invalid timestamp"}
)

// Validate rejects a submission locally, before any network call. Timestamps
// are accepted as RFC 3339 or as a naive wall-clock string from a
// datetime-local control; naive input is interpreted in loc so the value
// sent over the wire always carries an explicit offset.
func (ns *NewSession) Validate(loc *time.Location) error {
	ns.clean()

	// the picker's placeholder option never counts as a selection,
	// even when its literal value shows up in a loaded batch list
	if ns.BatchID == NoBatchSentinel {
		return core.NewValidationError(ErrNoBatchSelected,
			core.FieldError{Field: "batch_id", Error: ErrNoBatchSelected.Error()})
	}

	if err := core.Validate.Struct(ns); err != nil {
		return core.NewValidationError(err, core.TranslateValidationErrors(err)...)
	}

	if loc == nil {
		loc = time.Local
	}
	var err error
	if ns.start, err = parseStamp(ns.StartTime, loc); err != nil {
		return core.NewValidationError(err, errBadStart)
	}
	if ns.end, err = parseStamp(ns.EndTime, loc); err != nil {
		return core.NewValidationError(err, errBadEnd)
	}
	if !ns.end.After(ns.start) {
		return core.NewValidationError(ErrEndNotAfterStart,
			core.FieldError{Field: "end_time", Error: ErrEndNotAfterStart.Error()})
	}

	// normalize what goes on the wire
	ns.StartTime = ns.start.Format(time.RFC3339)
	ns.EndTime = ns.end.Format(time.RFC3339)
	return nil
}

func parseStamp(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	// datetime-local yields "2006-01-02T15:04" with no offset
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("cannot parse timestamp %q", s)
}
