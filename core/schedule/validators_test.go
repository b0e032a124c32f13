package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/darasaonline/darasa/core"
)

func validSubmission() NewSession {
	return NewSession{
		BatchID:     "b1",
		Topic:       "Fractions",
		StartTime:   "2021-03-08T10:00:00+03:00",
		EndTime:     "2021-03-08T11:00:00+03:00",
		MeetingType: MeetingZoom,
		MeetingLink: "https://zoom.us/j/123",
	}
}

func Test_NewSession_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*NewSession)
		wantFld string
	}{
		{"missing batch", func(ns *NewSession) { ns.BatchID = "" }, "batch_id"},
		{"missing topic", func(ns *NewSession) { ns.Topic = "  " }, "topic"},
		{"missing start", func(ns *NewSession) { ns.StartTime = "" }, "start_time"},
		{"missing end", func(ns *NewSession) { ns.EndTime = "" }, "end_time"},
		{"end equals start", func(ns *NewSession) { ns.EndTime = ns.StartTime }, "end_time"},
		{"end before start", func(ns *NewSession) { ns.EndTime = "2021-03-08T09:00:00+03:00" }, "end_time"},
		{"garbage start", func(ns *NewSession) { ns.StartTime = "next tuesday" }, "start_time"},
		{"bad meeting type", func(ns *NewSession) { ns.MeetingType = "carrier_pigeon" }, "meeting_type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns := validSubmission()
			tt.mutate(&ns)

			err := ns.Validate(tz)
			assert.Error(t, err)
			assert.True(t, core.IsValidationError(err))

			if vErr, ok := err.(*core.ValidationError); ok && tt.wantFld != "" && len(vErr.Fields) > 0 {
				flds := make([]string, 0, len(vErr.Fields))
				for _, f := range vErr.Fields {
					flds = append(flds, f.Field)
				}
				assert.Contains(t, flds, tt.wantFld)
			}
		})
	}
}

func Test_NewSession_Validate_sentinel(t *testing.T) {
	// the placeholder option is rejected even when its literal value could
	// plausibly exist in a loaded batch list
	ns := validSubmission()
	ns.BatchID = NoBatchSentinel

	err := ns.Validate(tz)
	assert.Error(t, err)
	assert.True(t, core.IsValidationError(err))
}

func Test_NewSession_Validate_ok(t *testing.T) {
	ns := validSubmission()

	assert.NoError(t, ns.Validate(tz))
	assert.Equal(t, 60, ns.DurationMinutes())
	assert.True(t, ns.End().After(ns.Start()))
}

func Test_NewSession_Validate_naiveLocalInput(t *testing.T) {
	// datetime-local controls yield naive wall-clock strings; they are
	// interpreted in the viewer's zone and sent with an explicit offset
	ns := validSubmission()
	ns.StartTime = "2021-03-08T10:00"
	ns.EndTime = "2021-03-08T11:30"

	assert.NoError(t, ns.Validate(tz))

	start, err := time.Parse(time.RFC3339, ns.StartTime)
	assert.NoError(t, err)
	assert.Equal(t, ts(8, 10, 0).Unix(), start.Unix())
	assert.Equal(t, 90, ns.DurationMinutes())
}
