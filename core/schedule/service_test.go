package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/darasaonline/darasa/core"
	"github.com/darasaonline/darasa/core/batch"
)

type fakeAPI struct {
	sessions []Session
	batches  []batch.Batch
	batchErr error
	calls    int
}

func (f *fakeAPI) ListSessions(context.Context) ([]Session, error) {
	f.calls++
	return f.sessions, nil
}

func (f *fakeAPI) CreateSession(_ context.Context, ns NewSession) (Session, error) {
	f.calls++
	return Session{ID: "new", BatchID: ns.BatchID, Topic: ns.Topic}, nil
}

func (f *fakeAPI) DeleteSession(context.Context, string) error {
	f.calls++
	return nil
}

func (f *fakeAPI) ListBatches(context.Context) ([]batch.Batch, error) {
	f.calls++
	return f.batches, f.batchErr
}

func (f *fakeAPI) GetBatch(context.Context, string) (batch.Batch, error) {
	return batch.Batch{}, nil
}
func (f *fakeAPI) CreateBatch(context.Context, batch.NewBatch) (batch.Batch, error) {
	return batch.Batch{}, nil
}
func (f *fakeAPI) UpdateBatch(context.Context, string, batch.UpdateBatch) (batch.Batch, error) {
	return batch.Batch{}, nil
}
func (f *fakeAPI) EnrollStudent(context.Context, string, string) error { return nil }
func (f *fakeAPI) RemoveStudent(context.Context, string, string) error { return nil }

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var _ core.Logger = nopLogger{}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func Test_Service_Create_rejectsLocally(t *testing.T) {
	api := &fakeAPI{}
	svc := NewService(api, api, nopLogger{}, nil, tz)

	tests := []struct {
		name   string
		mutate func(*NewSession)
	}{
		{"empty batch", func(ns *NewSession) { ns.BatchID = "" }},
		{"sentinel batch", func(ns *NewSession) { ns.BatchID = NoBatchSentinel }},
		{"end before start", func(ns *NewSession) { ns.EndTime = "2021-03-08T09:00:00+03:00" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns := validSubmission()
			tt.mutate(&ns)

			_, err := svc.Create(context.Background(), ns)
			assert.Error(t, err)
			assert.True(t, core.IsValidationError(err))
			assert.Zero(t, api.calls, "local rejection must make no network call")
		})
	}
}

func Test_Service_Create_ok(t *testing.T) {
	api := &fakeAPI{}
	svc := NewService(api, api, nopLogger{}, nil, tz)

	sess, err := svc.Create(context.Background(), validSubmission())
	assert.NoError(t, err)
	assert.Equal(t, "new", sess.ID)
	assert.Equal(t, 1, api.calls)
}

func Test_Service_Schedule(t *testing.T) {
	now := ts(8, 10, 30)
	api := &fakeAPI{
		sessions: []Session{{ID: "s1", BatchID: "b1", StartTime: ts(8, 10, 0), Duration: 60}},
		batches:  []batch.Batch{{ID: "b1", Name: "Math101", CourseName: "Mathematics"}},
	}
	svc := NewService(api, api, nopLogger{}, fixedNow(now), tz)

	groups, err := svc.Schedule(context.Background())
	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, StatusOngoing, groups[0].Items[0].Status)
	assert.Equal(t, "Math101", groups[0].Items[0].BatchName)
}

func Test_Service_Schedule_batchFetchFails(t *testing.T) {
	now := ts(8, 9, 0)
	api := &fakeAPI{
		sessions: []Session{{ID: "s1", BatchID: "b1", StartTime: ts(8, 10, 0), Duration: 60}},
		batchErr: assert.AnError,
	}
	svc := NewService(api, api, nopLogger{}, fixedNow(now), tz)

	// sessions still render with placeholder batch metadata
	groups, err := svc.Schedule(context.Background())
	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, "Unknown Batch", groups[0].Items[0].BatchName)
}

func Test_Service_Delete(t *testing.T) {
	api := &fakeAPI{}
	svc := NewService(api, api, nopLogger{}, nil, tz)

	assert.NoError(t, svc.Delete(context.Background(), "s1"))
	assert.Equal(t, 1, api.calls)
}
