package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/darasaonline/darasa/core"
)

func Test_UploadRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ur      UploadRequest
		wantErr bool
	}{
		{"ok", UploadRequest{Title: "Lesson 1", Quality: "720p", FileName: "lesson1.mp4"}, false},
		{"quality normalized", UploadRequest{Title: "t", Quality: " 1080P ", FileName: "f.mp4"}, false},
		{"missing title", UploadRequest{Quality: "720p", FileName: "f.mp4"}, true},
		{"missing file", UploadRequest{Title: "t", Quality: "720p"}, true},
		{"bad quality", UploadRequest{Title: "t", Quality: "4k", FileName: "f.mp4"}, true},
		{"missing quality", UploadRequest{Title: "t", FileName: "f.mp4"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ur.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, core.IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_UploadRequest_TagList(t *testing.T) {
	ur := UploadRequest{Tags: "algebra, fractions ,, exam prep "}
	assert.Equal(t, []string{"algebra", "fractions", "exam prep"}, ur.TagList())

	assert.Empty(t, UploadRequest{}.TagList())
}

func Test_QueryFilter_Apply(t *testing.T) {
	items := []Content{
		{ID: "c1", Title: "Fractions intro", Tags: []string{"algebra"}, BatchID: "b1"},
		{ID: "c2", Title: "Lab safety", Tags: []string{"chemistry"}, BatchID: "b2"},
	}

	got := QueryFilter{Search: "algebra"}.Apply(items) // matches via tag
	assert.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)

	got = QueryFilter{BatchID: "b2"}.Apply(items)
	assert.Len(t, got, 1)
	assert.Equal(t, "c2", got[0].ID)

	got = QueryFilter{}.Apply(items)
	assert.Len(t, got, 2)
}
