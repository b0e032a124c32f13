package content

import (
	"strings"
	"time"

	"github.com/darasaonline/darasa/core"
)

// Content is one entry in the teacher's video library.
type Content struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Notes       string    `json:"notes"`
	Tags        []string  `json:"tags"`
	Quality     string    `json:"quality"`
	Public      bool      `json:"public"`
	BatchID     string    `json:"batch_id,omitempty"`
	URL         string    `json:"url"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// UploadRequest carries the multipart form fields for a video upload.
// Tags arrive from the form as one comma-separated string.
type UploadRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	Tags        string `json:"tags"`
	Quality     string `json:"quality" validate:"required,video_quality"`
	Public      bool   `json:"public"`
	BatchID     string `json:"batch_id"`
	FileName    string `json:"file_name" validate:"required"`
}

func (ur *UploadRequest) Validate() error {
	ur.Title = core.CleanString(ur.Title)
	ur.Description = core.CleanString(ur.Description)
	ur.Notes = core.CleanString(ur.Notes)
	ur.Quality = core.CleanString(ur.Quality, true /* lower */)
	ur.BatchID = core.CleanString(ur.BatchID)
	ur.FileName = core.CleanString(ur.FileName)

	if err := core.Validate.Struct(ur); err != nil {
		return core.NewValidationError(err, core.TranslateValidationErrors(err)...)
	}
	return nil
}

// TagList splits and trims the comma-separated tags field, dropping empties.
func (ur UploadRequest) TagList() []string {
	parts := strings.Split(ur.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = core.CleanString(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// QueryFilter applies AND operation on available fields.
// Search does a case-insensitive match on Content.Title or its tags.
type QueryFilter struct {
	Search  string
	BatchID string
}

func (f QueryFilter) Apply(items []Content) []Content {
	out := make([]Content, 0, len(items))
	for _, c := range items {
		fields := append([]string{c.Title}, c.Tags...)
		if !core.ContainsFold(core.CleanString(f.Search), fields...) {
			continue
		}
		if f.BatchID != "" && c.BatchID != f.BatchID {
			continue
		}
		out = append(out, c)
	}
	return out
}
