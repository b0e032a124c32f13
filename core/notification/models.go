package notification

import (
	"strconv"
	"time"

	"github.com/darasaonline/darasa/core"
)

// Audiences
const (
	AudienceStudents = "students"
	AudienceAdmin    = "admin"
	AudienceSpecific = "specific"
)

// Statuses
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusSent      = "sent"
)

type Notification struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Audience       string    `json:"audience"`
	BatchID        string    `json:"batch_id,omitempty"`
	Read           bool      `json:"read"`
	Status         string    `json:"status"`
	RecipientCount int       `json:"recipient_count"`
	ReadCount      int       `json:"read_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewNotification contains information needed to send a notification.
type NewNotification struct {
	Title    string `json:"title" validate:"required"`
	Message  string `json:"message" validate:"required"`
	Audience string `json:"audience" validate:"required,audience"`
	BatchID  string `json:"batch_id"`
}

func (nn *NewNotification) Validate() error {
	nn.Title = core.CleanString(nn.Title)
	nn.Message = core.CleanString(nn.Message)
	nn.Audience = core.CleanString(nn.Audience, true /* lower */)
	nn.BatchID = core.CleanString(nn.BatchID)

	if err := core.Validate.Struct(nn); err != nil {
		return core.NewValidationError(err, core.TranslateValidationErrors(err)...)
	}
	if nn.Audience == AudienceSpecific && nn.BatchID == "" {
		return core.NewValidationError(ErrBatchRequired,
			core.FieldError{Field: "batch_id", Error: ErrBatchRequired.Error()})
	}
	return nil
}

// QueryFilter applies AND operation on available fields.
// Search does a case-insensitive match on Notification.Title or Notification.Message.
type QueryFilter struct {
	Search string
	Status string // all | draft | scheduled | sent
}

func (f QueryFilter) Apply(items []Notification) []Notification {
	out := make([]Notification, 0, len(items))
	for _, n := range items {
		if !core.ContainsFold(core.CleanString(f.Search), n.Title, n.Message) {
			continue
		}
		if !core.MatchesStatus(n.Status, f.Status) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func ExportHeader() []string {
	return []string{"ID", "Title", "Audience", "Status", "Recipients", "Reads", "Created"}
}

func ExportRow(n Notification) []string {
	return []string{
		n.ID,
		n.Title,
		n.Audience,
		n.Status,
		strconv.Itoa(n.RecipientCount),
		strconv.Itoa(n.ReadCount),
		n.CreatedAt.Format("2006-01-02"),
	}
}
