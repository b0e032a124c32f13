package student

import (
	"strconv"
	"time"

	"github.com/darasaonline/darasa/core"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Student is a roster row as returned by the server.
type Student struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	BatchIDs []string  `json:"batch_ids"`
	JoinedAt time.Time `json:"joined_at"`
	IsActive bool      `json:"is_active"`
}

func (s Student) Status() string {
	if s.IsActive {
		return StatusActive
	}
	return StatusInactive
}

// QueryFilter applies AND operation on available fields.
// Search does a case-insensitive match on Student.Name or Student.Email.
type QueryFilter struct {
	Search  string
	Status  string // all | active | inactive
	BatchID string
}

func (f QueryFilter) Apply(students []Student) []Student {
	out := make([]Student, 0, len(students))
	for _, s := range students {
		if !core.ContainsFold(core.CleanString(f.Search), s.Name, s.Email) {
			continue
		}
		if !core.MatchesStatus(s.Status(), f.Status) {
			continue
		}
		if f.BatchID != "" && !contains(s.BatchIDs, f.BatchID) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func ExportHeader() []string {
	return []string{"ID", "Name", "Email", "Phone", "Batches", "Joined", "Status"}
}

func ExportRow(s Student) []string {
	return []string{
		s.ID,
		s.Name,
		s.Email,
		s.Phone,
		strconv.Itoa(len(s.BatchIDs)),
		s.JoinedAt.Format("2006-01-02"),
		s.Status(),
	}
}
