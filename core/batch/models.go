package batch

import (
	"strconv"

	"github.com/darasaonline/darasa/core"
)

// Batch statuses as used by the status filter.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Batch is a named group of students taught by one teacher under one course.
// The server is authoritative; nothing here is persisted client-side.
type Batch struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	CourseName   string   `json:"course_name"`
	TeacherID    string   `json:"teacher_id"`
	Students     []string `json:"students"` // unique student ids
	StudentLimit int      `json:"student_limit"`
	IsActive     bool     `json:"is_active"`
	ScheduleNote string   `json:"schedule_note"`
}

func (b Batch) StudentsCount() int {
	return len(b.Students)
}

// IsFull is advisory; enrolled-count <= limit is the server's invariant to
// enforce, the client only uses this to disable the enroll action.
func (b Batch) IsFull() bool {
	return b.StudentLimit > 0 && len(b.Students) >= b.StudentLimit
}

func (b Batch) Status() string {
	if b.IsActive {
		return StatusActive
	}
	return StatusInactive
}

// HasStudent reports whether the student is already enrolled.
func (b Batch) HasStudent(studentID string) bool {
	for _, id := range b.Students {
		if id == studentID {
			return true
		}
	}
	return false
}

// NewBatch contains information needed to create a new Batch.
type NewBatch struct {
	Name         string `json:"name" validate:"required"`
	CourseName   string `json:"course_name" validate:"required"`
	StudentLimit int    `json:"student_limit" validate:"omitempty,min=1"`
	ScheduleNote string `json:"schedule_note"`
}

func (nb *NewBatch) Validate() error {
	nb.Name = core.CleanString(nb.Name)
	nb.CourseName = core.CleanString(nb.CourseName)
	nb.ScheduleNote = core.CleanString(nb.ScheduleNote)

	if err := core.Validate.Struct(nb); err != nil {
		return core.NewValidationError(err, core.TranslateValidationErrors(err)...)
	}
	return nil
}

// UpdateBatch defines what information may be provided to modify an existing Batch.
type UpdateBatch struct {
	Name         string  `json:"name"`
	CourseName   string  `json:"course_name"`
	StudentLimit *int    `json:"student_limit" validate:"omitempty,min=1"`
	IsActive     *bool   `json:"is_active"`
	ScheduleNote *string `json:"schedule_note"`
}

func (ub *UpdateBatch) Validate() error {
	ub.Name = core.CleanString(ub.Name)
	ub.CourseName = core.CleanString(ub.CourseName)

	if err := core.Validate.Struct(ub); err != nil {
		return core.NewValidationError(err, core.TranslateValidationErrors(err)...)
	}
	return nil
}

// QueryFilter applies AND operation on available fields.
// Search does a case-insensitive match on Batch.Name or Batch.CourseName.
type QueryFilter struct {
	Search string
	Status string // all | active | inactive
}

// Apply filters the loaded batch list in place-order.
func (f QueryFilter) Apply(batches []Batch) []Batch {
	out := make([]Batch, 0, len(batches))
	for _, b := range batches {
		if !core.ContainsFold(core.CleanString(f.Search), b.Name, b.CourseName) {
			continue
		}
		if !core.MatchesStatus(b.Status(), f.Status) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// ExportHeader and ExportRow feed the CSV/XLSX exporters.
func ExportHeader() []string {
	return []string{"ID", "Name", "Course", "Students", "Limit", "Status"}
}

func ExportRow(b Batch) []string {
	return []string{
		b.ID,
		b.Name,
		b.CourseName,
		strconv.Itoa(b.StudentsCount()),
		strconv.Itoa(b.StudentLimit),
		b.Status(),
	}
}
