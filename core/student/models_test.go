package student

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleStudents() []Student {
	return []Student{
		{ID: "s1", Name: "Asha Patel", Email: "asha@example.com", BatchIDs: []string{"b1"}, IsActive: true},
		{ID: "s2", Name: "John Kamau", Email: "jkamau@example.com", BatchIDs: []string{"b1", "b2"}, IsActive: true},
		{ID: "s3", Name: "Maria Silva", Email: "maria@example.com", BatchIDs: []string{"b2"}, IsActive: false},
	}
}

func Test_QueryFilter_Apply(t *testing.T) {
	students := sampleStudents()

	tests := []struct {
		name    string
		filter  QueryFilter
		wantIDs []string
	}{
		{"empty returns all", QueryFilter{}, []string{"s1", "s2", "s3"}},
		{"search name case-insensitive", QueryFilter{Search: "ASHA"}, []string{"s1"}},
		{"search spans email", QueryFilter{Search: "jkamau"}, []string{"s2"}},
		{"status inactive", QueryFilter{Status: "inactive"}, []string{"s3"}},
		{"batch scope", QueryFilter{BatchID: "b2"}, []string{"s2", "s3"}},
		{"batch AND status", QueryFilter{BatchID: "b2", Status: "active"}, []string{"s2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(students)
			ids := make([]string, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func Test_ExportRow(t *testing.T) {
	s := Student{
		ID: "s1", Name: "Asha Patel", Email: "asha@example.com", Phone: "+254700000001",
		BatchIDs: []string{"b1", "b2"},
		JoinedAt: time.Date(2021, 1, 15, 0, 0, 0, 0, time.UTC),
		IsActive: true,
	}

	row := ExportRow(s)
	assert.Len(t, row, len(ExportHeader()))
	assert.Equal(t, []string{"s1", "Asha Patel", "asha@example.com", "+254700000001", "2", "2021-01-15", "active"}, row)
}
