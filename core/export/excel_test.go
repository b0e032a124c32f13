package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func Test_Workbook(t *testing.T) {
	header := []string{"ID", "Name"}
	rows := [][]string{
		{"b1", "Algebra"},
		{"b2", "Chemistry"},
	}

	data, err := Workbook("batches", header, rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("batches")
	require.NoError(t, err)
	require.Len(t, got, len(rows)+1)
	assert.Equal(t, header, got[0])
	assert.Equal(t, rows[0], got[1])
	assert.Equal(t, rows[1], got[2])
}

func Test_Workbook_emptyRows(t *testing.T) {
	data, err := Workbook("students", []string{"ID"}, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("students")
	require.NoError(t, err)
	require.Len(t, got, 1)
}
