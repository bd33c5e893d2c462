package attendance

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestRenderWorkbook(t *testing.T) {
	records := []AttendanceResponse{
		{EmployeeID: "EMP002", EmployeeName: "John Roe", Date: "2026-02-04", Status: StatusAbsent, MarkedAt: "2026-02-04T09:00:00Z"},
		{EmployeeID: "EMP001", EmployeeName: "Jane Doe", Date: "2026-02-03", Status: StatusPresent, MarkedAt: "2026-02-03T08:30:00Z"},
	}

	content, err := renderWorkbook(records)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	assert.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ExportSheetName}, f.GetSheetList())

	rows, err := f.GetRows(ExportSheetName)
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"Employee ID", "Employee Name", "Date", "Status", "Marked At"}, rows[0])
	assert.Equal(t, []string{"EMP002", "John Roe", "2026-02-04", "Absent", "2026-02-04T09:00:00Z"}, rows[1])
	assert.Equal(t, "Jane Doe", rows[2][1])
}

func TestRenderWorkbook_Empty(t *testing.T) {
	content, err := renderWorkbook(nil)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ExportSheetName)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}
