package attendance

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,min=1,max=20"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Status     Status `json:"status" binding:"required,oneof=Present Absent"`
}

// ListFilter is bound from the query string of list and export requests.
type ListFilter struct {
	DateFilter string `json:"date_filter" form:"date_filter" binding:"omitempty,datetime=2006-01-02"`
	EmployeeID string `json:"employee_id" form:"employee_id"`
}

type AttendanceResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	Status       Status `json:"status"`
	MarkedAt     string `json:"marked_at"`
}

type AttendanceListResponse struct {
	Records []AttendanceResponse `json:"records"`
	Total   int                  `json:"total"`
}

type AttendanceSummaryResponse struct {
	EmployeeID           string  `json:"employee_id"`
	EmployeeName         string  `json:"employee_name"`
	TotalDays            int64   `json:"total_days"`
	PresentDays          int64   `json:"present_days"`
	AbsentDays           int64   `json:"absent_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}
