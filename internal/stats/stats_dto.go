package stats

type StatsResponse struct {
	TotalEmployees         int64 `json:"total_employees"`
	TotalAttendanceRecords int64 `json:"total_attendance_records"`
	PresentCount           int64 `json:"present_count"`
	AbsentCount            int64 `json:"absent_count"`
}
