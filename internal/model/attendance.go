package model

import "time"

// Attendance 考勤记录表 — 对应 attendances
// 生命周期：签到时创建（仅 entry_time），签退时原地更新（补 exit_time 与 duration）
// 同一员工同一时刻至多存在一条 exit_time 为空的"打开"记录
type Attendance struct {
	AttendanceID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`
	EmployeeID   string     `gorm:"type:uuid;not null"                             json:"employee_id"`
	ShiftID      *string    `gorm:"type:uuid"                                      json:"shift_id,omitempty"`
	EntryTime    *time.Time `json:"entry_time,omitempty"`
	ExitTime     *time.Time `json:"exit_time,omitempty"`
	Duration     *float64   `gorm:"type:numeric(6,2)"                              json:"duration,omitempty"` // 小时
	LoginMethod  string     `gorm:"type:varchar(30)"                               json:"login_method,omitempty"`
	LogoutMethod string     `gorm:"type:varchar(30)"                               json:"logout_method,omitempty"`
	ExceptionID  *string    `gorm:"type:uuid"                                      json:"exception_id,omitempty"`
	CreatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`

	// 关联
	Employee *Employee      `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`
	Shift    *ShiftSchedule `gorm:"foreignKey:ShiftID;references:ShiftID"       json:"shift,omitempty"`
}

// TableName 指定表名
func (Attendance) TableName() string { return "attendances" }

// IsOpen 是否为打开状态（已签到未签退）
func (a *Attendance) IsOpen() bool {
	return a.EntryTime != nil && a.ExitTime == nil
}

// AttendanceLog 考勤审计日志表 — 对应 attendance_logs（仅追加，不可变）
type AttendanceLog struct {
	LogID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"log_id"`
	AttendanceID string    `gorm:"type:uuid;not null"                             json:"attendance_id"`
	Actor        string    `gorm:"type:varchar(100);not null"                     json:"actor"`
	Timestamp    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"timestamp"`
	Reason       string    `gorm:"type:varchar(500);not null"                     json:"reason"`
}

// TableName 指定表名
func (AttendanceLog) TableName() string { return "attendance_logs" }

// 考勤规则类型闭集
const (
	RuleTypeGracePeriod     = "GracePeriod"
	RuleTypeLatenessPenalty = "LatenessPenalty"
	RuleTypeShortTime       = "ShortTime"
)

// AttendanceRule 考勤规则表 — 对应 attendance_rules
type AttendanceRule struct {
	RuleID           string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"rule_id"`
	RuleType         string   `gorm:"type:varchar(30);not null"                      json:"rule_type"`
	RuleName         string   `gorm:"type:varchar(100);not null"                     json:"rule_name"`
	ThresholdMinutes *int     `json:"threshold_minutes,omitempty"`
	PenaltyAmount    *float64 `gorm:"type:numeric(10,2)"                             json:"penalty_amount,omitempty"`
	Description      string   `gorm:"type:text"                                      json:"description,omitempty"`
	IsActive         bool     `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName 指定表名
func (AttendanceRule) TableName() string { return "attendance_rules" }

// 补卡申请类型与状态闭集
const (
	CorrectionTypeCheckIn  = "CheckIn"
	CorrectionTypeCheckOut = "CheckOut"
	CorrectionTypeBoth     = "Both"

	CorrectionStatusPending  = "Pending"
	CorrectionStatusApproved = "Approved"
	CorrectionStatusRejected = "Rejected"
)

// CorrectionRequest 补卡申请表 — 对应 correction_requests
// 状态机：Pending → Approved | Rejected，恰好流转一次
type CorrectionRequest struct {
	RequestID      string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"request_id"`
	EmployeeID     string     `gorm:"type:uuid;not null"                             json:"employee_id"`
	Date           time.Time  `gorm:"type:date;not null"                             json:"date"`
	CorrectionType string     `gorm:"type:varchar(20);not null"                      json:"correction_type"`
	Reason         string     `gorm:"type:varchar(500);not null"                     json:"reason"`
	Status         string     `gorm:"type:varchar(20);not null;default:'Pending'"    json:"status"`
	ProposedTime   *time.Time `json:"proposed_time,omitempty"`
	RecordedBy     *string    `gorm:"type:uuid"                                      json:"recorded_by,omitempty"`
	CreatedAt      time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt      time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`

	// 关联
	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`
}

// TableName 指定表名
func (CorrectionRequest) TableName() string { return "correction_requests" }

// [自证通过] internal/model/attendance.go
