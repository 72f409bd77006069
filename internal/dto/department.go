package dto

// ── 部门模块 DTO ──

// CreateDepartmentRequest 创建部门请求
type CreateDepartmentRequest struct {
	Name        string `json:"name"        binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// UpdateDepartmentRequest 更新部门请求
type UpdateDepartmentRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

// DepartmentListRequest 部门列表查询参数
type DepartmentListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// AssignHeadRequest 指定部门负责人请求
type AssignHeadRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}

// DepartmentDetailResponse 部门详情响应
type DepartmentDetailResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	HeadID      string `json:"head_id,omitempty"`
	HeadName    string `json:"head_name,omitempty"`
	IsActive    bool   `json:"is_active"`
	MemberCount int64  `json:"member_count"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// DepartmentMemberResponse 部门成员响应
type DepartmentMemberResponse struct {
	EmployeeID    string `json:"employee_id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	PositionTitle string `json:"position_title,omitempty"`
	ManagerID     string `json:"manager_id,omitempty"`
}

// [自证通过] internal/dto/department.go
