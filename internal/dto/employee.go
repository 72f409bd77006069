package dto

// ── 员工模块 DTO ──

// EmployeeListRequest 员工列表查询参数
type EmployeeListRequest struct {
	PaginationRequest
	DepartmentID string `form:"department_id" binding:"omitempty,uuid"`
	Role         string `form:"role"          binding:"omitempty,oneof=Employee Manager HRAdmin SystemAdmin PayrollSpecialist"`
	Keyword      string `form:"keyword"       binding:"omitempty,max=100"`
}

// CreateEmployeeRequest 创建员工请求（管理员操作）
type CreateEmployeeRequest struct {
	FirstName      string  `json:"first_name"      binding:"required,min=1,max=100"`
	LastName       string  `json:"last_name"       binding:"required,min=1,max=100"`
	Email          string  `json:"email"           binding:"required,email"`
	Password       string  `json:"password"        binding:"required,min=8,max=72"`
	NationalID     string  `json:"national_id"     binding:"omitempty,max=50"`
	Phone          string  `json:"phone"           binding:"omitempty,max=50"`
	Gender         string  `json:"gender"          binding:"omitempty,oneof=Male Female Other"`
	DateOfBirth    string  `json:"date_of_birth"   binding:"omitempty,datetime=2006-01-02"`
	HireDate       string  `json:"hire_date"       binding:"omitempty,datetime=2006-01-02"`
	EmploymentType string  `json:"employment_type" binding:"omitempty,oneof=FullTime PartTime Contract"`
	PositionTitle  string  `json:"position_title"  binding:"omitempty,max=100"`
	Role           string  `json:"role"            binding:"omitempty,oneof=Employee Manager HRAdmin SystemAdmin PayrollSpecialist"`
	DepartmentID   *string `json:"department_id"   binding:"omitempty,uuid"`
	ManagerID      *string `json:"manager_id"      binding:"omitempty,uuid"`
}

// UpdateEmployeeRequest 更新员工资料请求
type UpdateEmployeeRequest struct {
	FirstName     *string `json:"first_name"     binding:"omitempty,min=1,max=100"`
	LastName      *string `json:"last_name"      binding:"omitempty,min=1,max=100"`
	Email         *string `json:"email"          binding:"omitempty,email"`
	Phone         *string `json:"phone"          binding:"omitempty,max=50"`
	Address       *string `json:"address"        binding:"omitempty,max=500"`
	Biography     *string `json:"biography"      binding:"omitempty,max=2000"`
	PositionTitle *string `json:"position_title" binding:"omitempty,max=100"`
}

// AssignRoleRequest 分配角色请求
// 附加属性按角色变体闭集决定适用组
type AssignRoleRequest struct {
	Role           string `json:"role"            binding:"required,oneof=Employee Manager HRAdmin SystemAdmin PayrollSpecialist"`
	ApprovalLevel  string `json:"approval_level"  binding:"omitempty,max=50"`
	AccessScope    string `json:"access_scope"    binding:"omitempty,max=50"`
	PrivilegeLevel string `json:"privilege_level" binding:"omitempty,max=50"`
}

// EmployeeDetailResponse 员工详情响应
type EmployeeDetailResponse struct {
	ID                string              `json:"id"`
	FirstName         string              `json:"first_name"`
	LastName          string              `json:"last_name"`
	FullName          string              `json:"full_name"`
	Email             string              `json:"email"`
	Phone             string              `json:"phone,omitempty"`
	Address           string              `json:"address,omitempty"`
	Gender            string              `json:"gender,omitempty"`
	DateOfBirth       string              `json:"date_of_birth,omitempty"`
	HireDate          string              `json:"hire_date,omitempty"`
	EmploymentType    string              `json:"employment_type,omitempty"`
	EmploymentStatus  string              `json:"employment_status"`
	PositionTitle     string              `json:"position_title,omitempty"`
	Role              string              `json:"role"`
	RoleDetailGroup   string              `json:"role_detail_group,omitempty"`
	Department        *DepartmentResponse `json:"department,omitempty"`
	ManagerID         string              `json:"manager_id,omitempty"`
	ManagerName       string              `json:"manager_name,omitempty"`
	ProfileCompletion int                 `json:"profile_completion"`
	IsLocked          bool                `json:"is_locked"`
	CreatedAt         string              `json:"created_at"`
	UpdatedAt         string              `json:"updated_at"`
}

// [自证通过] internal/dto/employee.go
