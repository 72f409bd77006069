package model

import "time"

// RoleKind 系统内角色变体的闭集
// 角色附加属性组在角色分配时按此枚举一次性决定，不做运行时字符串模糊匹配
type RoleKind string

const (
	RoleEmployee          RoleKind = "Employee"
	RoleManager           RoleKind = "Manager"
	RoleHRAdmin           RoleKind = "HRAdmin"
	RoleSystemAdmin       RoleKind = "SystemAdmin"
	RolePayrollSpecialist RoleKind = "PayrollSpecialist"
)

// Valid 角色是否属于闭集
func (r RoleKind) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleHRAdmin, RoleSystemAdmin, RolePayrollSpecialist:
		return true
	}
	return false
}

// DetailGroup 角色变体 → 附加属性组的全映射
// 普通员工与经理没有附加属性组
func (r RoleKind) DetailGroup() string {
	switch r {
	case RoleHRAdmin:
		return "hr_admin"
	case RoleSystemAdmin:
		return "system_admin"
	case RolePayrollSpecialist:
		return "payroll"
	default:
		return ""
	}
}

// Employee 员工表 — 对应 employees
type Employee struct {
	EmployeeID        string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_id"`
	FirstName         string     `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName          string     `gorm:"type:varchar(100);not null"                     json:"last_name"`
	NationalID        string     `gorm:"type:varchar(50)"                               json:"national_id,omitempty"`
	Email             string     `gorm:"type:varchar(255);not null"                     json:"email"`
	Phone             string     `gorm:"type:varchar(50)"                               json:"phone,omitempty"`
	Address           string     `gorm:"type:text"                                      json:"address,omitempty"`
	Gender            string     `gorm:"type:varchar(20)"                               json:"gender,omitempty"`
	DateOfBirth       *time.Time `gorm:"type:date"                                      json:"date_of_birth,omitempty"`
	HireDate          *time.Time `gorm:"type:date"                                      json:"hire_date,omitempty"`
	EmploymentType    string     `gorm:"type:varchar(30)"                               json:"employment_type,omitempty"` // FullTime | PartTime | Contract
	EmploymentStatus  string     `gorm:"type:varchar(30);not null;default:'Active'"     json:"employment_status"`
	PositionTitle     string     `gorm:"type:varchar(100)"                              json:"position_title,omitempty"`
	ProfileImage      string     `gorm:"type:varchar(500)"                              json:"profile_image,omitempty"`
	Biography         string     `gorm:"type:text"                                      json:"biography,omitempty"`
	ProfileCompletion int        `gorm:"type:smallint;not null;default:0"               json:"profile_completion"`
	Role              RoleKind   `gorm:"type:varchar(30);not null;default:'Employee'"   json:"role"`
	DepartmentID      *string    `gorm:"type:uuid"                                      json:"department_id,omitempty"`
	ManagerID         *string    `gorm:"type:uuid"                                      json:"manager_id,omitempty"`
	PasswordHash      string     `gorm:"type:varchar(255)"                              json:"-"`
	IsLocked          bool       `gorm:"not null;default:false"                         json:"is_locked"`
	LastLogin         *time.Time `json:"last_login,omitempty"`
	SoftDeleteModel

	// 关联
	Department *Department `gorm:"foreignKey:DepartmentID;references:DepartmentID" json:"department,omitempty"`
	Manager    *Employee   `gorm:"foreignKey:ManagerID;references:EmployeeID"      json:"manager,omitempty"`
	RoleDetail *RoleDetail `gorm:"foreignKey:EmployeeID;references:EmployeeID"     json:"role_detail,omitempty"`
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }

// FullName 姓名拼接
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// RoleDetail 角色附加属性表 — 对应 role_details（与 employees 1:1）
// detail_group 由 RoleKind.DetailGroup 在角色分配时写入
type RoleDetail struct {
	EmployeeID     string    `gorm:"type:uuid;primaryKey"               json:"employee_id"`
	Role           RoleKind  `gorm:"type:varchar(30);not null"          json:"role"`
	DetailGroup    string    `gorm:"type:varchar(30);not null"          json:"detail_group"`
	ApprovalLevel  string    `gorm:"type:varchar(50)"                   json:"approval_level,omitempty"`
	AccessScope    string    `gorm:"type:varchar(50)"                   json:"access_scope,omitempty"`
	PrivilegeLevel string    `gorm:"type:varchar(50)"                   json:"privilege_level,omitempty"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName 指定表名
func (RoleDetail) TableName() string { return "role_details" }

// [自证通过] internal/model/employee.go
