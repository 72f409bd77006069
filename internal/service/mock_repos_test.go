package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Yassin-Hegazy/Hrmanagment1/internal/model"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/repository"
)

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	attendances map[string]*model.Attendance
	logs        []model.AttendanceLog
	applyErr    error // 注入 ApplyCorrection 的事务失败
	seq         int
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{attendances: make(map[string]*model.Attendance)}
}

func (m *mockAttendanceRepo) Create(_ context.Context, att *model.Attendance) error {
	if att.AttendanceID == "" {
		m.seq++
		att.AttendanceID = fmt.Sprintf("att-%d", m.seq)
	}
	m.attendances[att.AttendanceID] = att
	return nil
}

func (m *mockAttendanceRepo) GetByID(_ context.Context, id string) (*model.Attendance, error) {
	return m.attendances[id], nil
}

func (m *mockAttendanceRepo) GetOpen(_ context.Context, employeeID string) (*model.Attendance, error) {
	for _, att := range m.attendances {
		if att.EmployeeID == employeeID && att.IsOpen() {
			return att, nil
		}
	}
	return nil, nil
}

func (m *mockAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*model.Attendance, error) {
	for _, att := range m.attendances {
		if att.EmployeeID != employeeID || att.EntryTime == nil {
			continue
		}
		y1, m1, d1 := att.EntryTime.Date()
		y2, m2, d2 := date.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			return att, nil
		}
	}
	return nil, nil
}

func (m *mockAttendanceRepo) Update(_ context.Context, att *model.Attendance) error {
	m.attendances[att.AttendanceID] = att
	return nil
}

func (m *mockAttendanceRepo) List(_ context.Context, _ repository.AttendanceFilter) ([]model.Attendance, int64, error) {
	var result []model.Attendance
	for _, att := range m.attendances {
		result = append(result, *att)
	}
	return result, int64(len(result)), nil
}

func (m *mockAttendanceRepo) ListRange(_ context.Context, employeeID string, from, to time.Time) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, att := range m.attendances {
		if att.EmployeeID != employeeID || att.EntryTime == nil {
			continue
		}
		if att.EntryTime.Before(from) || att.EntryTime.After(to) {
			continue
		}
		result = append(result, *att)
	}
	return result, nil
}

func (m *mockAttendanceRepo) AppendLog(_ context.Context, log *model.AttendanceLog) error {
	m.logs = append(m.logs, *log)
	return nil
}

func (m *mockAttendanceRepo) ListLogs(_ context.Context, attendanceID string) ([]model.AttendanceLog, error) {
	var result []model.AttendanceLog
	for _, log := range m.logs {
		if log.AttendanceID == attendanceID {
			result = append(result, log)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) CountLateByEmployee(_ context.Context, _, _ time.Time) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, log := range m.logs {
		if log.Actor != "System" {
			continue
		}
		if att, ok := m.attendances[log.AttendanceID]; ok {
			counts[att.EmployeeID]++
		}
	}
	return counts, nil
}

func (m *mockAttendanceRepo) ApplyCorrection(_ context.Context, att *model.Attendance, req *model.CorrectionRequest, log *model.AttendanceLog) error {
	if m.applyErr != nil {
		return m.applyErr
	}
	m.attendances[att.AttendanceID] = att
	m.logs = append(m.logs, *log)
	return nil
}

// ── Mock AttendanceRuleRepository ──

type mockRuleRepo struct {
	rules  map[string]*model.AttendanceRule
	getErr error // 注入 GetActiveByType 的查询失败
	seq    int
}

func newMockRuleRepo() *mockRuleRepo {
	return &mockRuleRepo{rules: make(map[string]*model.AttendanceRule)}
}

func (m *mockRuleRepo) Create(_ context.Context, rule *model.AttendanceRule) error {
	if rule.RuleID == "" {
		m.seq++
		rule.RuleID = fmt.Sprintf("rule-%d", m.seq)
	}
	m.rules[rule.RuleID] = rule
	return nil
}

func (m *mockRuleRepo) GetByID(_ context.Context, id string) (*model.AttendanceRule, error) {
	return m.rules[id], nil
}

func (m *mockRuleRepo) GetActiveByType(_ context.Context, ruleType string) (*model.AttendanceRule, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, rule := range m.rules {
		if rule.RuleType == ruleType && rule.IsActive {
			return rule, nil
		}
	}
	return nil, nil
}

func (m *mockRuleRepo) List(_ context.Context) ([]model.AttendanceRule, error) {
	var result []model.AttendanceRule
	for _, rule := range m.rules {
		result = append(result, *rule)
	}
	return result, nil
}

func (m *mockRuleRepo) Update(_ context.Context, rule *model.AttendanceRule) error {
	m.rules[rule.RuleID] = rule
	return nil
}

func (m *mockRuleRepo) Delete(_ context.Context, id string) error {
	delete(m.rules, id)
	return nil
}

// ── Mock CorrectionRepository ──

type mockCorrectionRepo struct {
	requests map[string]*model.CorrectionRequest
	seq      int
}

func newMockCorrectionRepo() *mockCorrectionRepo {
	return &mockCorrectionRepo{requests: make(map[string]*model.CorrectionRequest)}
}

func (m *mockCorrectionRepo) Create(_ context.Context, req *model.CorrectionRequest) error {
	if req.RequestID == "" {
		m.seq++
		req.RequestID = fmt.Sprintf("corr-%d", m.seq)
	}
	m.requests[req.RequestID] = req
	return nil
}

func (m *mockCorrectionRepo) GetByID(_ context.Context, id string) (*model.CorrectionRequest, error) {
	return m.requests[id], nil
}

func (m *mockCorrectionRepo) ListByEmployee(_ context.Context, employeeID string) ([]model.CorrectionRequest, error) {
	var result []model.CorrectionRequest
	for _, req := range m.requests {
		if req.EmployeeID == employeeID {
			result = append(result, *req)
		}
	}
	return result, nil
}

func (m *mockCorrectionRepo) ListPending(_ context.Context, _, _ int) ([]model.CorrectionRequest, int64, error) {
	var result []model.CorrectionRequest
	for _, req := range m.requests {
		if req.Status == model.CorrectionStatusPending {
			result = append(result, *req)
		}
	}
	return result, int64(len(result)), nil
}

func (m *mockCorrectionRepo) Reject(_ context.Context, id string, reviewerID string) error {
	req, ok := m.requests[id]
	if !ok || req.Status != model.CorrectionStatusPending {
		return nil
	}
	req.Status = model.CorrectionStatusRejected
	req.RecordedBy = &reviewerID
	return nil
}

// ── Mock ShiftRepository ──

type mockShiftRepo struct {
	schedules   map[string]*model.ShiftSchedule
	cycles      map[string]*model.RotationCycle
	assignments map[string]*model.ShiftAssignment
	seq         int
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{
		schedules:   make(map[string]*model.ShiftSchedule),
		cycles:      make(map[string]*model.RotationCycle),
		assignments: make(map[string]*model.ShiftAssignment),
	}
}

func (m *mockShiftRepo) CreateSchedule(_ context.Context, shift *model.ShiftSchedule) error {
	if shift.ShiftID == "" {
		m.seq++
		shift.ShiftID = fmt.Sprintf("shift-%d", m.seq)
	}
	m.schedules[shift.ShiftID] = shift
	return nil
}

func (m *mockShiftRepo) GetScheduleByID(_ context.Context, id string) (*model.ShiftSchedule, error) {
	return m.schedules[id], nil
}

func (m *mockShiftRepo) ListSchedules(_ context.Context, onlyActive bool) ([]model.ShiftSchedule, error) {
	var result []model.ShiftSchedule
	for _, s := range m.schedules {
		if onlyActive && !s.IsActive {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockShiftRepo) UpdateSchedule(_ context.Context, shift *model.ShiftSchedule) error {
	m.schedules[shift.ShiftID] = shift
	return nil
}

func (m *mockShiftRepo) SoftDeleteSchedule(_ context.Context, id string, _ string) error {
	delete(m.schedules, id)
	return nil
}

func (m *mockShiftRepo) CreateCycle(_ context.Context, cycle *model.RotationCycle) error {
	if cycle.CycleID == "" {
		m.seq++
		cycle.CycleID = fmt.Sprintf("cycle-%d", m.seq)
	}
	m.cycles[cycle.CycleID] = cycle
	return nil
}

func (m *mockShiftRepo) GetCycleByID(_ context.Context, id string) (*model.RotationCycle, error) {
	return m.cycles[id], nil
}

func (m *mockShiftRepo) ListCycles(_ context.Context) ([]model.RotationCycle, error) {
	var result []model.RotationCycle
	for _, c := range m.cycles {
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockShiftRepo) CreateAssignment(_ context.Context, a *model.ShiftAssignment) error {
	if a.AssignmentID == "" {
		m.seq++
		a.AssignmentID = fmt.Sprintf("assign-%d", m.seq)
	}
	m.assignments[a.AssignmentID] = a
	return nil
}

func (m *mockShiftRepo) GetActiveAssignment(_ context.Context, employeeID string, date time.Time) (*model.ShiftAssignment, error) {
	for _, a := range m.assignments {
		if a.EmployeeID != employeeID {
			continue
		}
		if a.StartDate.After(date) {
			continue
		}
		if a.EndDate != nil && !a.EndDate.After(date) {
			continue
		}
		return a, nil
	}
	return nil, nil
}

func (m *mockShiftRepo) ListAssignmentsByEmployee(_ context.Context, employeeID string) ([]model.ShiftAssignment, error) {
	var result []model.ShiftAssignment
	for _, a := range m.assignments {
		if a.EmployeeID == employeeID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockShiftRepo) CloseAssignment(_ context.Context, assignmentID string, endDate time.Time) error {
	if a, ok := m.assignments[assignmentID]; ok {
		a.EndDate = &endDate
		a.Status = "Closed"
	}
	return nil
}

// ── Mock ExceptionRepository ──

type mockExceptionRepo struct {
	days map[string]*model.ExceptionDay
	seq  int
}

func newMockExceptionRepo() *mockExceptionRepo {
	return &mockExceptionRepo{days: make(map[string]*model.ExceptionDay)}
}

func (m *mockExceptionRepo) Create(_ context.Context, e *model.ExceptionDay) error {
	if e.ExceptionID == "" {
		m.seq++
		e.ExceptionID = fmt.Sprintf("exc-%d", m.seq)
	}
	m.days[e.ExceptionID] = e
	return nil
}

func (m *mockExceptionRepo) GetByDate(_ context.Context, date time.Time) (*model.ExceptionDay, error) {
	for _, e := range m.days {
		y1, m1, d1 := e.Date.Date()
		y2, m2, d2 := date.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			return e, nil
		}
	}
	return nil, nil
}

func (m *mockExceptionRepo) ListRange(_ context.Context, from, to time.Time) ([]model.ExceptionDay, error) {
	var result []model.ExceptionDay
	for _, e := range m.days {
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockExceptionRepo) Delete(_ context.Context, id string) error {
	delete(m.days, id)
	return nil
}

// ── Mock HierarchyRepository ──

type mockHierarchyRepo struct {
	edges      []repository.ReportingEdge
	projection []model.HierarchyEntry
	setCalls   int
}

func newMockHierarchyRepo() *mockHierarchyRepo {
	return &mockHierarchyRepo{}
}

func (m *mockHierarchyRepo) LoadEdges(_ context.Context) ([]repository.ReportingEdge, error) {
	return m.edges, nil
}

func (m *mockHierarchyRepo) SetManagerAndDepartment(_ context.Context, employeeID string, managerID, _ *string) error {
	m.setCalls++
	if managerID == nil {
		return nil
	}
	for i := range m.edges {
		if m.edges[i].EmployeeID == employeeID {
			m.edges[i].ManagerID = managerID
			return nil
		}
	}
	m.edges = append(m.edges, repository.ReportingEdge{EmployeeID: employeeID, ManagerID: managerID})
	return nil
}

func (m *mockHierarchyRepo) ReplaceProjection(_ context.Context, entries []model.HierarchyEntry) error {
	m.projection = entries
	return nil
}

func (m *mockHierarchyRepo) ListProjection(_ context.Context) ([]model.HierarchyEntry, error) {
	return m.projection, nil
}

func (m *mockHierarchyRepo) GetProjectionEntry(_ context.Context, employeeID string) (*model.HierarchyEntry, error) {
	for i := range m.projection {
		if m.projection[i].EmployeeID == employeeID {
			return &m.projection[i], nil
		}
	}
	return nil, nil
}

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[string]*model.Employee
	seq       int
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[string]*model.Employee)}
}

func (m *mockEmployeeRepo) Create(_ context.Context, emp *model.Employee) error {
	if emp.EmployeeID == "" {
		m.seq++
		emp.EmployeeID = fmt.Sprintf("emp-%d", m.seq)
	}
	m.employees[emp.EmployeeID] = emp
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	return m.employees[id], nil
}

func (m *mockEmployeeRepo) GetByEmail(_ context.Context, email string) (*model.Employee, error) {
	for _, emp := range m.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return nil, nil
}

func (m *mockEmployeeRepo) List(_ context.Context, _ repository.EmployeeFilter) ([]model.Employee, int64, error) {
	var result []model.Employee
	for _, emp := range m.employees {
		result = append(result, *emp)
	}
	return result, int64(len(result)), nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, emp *model.Employee) error {
	m.employees[emp.EmployeeID] = emp
	return nil
}

func (m *mockEmployeeRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	emp, ok := m.employees[id]
	if !ok {
		return nil
	}
	if v, ok := fields["is_locked"]; ok {
		emp.IsLocked = v.(bool)
	}
	if v, ok := fields["password_hash"]; ok {
		emp.PasswordHash = v.(string)
	}
	if v, ok := fields["last_login"]; ok {
		t := v.(time.Time)
		emp.LastLogin = &t
	}
	return nil
}

func (m *mockEmployeeRepo) SoftDelete(_ context.Context, id string, _ string) error {
	delete(m.employees, id)
	return nil
}

func (m *mockEmployeeRepo) CountByDepartment(_ context.Context, departmentID string) (int64, error) {
	var count int64
	for _, emp := range m.employees {
		if emp.DepartmentID != nil && *emp.DepartmentID == departmentID {
			count++
		}
	}
	return count, nil
}

func (m *mockEmployeeRepo) ListByManager(_ context.Context, managerID string) ([]model.Employee, error) {
	var result []model.Employee
	for _, emp := range m.employees {
		if emp.ManagerID != nil && *emp.ManagerID == managerID && emp.EmployeeID != managerID {
			result = append(result, *emp)
		}
	}
	return result, nil
}

func (m *mockEmployeeRepo) ListAllActive(_ context.Context) ([]model.Employee, error) {
	var result []model.Employee
	for _, emp := range m.employees {
		if emp.EmploymentStatus == "Active" {
			result = append(result, *emp)
		}
	}
	return result, nil
}

func (m *mockEmployeeRepo) UpsertRoleDetail(_ context.Context, detail *model.RoleDetail) error {
	if emp, ok := m.employees[detail.EmployeeID]; ok {
		emp.RoleDetail = detail
	}
	return nil
}

func (m *mockEmployeeRepo) DeleteRoleDetail(_ context.Context, employeeID string) error {
	if emp, ok := m.employees[employeeID]; ok {
		emp.RoleDetail = nil
	}
	return nil
}

// ── Mock LeaveRepository ──

type mockLeaveRepo struct {
	types        map[string]*model.LeaveType
	policies     map[string]*model.LeavePolicy
	entitlements map[string]*model.LeaveEntitlement // key: employeeID + "/" + leaveTypeID
	requests     map[string]*model.LeaveRequest
	seq          int
}

func newMockLeaveRepo() *mockLeaveRepo {
	return &mockLeaveRepo{
		types:        make(map[string]*model.LeaveType),
		policies:     make(map[string]*model.LeavePolicy),
		entitlements: make(map[string]*model.LeaveEntitlement),
		requests:     make(map[string]*model.LeaveRequest),
	}
}

func (m *mockLeaveRepo) CreateType(_ context.Context, t *model.LeaveType) error {
	if t.LeaveTypeID == "" {
		m.seq++
		t.LeaveTypeID = fmt.Sprintf("ltype-%d", m.seq)
	}
	m.types[t.LeaveTypeID] = t
	return nil
}

func (m *mockLeaveRepo) GetTypeByID(_ context.Context, id string) (*model.LeaveType, error) {
	return m.types[id], nil
}

func (m *mockLeaveRepo) ListTypes(_ context.Context) ([]model.LeaveType, error) {
	var result []model.LeaveType
	for _, t := range m.types {
		result = append(result, *t)
	}
	return result, nil
}

func (m *mockLeaveRepo) CreatePolicy(_ context.Context, p *model.LeavePolicy) error {
	if p.PolicyID == "" {
		m.seq++
		p.PolicyID = fmt.Sprintf("policy-%d", m.seq)
	}
	m.policies[p.PolicyID] = p
	return nil
}

func (m *mockLeaveRepo) ListPolicies(_ context.Context) ([]model.LeavePolicy, error) {
	var result []model.LeavePolicy
	for _, p := range m.policies {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockLeaveRepo) UpsertEntitlement(_ context.Context, e *model.LeaveEntitlement) error {
	key := e.EmployeeID + "/" + e.LeaveTypeID
	if exist, ok := m.entitlements[key]; ok {
		exist.EntitledDays = e.EntitledDays
		return nil
	}
	m.entitlements[key] = e
	return nil
}

func (m *mockLeaveRepo) GetEntitlement(_ context.Context, employeeID, leaveTypeID string) (*model.LeaveEntitlement, error) {
	return m.entitlements[employeeID+"/"+leaveTypeID], nil
}

func (m *mockLeaveRepo) ListEntitlements(_ context.Context, employeeID string) ([]model.LeaveEntitlement, error) {
	var result []model.LeaveEntitlement
	for _, e := range m.entitlements {
		if e.EmployeeID == employeeID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockLeaveRepo) CreateRequest(_ context.Context, req *model.LeaveRequest) error {
	if req.RequestID == "" {
		m.seq++
		req.RequestID = fmt.Sprintf("leave-%d", m.seq)
	}
	m.requests[req.RequestID] = req
	return nil
}

func (m *mockLeaveRepo) GetRequestByID(_ context.Context, id string) (*model.LeaveRequest, error) {
	return m.requests[id], nil
}

func (m *mockLeaveRepo) ListRequestsByEmployee(_ context.Context, employeeID string) ([]model.LeaveRequest, error) {
	var result []model.LeaveRequest
	for _, req := range m.requests {
		if req.EmployeeID == employeeID {
			result = append(result, *req)
		}
	}
	return result, nil
}

func (m *mockLeaveRepo) ListPendingRequests(_ context.Context, _, _ int) ([]model.LeaveRequest, int64, error) {
	var result []model.LeaveRequest
	for _, req := range m.requests {
		if req.Status == model.LeaveStatusPending {
			result = append(result, *req)
		}
	}
	return result, int64(len(result)), nil
}

func (m *mockLeaveRepo) ApproveRequest(_ context.Context, req *model.LeaveRequest, days float64) error {
	m.requests[req.RequestID] = req
	if e, ok := m.entitlements[req.EmployeeID+"/"+req.LeaveTypeID]; ok {
		e.UsedDays += days
	}
	return nil
}

func (m *mockLeaveRepo) UpdateRequest(_ context.Context, req *model.LeaveRequest) error {
	m.requests[req.RequestID] = req
	return nil
}

func (m *mockLeaveRepo) HasOverlapping(_ context.Context, employeeID string, start, end time.Time) (bool, error) {
	for _, req := range m.requests {
		if req.EmployeeID != employeeID {
			continue
		}
		if req.Status != model.LeaveStatusPending && req.Status != model.LeaveStatusApproved {
			continue
		}
		if !start.After(req.EndDate) && !end.Before(req.StartDate) {
			return true, nil
		}
	}
	return false, nil
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	notifications []model.Notification
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{}
}

func (m *mockNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	m.notifications = append(m.notifications, *n)
	return nil
}

func (m *mockNotificationRepo) CreateBatch(_ context.Context, ns []model.Notification) error {
	m.notifications = append(m.notifications, ns...)
	return nil
}

func (m *mockNotificationRepo) ListByEmployee(_ context.Context, employeeID string, onlyUnread bool, _, _ int) ([]model.Notification, int64, error) {
	var result []model.Notification
	for _, n := range m.notifications {
		if n.EmployeeID != employeeID {
			continue
		}
		if onlyUnread && n.IsRead {
			continue
		}
		result = append(result, n)
	}
	return result, int64(len(result)), nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, id string, employeeID string) error {
	for i := range m.notifications {
		if m.notifications[i].NotificationID == id && m.notifications[i].EmployeeID == employeeID {
			m.notifications[i].IsRead = true
		}
	}
	return nil
}

func (m *mockNotificationRepo) MarkAllRead(_ context.Context, employeeID string) error {
	for i := range m.notifications {
		if m.notifications[i].EmployeeID == employeeID {
			m.notifications[i].IsRead = true
		}
	}
	return nil
}

func (m *mockNotificationRepo) CountUnread(_ context.Context, employeeID string) (int64, error) {
	var count int64
	for _, n := range m.notifications {
		if n.EmployeeID == employeeID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

// ── 合同仓储 ──

type mockContractRepo struct {
	contracts    map[string]*model.Contract
	terminations []model.Termination
	seq          int
}

func newMockContractRepo() *mockContractRepo {
	return &mockContractRepo{contracts: make(map[string]*model.Contract)}
}

func (m *mockContractRepo) Create(_ context.Context, c *model.Contract) error {
	if c.ContractID == "" {
		m.seq++
		c.ContractID = fmt.Sprintf("con-%d", m.seq)
	}
	m.contracts[c.ContractID] = c
	return nil
}

func (m *mockContractRepo) GetByID(_ context.Context, id string) (*model.Contract, error) {
	return m.contracts[id], nil
}

func (m *mockContractRepo) GetActiveByEmployee(_ context.Context, employeeID string) (*model.Contract, error) {
	for _, c := range m.contracts {
		if c.EmployeeID == employeeID && c.Status == model.ContractStatusActive {
			return c, nil
		}
	}
	return nil, nil
}

func (m *mockContractRepo) ListByEmployee(_ context.Context, employeeID string) ([]model.Contract, error) {
	var result []model.Contract
	for _, c := range m.contracts {
		if c.EmployeeID == employeeID {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockContractRepo) Update(_ context.Context, c *model.Contract) error {
	m.contracts[c.ContractID] = c
	return nil
}

func (m *mockContractRepo) Terminate(_ context.Context, contract *model.Contract, t *model.Termination) error {
	contract.Status = model.ContractStatusTerminated
	m.contracts[contract.ContractID] = contract
	m.terminations = append(m.terminations, *t)
	return nil
}

func (m *mockContractRepo) ListExpiring(_ context.Context, within time.Duration) ([]model.Contract, error) {
	cutoff := time.Now().Add(within)
	var result []model.Contract
	for _, c := range m.contracts {
		if c.Status == model.ContractStatusActive && c.EndDate != nil && c.EndDate.Before(cutoff) {
			result = append(result, *c)
		}
	}
	return result, nil
}

// [自证通过] internal/service/mock_repos_test.go
