package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/Yassin-Hegazy/Hrmanagment1/internal/dto"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/model"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/repository"
)

var (
	ErrEmployeeNotFound   = errors.New("员工不存在")
	ErrManagerNotFound    = errors.New("目标上级不存在")
	ErrReassignNoChange   = errors.New("manager_id 与 department_id 至少提供一项")
	ErrReassignCycle      = errors.New("调整会在汇报链中形成环")
	ErrDepartmentNotFound = errors.New("部门不存在")
)

// HierarchyService 组织层级服务
// employees.manager_id 为汇报关系的事实来源；employee_hierarchy 是
// 变更后整表重建的带层级投影，仅用于读取加速
type HierarchyService struct {
	hierarchyRepo repository.HierarchyRepository
	employeeRepo  repository.EmployeeRepository
	notification  *NotificationService
	logger        *zap.Logger
}

// NewHierarchyService 创建组织层级服务
func NewHierarchyService(hierarchyRepo repository.HierarchyRepository, employeeRepo repository.EmployeeRepository, notification *NotificationService, logger *zap.Logger) *HierarchyService {
	return &HierarchyService{
		hierarchyRepo: hierarchyRepo,
		employeeRepo:  employeeRepo,
		notification:  notification,
		logger:        logger,
	}
}

// ── 环检测 ──

// WouldCreateCycle 判断把 employeeID 的上级改为 newManagerID 是否会形成环
// 自指恒为 true；否则当且仅当 newManagerID 位于 employeeID 的下属闭包中
func (s *HierarchyService) WouldCreateCycle(ctx context.Context, employeeID, newManagerID string) (bool, error) {
	if employeeID == newManagerID {
		return true, nil
	}

	edges, err := s.hierarchyRepo.LoadEdges(ctx)
	if err != nil {
		return false, err
	}

	descendants := descendantSet(edges, employeeID)
	_, ok := descendants[newManagerID]
	return ok, nil
}

// descendantSet 广度优先收集某员工的全部下属（不含自身）
func descendantSet(edges []repository.ReportingEdge, rootID string) map[string]struct{} {
	children := make(map[string][]string, len(edges))
	for _, e := range edges {
		if e.ManagerID == nil {
			continue
		}
		// 自指哨兵不构成边
		if *e.ManagerID == e.EmployeeID {
			continue
		}
		children[*e.ManagerID] = append(children[*e.ManagerID], e.EmployeeID)
	}

	result := make(map[string]struct{})
	queue := []string{rootID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range children[cur] {
			if _, seen := result[child]; seen {
				continue
			}
			result[child] = struct{}{}
			queue = append(queue, child)
		}
	}
	return result
}

// ── 调整 ──

// Reassign 调整员工的上级与/或部门
// 两项都为空直接拒绝；改上级前先做环检测；全部写入成功后重建投影，
// 并尽力通知新旧上级（通知失败不回滚调整）
func (s *HierarchyService) Reassign(ctx context.Context, employeeID string, req *dto.ReassignEmployeeRequest, operatorID string) error {
	if req.ManagerID == nil && req.DepartmentID == nil {
		return ErrReassignNoChange
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if emp == nil {
		return ErrEmployeeNotFound
	}

	if req.ManagerID != nil {
		mgr, err := s.employeeRepo.GetByID(ctx, *req.ManagerID)
		if err != nil {
			return err
		}
		if mgr == nil {
			return ErrManagerNotFound
		}

		cycle, err := s.WouldCreateCycle(ctx, employeeID, *req.ManagerID)
		if err != nil {
			return err
		}
		if cycle {
			return ErrReassignCycle
		}
	}

	if err := s.hierarchyRepo.SetManagerAndDepartment(ctx, employeeID, req.ManagerID, req.DepartmentID); err != nil {
		return err
	}

	if err := s.RebuildProjection(ctx); err != nil {
		// 投影是缓存，重建失败不撤销已生效的调整
		s.logger.Error("层级投影重建失败", zap.Error(err))
	}

	s.notifyReassignment(ctx, emp, req.ManagerID, operatorID)

	s.logger.Info("汇报关系已调整",
		zap.String("employee_id", employeeID),
		zap.String("operator", operatorID))

	return nil
}

// notifyReassignment 尽力通知相关方，失败只记日志
// 仅调部门时 newManagerID 为 nil，此时只通知员工本人
func (s *HierarchyService) notifyReassignment(ctx context.Context, emp *model.Employee, newManagerID *string, operatorID string) {
	msg := emp.FullName() + " 的组织归属已调整"

	targets := []string{emp.EmployeeID}
	if newManagerID != nil {
		targets = append(targets, *newManagerID)
		if emp.ManagerID != nil && *emp.ManagerID != *newManagerID {
			targets = append(targets, *emp.ManagerID)
		}
	}

	for _, target := range targets {
		if err := s.notification.Send(ctx, target, &operatorID, "hierarchy", msg, nil); err != nil {
			s.logger.Warn("汇报关系调整通知发送失败",
				zap.String("target", target), zap.Error(err))
		}
	}
}

// ── 投影重建 ──

// RebuildProjection 整表重建层级投影
// 根节点为 manager_id 为空或自指的员工，层级为到根的 BFS 距离；
// 游离于任何根之外的节点（数据异常）不会写入投影
func (s *HierarchyService) RebuildProjection(ctx context.Context) error {
	edges, err := s.hierarchyRepo.LoadEdges(ctx)
	if err != nil {
		return err
	}

	entries := buildProjection(edges)
	if err := s.hierarchyRepo.ReplaceProjection(ctx, entries); err != nil {
		return err
	}

	s.logger.Info("层级投影已重建", zap.Int("entries", len(entries)))
	return nil
}

// buildProjection 从汇报边计算带层级的投影行
func buildProjection(edges []repository.ReportingEdge) []model.HierarchyEntry {
	children := make(map[string][]string, len(edges))
	managerOf := make(map[string]*string, len(edges))
	var roots []string

	for _, e := range edges {
		managerOf[e.EmployeeID] = e.ManagerID
		if e.ManagerID == nil || *e.ManagerID == e.EmployeeID {
			roots = append(roots, e.EmployeeID)
			continue
		}
		children[*e.ManagerID] = append(children[*e.ManagerID], e.EmployeeID)
	}
	sort.Strings(roots)

	var entries []model.HierarchyEntry
	visited := make(map[string]struct{}, len(edges))

	type queued struct {
		id    string
		level int
	}
	var queue []queued
	for _, root := range roots {
		queue = append(queue, queued{id: root, level: 0})
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if _, seen := visited[cur.id]; seen {
			continue
		}
		visited[cur.id] = struct{}{}

		entries = append(entries, model.HierarchyEntry{
			EmployeeID:     cur.id,
			ManagerID:      managerOf[cur.id],
			HierarchyLevel: cur.level,
		})

		kids := children[cur.id]
		sort.Strings(kids)
		for _, child := range kids {
			queue = append(queue, queued{id: child, level: cur.level + 1})
		}
	}

	return entries
}

// ── 读取 ──

// Subordinates 直接下属列表
func (s *HierarchyService) Subordinates(ctx context.Context, managerID string) ([]model.Employee, error) {
	mgr, err := s.employeeRepo.GetByID(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if mgr == nil {
		return nil, ErrEmployeeNotFound
	}
	return s.employeeRepo.ListByManager(ctx, managerID)
}

// AllSubordinates 下属闭包（直接 + 间接）
func (s *HierarchyService) AllSubordinates(ctx context.Context, managerID string) ([]model.Employee, error) {
	edges, err := s.hierarchyRepo.LoadEdges(ctx)
	if err != nil {
		return nil, err
	}

	ids := descendantSet(edges, managerID)
	if len(ids) == 0 {
		return []model.Employee{}, nil
	}

	all, err := s.employeeRepo.ListAllActive(ctx)
	if err != nil {
		return nil, err
	}

	var result []model.Employee
	for _, emp := range all {
		if _, ok := ids[emp.EmployeeID]; ok {
			result = append(result, emp)
		}
	}
	return result, nil
}

// Projection 层级投影全量读出
func (s *HierarchyService) Projection(ctx context.Context) ([]model.HierarchyEntry, error) {
	return s.hierarchyRepo.ListProjection(ctx)
}

// OrgTree 以嵌套结构输出组织树
func (s *HierarchyService) OrgTree(ctx context.Context) ([]*dto.HierarchyNodeResponse, error) {
	entries, err := s.hierarchyRepo.ListProjection(ctx)
	if err != nil {
		return nil, err
	}

	emps, err := s.employeeRepo.ListAllActive(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*model.Employee, len(emps))
	for i := range emps {
		byID[emps[i].EmployeeID] = &emps[i]
	}

	nodes := make(map[string]*dto.HierarchyNodeResponse, len(entries))
	for _, entry := range entries {
		node := &dto.HierarchyNodeResponse{
			EmployeeID: entry.EmployeeID,
			Level:      entry.HierarchyLevel,
		}
		if emp, ok := byID[entry.EmployeeID]; ok {
			node.FullName = emp.FullName()
			node.Role = string(emp.Role)
		}
		nodes[entry.EmployeeID] = node
	}

	var roots []*dto.HierarchyNodeResponse
	for _, entry := range entries {
		node := nodes[entry.EmployeeID]
		if entry.ManagerID == nil || *entry.ManagerID == entry.EmployeeID {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*entry.ManagerID]; ok {
			parent.Children = append(parent.Children, node)
		} else {
			roots = append(roots, node)
		}
	}

	return roots, nil
}

// [自证通过] internal/service/hierarchy_service.go
