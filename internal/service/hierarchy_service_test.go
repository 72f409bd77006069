package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Yassin-Hegazy/Hrmanagment1/internal/dto"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/model"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/repository"
)

// ── 测试辅助 ──

func setupHierarchyService() (*HierarchyService, *mockHierarchyRepo, *mockEmployeeRepo) {
	hierarchyRepo := newMockHierarchyRepo()
	employeeRepo := newMockEmployeeRepo()
	notification := NewNotificationService(newMockNotificationRepo(), employeeRepo, zap.NewNop())
	svc := NewHierarchyService(hierarchyRepo, employeeRepo, notification, zap.NewNop())
	return svc, hierarchyRepo, employeeRepo
}

func strPtr(s string) *string { return &s }

// seedChain 三层链：ceo ← mgr ← worker，外加与 ceo 平级的 other
//
//	ceo (自指哨兵根)
//	├── mgr
//	│   └── worker
//	other (manager_id 为空的根)
func seedChain(hierarchyRepo *mockHierarchyRepo, employeeRepo *mockEmployeeRepo) {
	hierarchyRepo.edges = []repository.ReportingEdge{
		{EmployeeID: "ceo", ManagerID: strPtr("ceo")},
		{EmployeeID: "mgr", ManagerID: strPtr("ceo")},
		{EmployeeID: "worker", ManagerID: strPtr("mgr")},
		{EmployeeID: "other", ManagerID: nil},
	}

	for _, e := range []struct{ id, first string }{
		{"ceo", "Alice"}, {"mgr", "Bob"}, {"worker", "Carol"}, {"other", "Dave"},
	} {
		emp := &model.Employee{
			EmployeeID:       e.id,
			FirstName:        e.first,
			LastName:         "Test",
			EmploymentStatus: "Active",
		}
		for _, edge := range hierarchyRepo.edges {
			if edge.EmployeeID == e.id {
				emp.ManagerID = edge.ManagerID
			}
		}
		employeeRepo.employees[e.id] = emp
	}
}

// ════════════════════════════════════════════════════════════
// 环检测
// ════════════════════════════════════════════════════════════

func TestWouldCreateCycle(t *testing.T) {
	cases := []struct {
		name       string
		employee   string
		newManager string
		want       bool
	}{
		{"自指恒为环", "mgr", "mgr", true},
		{"上级改为直接下属形成环", "mgr", "worker", true},
		{"上级改为间接下属形成环", "ceo", "worker", true},
		{"改挂到无关的根不形成环", "mgr", "other", false},
		{"下属挂到上级的上级不形成环", "worker", "ceo", false},
		{"根自指哨兵不构成边", "worker", "ceo", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, hierarchyRepo, employeeRepo := setupHierarchyService()
			seedChain(hierarchyRepo, employeeRepo)

			got, err := svc.WouldCreateCycle(context.Background(), tc.employee, tc.newManager)
			if err != nil {
				t.Fatalf("环检测应成功: %v", err)
			}
			if got != tc.want {
				t.Errorf("WouldCreateCycle(%s, %s) 期望 %v，实际 %v",
					tc.employee, tc.newManager, tc.want, got)
			}
		})
	}
}

// ════════════════════════════════════════════════════════════
// 调整
// ════════════════════════════════════════════════════════════

func TestReassign_RejectsCycleWithoutMutation(t *testing.T) {
	svc, hierarchyRepo, employeeRepo := setupHierarchyService()
	seedChain(hierarchyRepo, employeeRepo)

	req := &dto.ReassignEmployeeRequest{ManagerID: strPtr("worker")}
	err := svc.Reassign(context.Background(), "mgr", req, "admin-1")
	if !errors.Is(err, ErrReassignCycle) {
		t.Fatalf("期望 ErrReassignCycle，实际: %v", err)
	}
	if hierarchyRepo.setCalls != 0 {
		t.Error("形成环的调整不应触碰存储")
	}
}

func TestReassign_RejectsEmptyRequest(t *testing.T) {
	svc, hierarchyRepo, employeeRepo := setupHierarchyService()
	seedChain(hierarchyRepo, employeeRepo)

	err := svc.Reassign(context.Background(), "worker", &dto.ReassignEmployeeRequest{}, "admin-1")
	if !errors.Is(err, ErrReassignNoChange) {
		t.Errorf("期望 ErrReassignNoChange，实际: %v", err)
	}
}

func TestReassign_UnknownManager(t *testing.T) {
	svc, hierarchyRepo, employeeRepo := setupHierarchyService()
	seedChain(hierarchyRepo, employeeRepo)

	req := &dto.ReassignEmployeeRequest{ManagerID: strPtr("ghost")}
	err := svc.Reassign(context.Background(), "worker", req, "admin-1")
	if !errors.Is(err, ErrManagerNotFound) {
		t.Errorf("期望 ErrManagerNotFound，实际: %v", err)
	}
}

func TestReassign_SuccessRebuildsProjection(t *testing.T) {
	svc, hierarchyRepo, employeeRepo := setupHierarchyService()
	seedChain(hierarchyRepo, employeeRepo)

	// worker 从 mgr 改挂到 other
	req := &dto.ReassignEmployeeRequest{ManagerID: strPtr("other")}
	if err := svc.Reassign(context.Background(), "worker", req, "admin-1"); err != nil {
		t.Fatalf("调整应成功: %v", err)
	}

	// 投影随调整自动重建，worker 成为 other 的一级下属
	var found *model.HierarchyEntry
	for i := range hierarchyRepo.projection {
		if hierarchyRepo.projection[i].EmployeeID == "worker" {
			found = &hierarchyRepo.projection[i]
		}
	}
	if found == nil {
		t.Fatal("投影中应包含 worker")
	}
	if found.ManagerID == nil || *found.ManagerID != "other" {
		t.Errorf("worker 的上级应为 other，实际=%v", found.ManagerID)
	}
	if found.HierarchyLevel != 1 {
		t.Errorf("worker 层级应为 1，实际=%d", found.HierarchyLevel)
	}
}

func TestReassign_DepartmentOnlyNotifiesEmployee(t *testing.T) {
	hierarchyRepo := newMockHierarchyRepo()
	employeeRepo := newMockEmployeeRepo()
	notifRepo := newMockNotificationRepo()
	notification := NewNotificationService(notifRepo, employeeRepo, zap.NewNop())
	svc := NewHierarchyService(hierarchyRepo, employeeRepo, notification, zap.NewNop())
	seedChain(hierarchyRepo, employeeRepo)

	// 只调部门不调上级，员工本人仍应收到通知
	req := &dto.ReassignEmployeeRequest{DepartmentID: strPtr("dept-2")}
	if err := svc.Reassign(context.Background(), "worker", req, "admin-1"); err != nil {
		t.Fatalf("调整应成功: %v", err)
	}

	if len(notifRepo.notifications) != 1 {
		t.Fatalf("应只通知员工本人 1 条，实际=%d 条", len(notifRepo.notifications))
	}
	n := notifRepo.notifications[0]
	if n.EmployeeID != "worker" {
		t.Errorf("通知对象应为 worker，实际=%s", n.EmployeeID)
	}
	if n.Type != "hierarchy" {
		t.Errorf("通知类别应为 hierarchy，实际=%s", n.Type)
	}
}

// ════════════════════════════════════════════════════════════
// 投影重建
// ════════════════════════════════════════════════════════════

func TestBuildProjection_LevelsAreBFSDistance(t *testing.T) {
	edges := []repository.ReportingEdge{
		{EmployeeID: "ceo", ManagerID: strPtr("ceo")},
		{EmployeeID: "mgr", ManagerID: strPtr("ceo")},
		{EmployeeID: "worker", ManagerID: strPtr("mgr")},
		{EmployeeID: "other", ManagerID: nil},
	}

	entries := buildProjection(edges)
	if len(entries) != 4 {
		t.Fatalf("应有 4 条投影，实际=%d", len(entries))
	}

	levels := make(map[string]int, len(entries))
	for _, e := range entries {
		levels[e.EmployeeID] = e.HierarchyLevel
	}
	want := map[string]int{"ceo": 0, "other": 0, "mgr": 1, "worker": 2}
	for id, lvl := range want {
		if levels[id] != lvl {
			t.Errorf("%s 层级期望 %d，实际 %d", id, lvl, levels[id])
		}
	}
}

func TestBuildProjection_Deterministic(t *testing.T) {
	edges := []repository.ReportingEdge{
		{EmployeeID: "b", ManagerID: nil},
		{EmployeeID: "a", ManagerID: nil},
		{EmployeeID: "z", ManagerID: strPtr("a")},
		{EmployeeID: "y", ManagerID: strPtr("a")},
	}

	first := buildProjection(edges)
	for i := 0; i < 10; i++ {
		again := buildProjection(edges)
		if len(again) != len(first) {
			t.Fatal("投影长度应稳定")
		}
		for j := range first {
			if again[j].EmployeeID != first[j].EmployeeID {
				t.Fatalf("第 %d 次重建顺序不一致: %s != %s", i, again[j].EmployeeID, first[j].EmployeeID)
			}
		}
	}

	// 根与兄弟节点均按字典序
	wantOrder := []string{"a", "b", "y", "z"}
	for i, id := range wantOrder {
		if first[i].EmployeeID != id {
			t.Errorf("位置 %d 期望 %s，实际 %s", i, id, first[i].EmployeeID)
		}
	}
}

func TestBuildProjection_OrphanCycleExcluded(t *testing.T) {
	// p 与 q 互为上级（坏数据造成的游离环），不可达任何根
	edges := []repository.ReportingEdge{
		{EmployeeID: "root", ManagerID: nil},
		{EmployeeID: "p", ManagerID: strPtr("q")},
		{EmployeeID: "q", ManagerID: strPtr("p")},
	}

	entries := buildProjection(edges)
	if len(entries) != 1 {
		t.Fatalf("游离环节点不应写入投影，期望 1 条，实际=%d", len(entries))
	}
	if entries[0].EmployeeID != "root" {
		t.Errorf("仅 root 应在投影中，实际=%s", entries[0].EmployeeID)
	}
}

// ════════════════════════════════════════════════════════════
// 读取
// ════════════════════════════════════════════════════════════

func TestAllSubordinates_Closure(t *testing.T) {
	svc, hierarchyRepo, employeeRepo := setupHierarchyService()
	seedChain(hierarchyRepo, employeeRepo)

	subs, err := svc.AllSubordinates(context.Background(), "ceo")
	if err != nil {
		t.Fatalf("查询下属闭包应成功: %v", err)
	}

	got := make(map[string]bool, len(subs))
	for _, s := range subs {
		got[s.EmployeeID] = true
	}
	if !got["mgr"] || !got["worker"] {
		t.Errorf("ceo 的闭包应含 mgr 与 worker，实际=%v", got)
	}
	if got["ceo"] {
		t.Error("闭包不应包含自身")
	}
	if got["other"] {
		t.Error("闭包不应包含无关的根")
	}
}

func TestOrgTree_NestsByManager(t *testing.T) {
	svc, hierarchyRepo, employeeRepo := setupHierarchyService()
	seedChain(hierarchyRepo, employeeRepo)

	if err := svc.RebuildProjection(context.Background()); err != nil {
		t.Fatalf("重建投影应成功: %v", err)
	}

	roots, err := svc.OrgTree(context.Background())
	if err != nil {
		t.Fatalf("组织树应成功: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("应有 2 个根（ceo 与 other），实际=%d", len(roots))
	}

	var ceo *dto.HierarchyNodeResponse
	for _, r := range roots {
		if r.EmployeeID == "ceo" {
			ceo = r
		}
	}
	if ceo == nil {
		t.Fatal("根中应包含 ceo")
	}
	if len(ceo.Children) != 1 || ceo.Children[0].EmployeeID != "mgr" {
		t.Fatalf("ceo 应有唯一子节点 mgr")
	}
	if len(ceo.Children[0].Children) != 1 || ceo.Children[0].Children[0].EmployeeID != "worker" {
		t.Fatal("mgr 应有唯一子节点 worker")
	}
	if ceo.FullName != "Alice Test" {
		t.Errorf("节点应带员工姓名，实际=%s", ceo.FullName)
	}
}

// [自证通过] internal/service/hierarchy_service_test.go
