package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Yassin-Hegazy/Hrmanagment1/config"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/dto"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/model"
	"github.com/Yassin-Hegazy/Hrmanagment1/pkg/jwt"
)

// ── 测试辅助 ──

func setupAuthService(t *testing.T) (*AuthService, *mockEmployeeRepo, *jwt.Manager) {
	t.Helper()
	authCfg := &config.AuthConfig{
		JWTSecret:               "test-secret-not-for-production",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTLDefault:  7 * 24 * time.Hour,
		RefreshTokenTTLRemember: 30 * 24 * time.Hour,
	}
	jwtMgr := jwt.NewManager(authCfg)
	employeeRepo := newMockEmployeeRepo()
	// rdb 为 nil 即 Redis 降级模式：黑名单跳过，Token 按自然过期失效
	svc := NewAuthService(employeeRepo, jwtMgr, nil, authCfg, zap.NewNop())
	return svc, employeeRepo, jwtMgr
}

func seedAuthEmployee(t *testing.T, employeeRepo *mockEmployeeRepo, password string) *model.Employee {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("生成密码哈希失败: %v", err)
	}
	emp := &model.Employee{
		EmployeeID:       "emp-auth-1",
		FirstName:        "Nora",
		LastName:         "Said",
		Email:            "nora@example.com",
		EmploymentStatus: "Active",
		Role:             model.RoleEmployee,
		PasswordHash:     string(hash),
	}
	employeeRepo.employees[emp.EmployeeID] = emp
	return emp
}

// ════════════════════════════════════════════════════════════
// 登录
// ════════════════════════════════════════════════════════════

func TestLogin_Success(t *testing.T) {
	svc, employeeRepo, jwtMgr := setupAuthService(t)
	emp := seedAuthEmployee(t, employeeRepo, "secret123")

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nora@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("登录应成功: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("登录应返回 access 与 refresh token")
	}
	if resp.ExpiresIn != int((15 * time.Minute).Seconds()) {
		t.Errorf("expires_in 期望 900，实际=%d", resp.ExpiresIn)
	}
	if resp.Employee.ID != emp.EmployeeID {
		t.Errorf("应返回员工简要信息，实际 ID=%s", resp.Employee.ID)
	}

	claims, err := jwtMgr.ParseToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("签发的 access token 应可解析: %v", err)
	}
	if claims.TokenType != "access" || claims.EmployeeID != emp.EmployeeID {
		t.Errorf("access token 声明不符: type=%s employee=%s", claims.TokenType, claims.EmployeeID)
	}

	if emp.LastLogin == nil {
		t.Error("登录成功应更新最后登录时间")
	}
}

func TestLogin_Rejections(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*model.Employee)
		email    string
		password string
		want     error
	}{
		{"密码错误", nil, "nora@example.com", "wrong-pass", ErrInvalidCredentials},
		{"邮箱不存在", nil, "ghost@example.com", "secret123", ErrInvalidCredentials},
		{"账号被锁定", func(e *model.Employee) { e.IsLocked = true }, "nora@example.com", "secret123", ErrAccountLocked},
		{"账号已停用", func(e *model.Employee) { e.EmploymentStatus = "Terminated" }, "nora@example.com", "secret123", ErrAccountInactive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, employeeRepo, _ := setupAuthService(t)
			emp := seedAuthEmployee(t, employeeRepo, "secret123")
			if tc.mutate != nil {
				tc.mutate(emp)
			}

			_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: tc.email, Password: tc.password})
			if !errors.Is(err, tc.want) {
				t.Errorf("期望 %v，实际: %v", tc.want, err)
			}
		})
	}
}

// ════════════════════════════════════════════════════════════
// 刷新与注销
// ════════════════════════════════════════════════════════════

func TestRefresh_IssuesNewPair(t *testing.T) {
	svc, employeeRepo, jwtMgr := setupAuthService(t)
	seedAuthEmployee(t, employeeRepo, "secret123")

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nora@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("登录应成功: %v", err)
	}

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("刷新应成功: %v", err)
	}
	claims, err := jwtMgr.ParseToken(refreshed.RefreshToken)
	if err != nil {
		t.Fatalf("新 refresh token 应可解析: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("期望 refresh token，实际 type=%s", claims.TokenType)
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc, employeeRepo, _ := setupAuthService(t)
	seedAuthEmployee(t, employeeRepo, "secret123")

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nora@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("登录应成功: %v", err)
	}

	// access token 不能用于刷新
	if _, err := svc.Refresh(context.Background(), login.AccessToken); !errors.Is(err, ErrRefreshInvalid) {
		t.Errorf("期望 ErrRefreshInvalid，实际: %v", err)
	}
}

func TestRefresh_RejectsGarbage(t *testing.T) {
	svc, employeeRepo, _ := setupAuthService(t)
	seedAuthEmployee(t, employeeRepo, "secret123")

	if _, err := svc.Refresh(context.Background(), "not-a-jwt"); !errors.Is(err, ErrRefreshInvalid) {
		t.Errorf("期望 ErrRefreshInvalid，实际: %v", err)
	}
}

func TestRefresh_RejectsLockedEmployee(t *testing.T) {
	svc, employeeRepo, _ := setupAuthService(t)
	emp := seedAuthEmployee(t, employeeRepo, "secret123")

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nora@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("登录应成功: %v", err)
	}

	// 持有有效 refresh token 期间账号被锁定
	emp.IsLocked = true
	if _, err := svc.Refresh(context.Background(), login.RefreshToken); !errors.Is(err, ErrRefreshInvalid) {
		t.Errorf("期望 ErrRefreshInvalid，实际: %v", err)
	}
}

func TestLogout_NilRedisIsNoop(t *testing.T) {
	svc, employeeRepo, jwtMgr := setupAuthService(t)
	seedAuthEmployee(t, employeeRepo, "secret123")

	token, err := jwtMgr.GenerateAccessToken("emp-auth-1", "Employee", "")
	if err != nil {
		t.Fatalf("签发 token 应成功: %v", err)
	}
	claims, err := jwtMgr.ParseToken(token)
	if err != nil {
		t.Fatalf("解析 token 应成功: %v", err)
	}

	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Errorf("降级模式下注销应为空操作: %v", err)
	}
}

// ════════════════════════════════════════════════════════════
// 修改密码
// ════════════════════════════════════════════════════════════

func TestChangePassword(t *testing.T) {
	svc, employeeRepo, _ := setupAuthService(t)
	emp := seedAuthEmployee(t, employeeRepo, "secret123")

	err := svc.ChangePassword(context.Background(), emp.EmployeeID, &dto.ChangePasswordRequest{
		OldPassword: "wrong-pass",
		NewPassword: "brand-new-pass",
	})
	if !errors.Is(err, ErrOldPasswordWrong) {
		t.Fatalf("原密码错误应拒绝，实际: %v", err)
	}

	err = svc.ChangePassword(context.Background(), emp.EmployeeID, &dto.ChangePasswordRequest{
		OldPassword: "secret123",
		NewPassword: "brand-new-pass",
	})
	if err != nil {
		t.Fatalf("修改密码应成功: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte("brand-new-pass")); err != nil {
		t.Error("新密码应能通过校验")
	}

	// 旧密码随即失效
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nora@example.com",
		Password: "secret123",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("旧密码登录应被拒绝，实际: %v", err)
	}
}

// [自证通过] internal/service/auth_service_test.go
