package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yassin-Hegazy/Hrmanagment1/internal/dto"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/service"
	"github.com/Yassin-Hegazy/Hrmanagment1/pkg/response"
)

// AttendanceHandler 考勤模块 HTTP 处理器
type AttendanceHandler struct {
	attSvc    *service.AttendanceService
	exportSvc *service.ExportService
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(attSvc *service.AttendanceService, exportSvc *service.ExportService) *AttendanceHandler {
	return &AttendanceHandler{attSvc: attSvc, exportSvc: exportSvc}
}

// Clock 打卡（签到/签退由服务端判定）
// POST /api/v1/attendance/clock
func (h *AttendanceHandler) Clock(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	var req dto.ClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.attSvc.RecordClock(c.Request.Context(), employeeID, &req)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OK(c, result)
}

// ListAttendance 考勤记录列表
// GET /api/v1/attendance
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	var req dto.AttendanceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, total, err := h.attSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// GetAttendance 考勤详情
// GET /api/v1/attendance/:id
func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "考勤ID不能为空")
		return
	}

	att, err := h.attSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OK(c, att)
}

// ListLogs 考勤审计日志
// GET /api/v1/attendance/:id/logs
func (h *AttendanceHandler) ListLogs(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "考勤ID不能为空")
		return
	}

	logs, err := h.attSvc.ListLogs(c.Request.Context(), id)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": logs})
}

// ── 考勤规则 ──

// ListRules 考勤规则列表
// GET /api/v1/attendance-rules
func (h *AttendanceHandler) ListRules(c *gin.Context) {
	rules, err := h.attSvc.ListRules(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": rules})
}

// CreateRule 创建考勤规则
// POST /api/v1/attendance-rules
func (h *AttendanceHandler) CreateRule(c *gin.Context) {
	var req dto.CreateAttendanceRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	rule, err := h.attSvc.CreateRule(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.Created(c, rule)
}

// UpdateRule 更新考勤规则
// PUT /api/v1/attendance-rules/:id
func (h *AttendanceHandler) UpdateRule(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "规则ID不能为空")
		return
	}

	var req dto.UpdateAttendanceRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	rule, err := h.attSvc.UpdateRule(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OK(c, rule)
}

// DeleteRule 删除考勤规则
// DELETE /api/v1/attendance-rules/:id
func (h *AttendanceHandler) DeleteRule(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "规则ID不能为空")
		return
	}

	if err := h.attSvc.DeleteRule(c.Request.Context(), id); err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OK(c, nil)
}

// ── 补卡工作流 ──

// SubmitCorrection 发起补卡申请
// POST /api/v1/corrections
func (h *AttendanceHandler) SubmitCorrection(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	var req dto.CreateCorrectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	correction, err := h.attSvc.SubmitCorrection(c.Request.Context(), employeeID, &req)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.Created(c, correction)
}

// ListMyCorrections 自己的补卡申请
// GET /api/v1/corrections/mine
func (h *AttendanceHandler) ListMyCorrections(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	list, err := h.attSvc.ListCorrectionsByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// ListPendingCorrections 待审批补卡申请
// GET /api/v1/corrections/pending
func (h *AttendanceHandler) ListPendingCorrections(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, total, err := h.attSvc.ListPendingCorrections(c.Request.Context(), req.GetPage(), req.GetPageSize())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// ReviewCorrection 审批补卡申请
// PUT /api/v1/corrections/:id/review
func (h *AttendanceHandler) ReviewCorrection(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "申请ID不能为空")
		return
	}

	var req dto.ReviewCorrectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	correction, err := h.attSvc.ReviewCorrection(c.Request.Context(), id, callerID, req.Approve)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OK(c, correction)
}

// ── 导出 ──

// ExportAttendance 导出考勤 Excel
// GET /api/v1/attendance/export?start_date=&end_date=&employee_id=
func (h *AttendanceHandler) ExportAttendance(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		response.BadRequest(c, 10001, "start_date 格式无效")
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		response.BadRequest(c, 10001, "end_date 格式无效")
		return
	}

	buf, err := h.exportSvc.AttendanceSheet(c.Request.Context(), c.Query("employee_id"), from, to)
	if err != nil {
		response.InternalError(c)
		return
	}

	filename := fmt.Sprintf("attendance_%s_%s.xlsx", from.Format("20060102"), to.Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// handleAttendanceError 统一处理考勤模块业务错误
func (h *AttendanceHandler) handleAttendanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAttendanceNotFound):
		response.NotFound(c, 15001, "考勤记录不存在")
	case errors.Is(err, service.ErrCorrectionNotFound):
		response.NotFound(c, 15002, "补卡申请不存在")
	case errors.Is(err, service.ErrCorrectionNotPending):
		response.Conflict(c, 15003, "补卡申请已处理，不能重复审批")
	case errors.Is(err, service.ErrRuleNotFound):
		response.NotFound(c, 15004, "考勤规则不存在")
	case errors.Is(err, service.ErrInvalidClockTimestamp):
		response.BadRequest(c, 15006, "打卡时间格式无效")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 15007, "日期格式无效")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/attendance_handler.go
