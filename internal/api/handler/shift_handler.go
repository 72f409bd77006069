package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Yassin-Hegazy/Hrmanagment1/internal/dto"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/service"
	"github.com/Yassin-Hegazy/Hrmanagment1/pkg/response"
)

// ShiftHandler 班次模块 HTTP 处理器
type ShiftHandler struct {
	shiftSvc *service.ShiftService
}

// NewShiftHandler 创建 ShiftHandler
func NewShiftHandler(shiftSvc *service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftSvc: shiftSvc}
}

// ── 班次定义 ──

// ListSchedules 班次列表
// GET /api/v1/shifts
func (h *ShiftHandler) ListSchedules(c *gin.Context) {
	onlyActive := c.Query("include_inactive") != "true"

	shifts, err := h.shiftSvc.ListSchedules(c.Request.Context(), onlyActive)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": shifts})
}

// GetSchedule 班次详情
// GET /api/v1/shifts/:id
func (h *ShiftHandler) GetSchedule(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "班次ID不能为空")
		return
	}

	shift, err := h.shiftSvc.GetSchedule(c.Request.Context(), id)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.OK(c, shift)
}

// CreateSchedule 创建班次
// POST /api/v1/shifts
func (h *ShiftHandler) CreateSchedule(c *gin.Context) {
	var req dto.CreateShiftScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	shift, err := h.shiftSvc.CreateSchedule(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.Created(c, shift)
}

// UpdateSchedule 更新班次
// PUT /api/v1/shifts/:id
func (h *ShiftHandler) UpdateSchedule(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "班次ID不能为空")
		return
	}

	var req dto.UpdateShiftScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	shift, err := h.shiftSvc.UpdateSchedule(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.OK(c, shift)
}

// DeleteSchedule 删除班次
// DELETE /api/v1/shifts/:id
func (h *ShiftHandler) DeleteSchedule(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "班次ID不能为空")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	if err := h.shiftSvc.DeleteSchedule(c.Request.Context(), id, callerID); err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.OK(c, nil)
}

// ── 轮换周期 ──

// ListCycles 轮换周期列表
// GET /api/v1/rotation-cycles
func (h *ShiftHandler) ListCycles(c *gin.Context) {
	cycles, err := h.shiftSvc.ListCycles(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": cycles})
}

// GetCycle 轮换周期详情
// GET /api/v1/rotation-cycles/:id
func (h *ShiftHandler) GetCycle(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "周期ID不能为空")
		return
	}

	cycle, err := h.shiftSvc.GetCycle(c.Request.Context(), id)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.OK(c, cycle)
}

// CreateCycle 创建轮换周期
// POST /api/v1/rotation-cycles
func (h *ShiftHandler) CreateCycle(c *gin.Context) {
	var req dto.CreateRotationCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	cycle, err := h.shiftSvc.CreateCycle(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.Created(c, cycle)
}

// ── 班次指派 ──

// AssignShift 指派班次
// POST /api/v1/shift-assignments
func (h *ShiftHandler) AssignShift(c *gin.Context) {
	var req dto.AssignShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	assignment, err := h.shiftSvc.Assign(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.Created(c, assignment)
}

// ListAssignments 员工的指派历史
// GET /api/v1/employees/:id/shift-assignments
func (h *ShiftHandler) ListAssignments(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "员工ID不能为空")
		return
	}

	list, err := h.shiftSvc.ListAssignments(c.Request.Context(), id)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// handleShiftError 统一处理班次模块业务错误
func (h *ShiftHandler) handleShiftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 14001, "班次不存在")
	case errors.Is(err, service.ErrCycleNotFound):
		response.NotFound(c, 14002, "轮换周期不存在")
	case errors.Is(err, service.ErrInvalidTimeOfDay):
		response.BadRequest(c, 14003, "时间格式无效")
	case errors.Is(err, service.ErrCycleStepsGap):
		response.BadRequest(c, 14004, "轮换步骤的序号必须从 0 起连续")
	case errors.Is(err, service.ErrRotationalNoCycle):
		response.BadRequest(c, 14005, "轮换班次必须关联轮换周期")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 14006, "员工不存在")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 14007, "日期格式无效")
	case errors.Is(err, service.ErrAssignDateOrder):
		response.BadRequest(c, 14008, "end_date 必须晚于 start_date")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/shift_handler.go
