package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Yassin-Hegazy/Hrmanagment1/internal/dto"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/service"
	"github.com/Yassin-Hegazy/Hrmanagment1/pkg/response"
)

// EmployeeHandler 员工模块 HTTP 处理器
type EmployeeHandler struct {
	empSvc *service.EmployeeService
}

// NewEmployeeHandler 创建 EmployeeHandler
func NewEmployeeHandler(empSvc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{empSvc: empSvc}
}

// ListEmployees 员工列表
// GET /api/v1/employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	var req dto.EmployeeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	emps, total, err := h.empSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, emps, total, req.GetPage(), req.GetPageSize())
}

// GetEmployee 员工详情
// GET /api/v1/employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "员工ID不能为空")
		return
	}

	emp, err := h.empSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, emp)
}

// CreateEmployee 创建员工
// POST /api/v1/employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	emp, err := h.empSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.Created(c, emp)
}

// UpdateEmployee 更新员工资料
// PUT /api/v1/employees/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "员工ID不能为空")
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	emp, err := h.empSvc.Update(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, emp)
}

// AssignRole 分配角色
// PUT /api/v1/employees/:id/role
func (h *EmployeeHandler) AssignRole(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "员工ID不能为空")
		return
	}

	var req dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	emp, err := h.empSvc.AssignRole(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, emp)
}

// LockEmployee 锁定账号
// POST /api/v1/employees/:id/lock
func (h *EmployeeHandler) LockEmployee(c *gin.Context) {
	h.setLocked(c, true)
}

// UnlockEmployee 解锁账号
// POST /api/v1/employees/:id/unlock
func (h *EmployeeHandler) UnlockEmployee(c *gin.Context) {
	h.setLocked(c, false)
}

func (h *EmployeeHandler) setLocked(c *gin.Context, locked bool) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "员工ID不能为空")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	if err := h.empSvc.SetLocked(c.Request.Context(), id, locked, callerID); err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, nil)
}

// DeleteEmployee 软删除员工
// DELETE /api/v1/employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "员工ID不能为空")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	if err := h.empSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleEmployeeError 统一处理员工模块业务错误
func (h *EmployeeHandler) handleEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "员工不存在")
	case errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, 12002, "邮箱已被占用")
	case errors.Is(err, service.ErrInvalidRole):
		response.BadRequest(c, 12003, "角色不在允许的闭集内")
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, 12004, "部门不存在")
	case errors.Is(err, service.ErrManagerNotFound):
		response.NotFound(c, 12005, "目标上级不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/employee_handler.go
