package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Yassin-Hegazy/Hrmanagment1/internal/dto"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/service"
	"github.com/Yassin-Hegazy/Hrmanagment1/pkg/response"
)

// ContractHandler 合同模块 HTTP 处理器
type ContractHandler struct {
	contractSvc *service.ContractService
}

// NewContractHandler 创建 ContractHandler
func NewContractHandler(contractSvc *service.ContractService) *ContractHandler {
	return &ContractHandler{contractSvc: contractSvc}
}

// Create 签订合同
// POST /api/v1/contracts
func (h *ContractHandler) Create(c *gin.Context) {
	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	contract, err := h.contractSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleContractError(c, err)
		return
	}
	response.Created(c, contract)
}

// Get 合同详情
// GET /api/v1/contracts/:id
func (h *ContractHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "合同ID不能为空")
		return
	}

	contract, err := h.contractSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleContractError(c, err)
		return
	}
	response.OK(c, contract)
}

// ListByEmployee 员工合同列表
// GET /api/v1/employees/:id/contracts
func (h *ContractHandler) ListByEmployee(c *gin.Context) {
	employeeID := c.Param("id")
	if employeeID == "" {
		response.BadRequest(c, 10001, "员工ID不能为空")
		return
	}

	list, err := h.contractSvc.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// ListExpiring 即将到期合同
// GET /api/v1/contracts/expiring?within_days=30
func (h *ContractHandler) ListExpiring(c *gin.Context) {
	withinDays := 30
	if v := c.Query("within_days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			response.BadRequest(c, 10001, "within_days 必须为正整数")
			return
		}
		withinDays = n
	}

	list, err := h.contractSvc.ListExpiring(c.Request.Context(), withinDays)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// Renew 续签合同
// PUT /api/v1/contracts/:id/renew
func (h *ContractHandler) Renew(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "合同ID不能为空")
		return
	}

	var req dto.RenewContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	contract, err := h.contractSvc.Renew(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleContractError(c, err)
		return
	}
	response.OK(c, contract)
}

// Terminate 终止合同
// PUT /api/v1/contracts/:id/terminate
func (h *ContractHandler) Terminate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "合同ID不能为空")
		return
	}

	var req dto.TerminateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	termination, err := h.contractSvc.Terminate(c.Request.Context(), id, &req, callerID)
	if err != nil {
		h.handleContractError(c, err)
		return
	}
	response.OK(c, termination)
}

// handleContractError 统一处理合同模块业务错误
func (h *ContractHandler) handleContractError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrContractNotFound):
		response.NotFound(c, 19001, "合同不存在")
	case errors.Is(err, service.ErrContractNotActive):
		response.Conflict(c, 19002, "合同不处于生效状态")
	case errors.Is(err, service.ErrContractExists):
		response.Conflict(c, 19003, "员工已有生效合同")
	case errors.Is(err, service.ErrContractDateOrder):
		response.BadRequest(c, 19004, "end_date 必须晚于 start_date")
	case errors.Is(err, service.ErrContractRenewDate):
		response.BadRequest(c, 19005, "续签日期必须晚于当前终止日期")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 19006, "员工不存在")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 19007, "日期格式无效")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/contract_handler.go
