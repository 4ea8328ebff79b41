package utils

// Pagination 分页请求参数 (offset + limit)。
// 注意：并发写入时 offset 分页无法保证页间稳定，条目可能在翻页间移动，
// 属于已知限制。
type Pagination struct {
	Skip  int `json:"skip" form:"skip"`
	Limit int `json:"limit" form:"limit"`
}

// PageResult 分页响应结果
type PageResult struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
	Skip  int         `json:"skip"`
	Limit int         `json:"limit"`
}

// Normalize 规范化分页参数
func (p *Pagination) Normalize() (int, int) {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	return p.Skip, p.Limit
}
