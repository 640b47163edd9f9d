package types

// PageQuery 页码分页参数，与前端约定 page 从 1 开始
type PageQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

// Normalize 补齐默认值，返回 limit 与 offset
func (p PageQuery) Normalize(defaultLimit, maxLimit int) (limit, offset int) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	limit = p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return limit, (page - 1) * limit
}

// Page 分页结果，Next / Previous 为页码，不存在时为 nil
type Page[T any] struct {
	Count    int64 `json:"count"`
	Next     *int  `json:"next"`
	Previous *int  `json:"previous"`
	Results  []T   `json:"results"`
}

// NewPage 根据总数与当前分页计算前后页
func NewPage[T any](results []T, count int64, limit, offset int) *Page[T] {
	if results == nil {
		results = []T{}
	}
	p := &Page[T]{Count: count, Results: results}
	if limit <= 0 {
		return p
	}
	current := offset/limit + 1
	if int64(offset+limit) < count {
		next := current + 1
		p.Next = &next
	}
	if current > 1 {
		prev := current - 1
		p.Previous = &prev
	}
	return p
}
