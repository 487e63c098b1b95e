package pagination

const (
	defaultSize = 20
	maxSize     = 100
)

// Request 分页请求，页码从 1 开始
type Request struct {
	Page int
	Size int
}

// Normalize 修正非法页码与页大小
func (r Request) Normalize() Request {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = defaultSize
	}
	if r.Size > maxSize {
		r.Size = maxSize
	}
	return r
}

func (r Request) Offset() int {
	n := r.Normalize()
	return (n.Page - 1) * n.Size
}

func (r Request) Limit() int {
	return r.Normalize().Size
}

// Page 一页查询结果
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalPages int64 `json:"total_pages"`
}

// New 由条目与总数构造分页结果
func New[T any](items []T, total int64, req Request) Page[T] {
	n := req.Normalize()
	pages := total / int64(n.Size)
	if total%int64(n.Size) != 0 {
		pages++
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       n.Page,
		Size:       n.Size,
		TotalPages: pages,
	}
}
