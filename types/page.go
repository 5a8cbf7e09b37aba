package types

// PageQuery is the page/limit pair of list endpoints. Zero values mean
// "use the default".
type PageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

func (p Page[T]) HasNext() bool {
	return int64(p.Page*p.Limit) < p.Total
}

func (p Page[T]) HasPrevious() bool {
	return p.Page > 1
}
