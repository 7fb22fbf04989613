package handler

import "bgcatalog/backend/internal/validation"

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// Pagination echoes the requested page and reports the total match count.
type Pagination struct {
	Page  int   `json:"page" example:"1"`
	Limit int   `json:"limit" example:"20"`
	Total int64 `json:"total" example:"42"`
}

// ListResponse is a page of items.
type ListResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func newListResponse[T any](data []T, total int64, page, limit int) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{
		Data:       data,
		Pagination: Pagination{Page: page, Limit: limit, Total: total},
	}
}

// pageQuery is embedded by list queries. Values that are not positive
// integers fall back to the defaults; limit is capped at maxLimit.
type pageQuery struct {
	Page  string `form:"page"`
	Limit string `form:"limit"`
}

func (q pageQuery) values() (page, limit int) {
	return validation.IntOr(q.Page, defaultPage), min(validation.IntOr(q.Limit, defaultLimit), maxLimit)
}

type idParam struct {
	ID uint `uri:"id" binding:"min=1"`
}
