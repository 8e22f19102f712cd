package dto

import (
	"math"

	"hotel-booking/constants"

	"github.com/creasty/defaults"
)

// PaginationRequest tham số phân trang chung cho mọi danh sách
type PaginationRequest struct {
	PageNumber    int    `json:"pageNumber" form:"pageNumber" default:"1"`
	PageSize      int    `json:"pageSize" form:"pageSize" default:"10"`
	Search        string `json:"search,omitempty" form:"search"`
	SortBy        string `json:"sortBy,omitempty" form:"sortBy" default:"createdAt"`
	SortDirection string `json:"sortDirection,omitempty" form:"sortDirection" default:"desc"`
}

// Normalize gán giá trị mặc định và giới hạn pageSize
func (p *PaginationRequest) Normalize() {
	_ = defaults.Set(p)
	if p.PageNumber < constants.MinPageNumber {
		p.PageNumber = constants.MinPageNumber
	}
	if p.PageSize < 1 {
		p.PageSize = constants.DefaultPageSize
	}
	if p.PageSize > constants.MaxPageSize {
		p.PageSize = constants.MaxPageSize
	}
	// offset không được tràn int
	if maxPage := math.MaxInt / p.PageSize; p.PageNumber > maxPage {
		p.PageNumber = maxPage
	}
}

// Offset số bản ghi cần bỏ qua
func (p PaginationRequest) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// Paging thông tin phân trang trả về
type Paging struct {
	Total       int64 `json:"total"`
	PageNumber  int   `json:"pageNumber"`
	PageSize    int   `json:"pageSize"`
	TotalPages  int   `json:"totalPages"`
	HasPrevious bool  `json:"hasPrevious"`
	HasNext     bool  `json:"hasNext"`
}

// NewPaging tính thông tin phân trang từ tổng số bản ghi
func NewPaging(total int64, p PaginationRequest) Paging {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.PageSize)))
	}
	return Paging{
		Total:       total,
		PageNumber:  p.PageNumber,
		PageSize:    p.PageSize,
		TotalPages:  totalPages,
		HasPrevious: p.PageNumber > 1,
		HasNext:     p.PageNumber < totalPages,
	}
}

// PagedResponse là struct chung cho các response có phân trang
type PagedResponse[T any] struct {
	Items  []T    `json:"items"`
	Paging Paging `json:"paging"`
}
