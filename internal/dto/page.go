package dto

// PaginationParams contains page-based pagination parameters
type PaginationParams struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// Normalize clamps pagination parameters to sane bounds.
func (p *PaginationParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = 20
	}
	if p.Size > 100 {
		p.Size = 100
	}
}

// Offset returns the row offset for the current page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Size
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPaginationInfo builds pagination metadata from the request parameters
// and the total row count.
func NewPaginationInfo(params PaginationParams, total int64) PaginationInfo {
	totalPages := int(total) / params.Size
	if int(total)%params.Size != 0 {
		totalPages++
	}
	return PaginationInfo{
		Page:       params.Page,
		Size:       params.Size,
		Total:      total,
		TotalPages: totalPages,
	}
}
