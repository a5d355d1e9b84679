package pagination

import (
	"fmt"
	"math"

	"github.com/narwhalmedia/catalog/pkg/errors"
)

// Bounds for page requests.
const (
	DefaultSize = 20
	MaxSize     = 100
)

// Request is a caller-owned page request. Page is zero based.
type Request struct {
	Page int `form:"page" json:"page"`
	Size int `form:"size" json:"size"`
}

// Limits are the documented bounds a Request is checked against.
type Limits struct {
	DefaultSize int
	MaxSize     int
}

// DefaultLimits returns the package bounds.
func DefaultLimits() Limits {
	return Limits{DefaultSize: DefaultSize, MaxSize: MaxSize}
}

// Resolve applies the default size and rejects requests outside the bounds.
// Out-of-range values are never clamped.
func (l Limits) Resolve(req Request) (Request, error) {
	if req.Page < 0 {
		return req, errors.BadRequest(fmt.Sprintf("page must be >= 0, got %d", req.Page))
	}
	if req.Size == 0 {
		req.Size = l.DefaultSize
	}
	if req.Size < 1 || req.Size > l.MaxSize {
		return req, errors.BadRequest(fmt.Sprintf("size must be between 1 and %d, got %d", l.MaxSize, req.Size))
	}
	// Offset must fit in an int.
	if req.Page > math.MaxInt/req.Size {
		return req, errors.BadRequest(fmt.Sprintf("page must be <= %d for size %d, got %d", math.MaxInt/req.Size, req.Size, req.Page))
	}
	return req, nil
}

// Offset returns the number of rows to skip.
func (r Request) Offset() int {
	return r.Page * r.Size
}

// Page is one page of results.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// NewPage builds a page for req from the rows and the unpaged total.
func NewPage[T any](items []T, req Request, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if req.Size > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Items:      items,
		Page:       req.Page,
		Size:       req.Size,
		TotalItems: total,
		TotalPages: pages,
	}
}

// Map converts the items of a page, keeping its metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, len(p.Items))
	for i, item := range p.Items {
		out[i] = fn(item)
	}
	return Page[U]{
		Items:      out,
		Page:       p.Page,
		Size:       p.Size,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}
