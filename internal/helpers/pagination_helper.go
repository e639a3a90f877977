package helpers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 8
	MaxPageSize     = 15
)

// Page is one page of a listing. Requests past the last page come back
// with an empty Results slice, not an error.
type Page struct {
	Count      int64       `json:"count"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int64       `json:"total_pages"`
	Results    interface{} `json:"results"`
}

// PageParams reads the page-number scheme from the query string: "page"
// selects the page, "max-size" overrides the page size up to MaxPageSize.
func PageParams(c *gin.Context) (page int, size int, err error) {
	page, err = StringToInt(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 0, 0, fmt.Errorf("invalid page number")
	}

	size, err = StringToInt(c.DefaultQuery("max-size", "8"))
	if err != nil || size < 1 {
		return 0, 0, fmt.Errorf("invalid page size")
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size, nil
}

// Paginate counts the query, then fetches the requested window into out.
// The order clause is applied only to the window fetch, never the count.
func Paginate(query *gorm.DB, order string, page, size int, out interface{}) (*Page, error) {
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, err
	}

	window := query.Offset((page - 1) * size).Limit(size)
	if order != "" {
		window = window.Order(order)
	}
	if err := window.Find(out).Error; err != nil {
		return nil, err
	}

	return &Page{
		Count:      count,
		Page:       page,
		PageSize:   size,
		TotalPages: (count + int64(size) - 1) / int64(size),
		Results:    out,
	}, nil
}
