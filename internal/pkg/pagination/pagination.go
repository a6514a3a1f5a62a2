package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lb-platform/core/internal/pkg/response"
	"gorm.io/gorm"
)

const (
	DefaultPage = 1
	MaxLimit    = 100
)

// Query holds parsed pagination parameters.
type Query struct {
	Page  int
	Limit int
}

// FromContext extracts and clamps page/limit query params. defaultLimit lets
// each listing keep its own page size (blogs 10, contacts 20).
func FromContext(c *gin.Context, defaultLimit int) Query {
	page := parseIntOr(c.DefaultQuery("page", "1"), DefaultPage)
	limit := parseIntOr(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)), defaultLimit)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Query{Page: page, Limit: limit}
}

// Paginate applies limit/offset to a GORM query and returns the pagination
// metadata alongside the page of rows.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}

	offset := (q.Page - 1) * q.Limit
	if err := db.Offset(offset).Limit(q.Limit).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}

	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))

	return response.Pagination{
		CurrentPage: q.Page,
		PerPage:     q.Limit,
		Total:       total,
		TotalPages:  totalPages,
	}, nil
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
