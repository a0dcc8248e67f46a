package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/reviewhub/reviewhub-backend/internal/domain/repositories"
)

// PaginatedResponse envelopa listagens com metadados de paginação
type PaginatedResponse struct {
	Count    int64       `json:"count"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Results  interface{} `json:"results"`
}

// NewPaginatedResponse monta o envelope de listagem
func NewPaginatedResponse(results interface{}, count int64, p repositories.Pagination) PaginatedResponse {
	p.Normalize()
	return PaginatedResponse{
		Count:    count,
		Page:     p.Page,
		PageSize: p.PageSize,
		Results:  results,
	}
}

// PaginationFromQuery lê page e page_size da query string
func PaginationFromQuery(c *gin.Context) repositories.Pagination {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	p := repositories.Pagination{Page: page, PageSize: pageSize}
	p.Normalize()
	return p
}
