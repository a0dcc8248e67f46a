package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reviewhub/reviewhub-backend/internal/domain/repositories"
	"github.com/reviewhub/reviewhub-backend/internal/handlers/dto"
	"github.com/reviewhub/reviewhub-backend/internal/services"
)

// CategoryHandler lida com as requisições de categorias
type CategoryHandler struct {
	catalogService *services.CatalogService
}

// NewCategoryHandler cria um novo CategoryHandler
func NewCategoryHandler(catalogService *services.CatalogService) *CategoryHandler {
	return &CategoryHandler{
		catalogService: catalogService,
	}
}

// Create cria uma nova categoria
//
//	@Summary	Create a category (admin only)
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CreateCategoryRequest	true	"category data"
//	@Success	201		{object}	dto.CategoryResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), req.Name, req.Slug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// List lista categorias ordenadas por nome
//
//	@Summary	List categories
//	@Tags		categories
//	@Produce	json
//	@Param		search		query		string	false	"filter by name"
//	@Param		page		query		int		false	"page"
//	@Param		page_size	query		int		false	"page size"
//	@Success	200			{object}	dto.PaginatedResponse
//	@Router		/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	filters := repositories.CatalogFilters{
		Search:     c.Query("search"),
		Pagination: dto.PaginationFromQuery(c),
	}

	categories, count, err := h.catalogService.ListCategories(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(dto.ToCategoryResponses(categories), count, filters.Pagination))
}

// Delete remove uma categoria pelo slug
//
//	@Summary	Delete a category (admin only)
//	@Tags		categories
//	@Security	BearerAuth
//	@Param		slug	path	string	true	"category slug"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/categories/{slug} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.catalogService.DeleteCategory(c.Request.Context(), c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
