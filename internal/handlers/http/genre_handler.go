package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reviewhub/reviewhub-backend/internal/domain/repositories"
	"github.com/reviewhub/reviewhub-backend/internal/handlers/dto"
	"github.com/reviewhub/reviewhub-backend/internal/services"
)

// GenreHandler lida com as requisições de gêneros
type GenreHandler struct {
	catalogService *services.CatalogService
}

// NewGenreHandler cria um novo GenreHandler
func NewGenreHandler(catalogService *services.CatalogService) *GenreHandler {
	return &GenreHandler{
		catalogService: catalogService,
	}
}

// Create cria um novo gênero
//
//	@Summary	Create a genre (admin only)
//	@Tags		genres
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CreateGenreRequest	true	"genre data"
//	@Success	201		{object}	dto.GenreResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/genres [post]
func (h *GenreHandler) Create(c *gin.Context) {
	var req dto.CreateGenreRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	genre, err := h.catalogService.CreateGenre(c.Request.Context(), req.Name, req.Slug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGenreResponse(genre))
}

// List lista gêneros ordenados por nome
//
//	@Summary	List genres
//	@Tags		genres
//	@Produce	json
//	@Param		search		query		string	false	"filter by name"
//	@Param		page		query		int		false	"page"
//	@Param		page_size	query		int		false	"page size"
//	@Success	200			{object}	dto.PaginatedResponse
//	@Router		/genres [get]
func (h *GenreHandler) List(c *gin.Context) {
	filters := repositories.CatalogFilters{
		Search:     c.Query("search"),
		Pagination: dto.PaginationFromQuery(c),
	}

	genres, count, err := h.catalogService.ListGenres(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(dto.ToGenreResponses(genres), count, filters.Pagination))
}

// Delete remove um gênero pelo slug
//
//	@Summary	Delete a genre (admin only)
//	@Tags		genres
//	@Security	BearerAuth
//	@Param		slug	path	string	true	"genre slug"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/genres/{slug} [delete]
func (h *GenreHandler) Delete(c *gin.Context) {
	if err := h.catalogService.DeleteGenre(c.Request.Context(), c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
