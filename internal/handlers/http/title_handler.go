package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/reviewhub/reviewhub-backend/internal/domain/repositories"
	"github.com/reviewhub/reviewhub-backend/internal/handlers/dto"
	"github.com/reviewhub/reviewhub-backend/internal/services"
)

// TitleHandler lida com as requisições de obras
type TitleHandler struct {
	catalogService *services.CatalogService
}

// NewTitleHandler cria um novo TitleHandler
func NewTitleHandler(catalogService *services.CatalogService) *TitleHandler {
	return &TitleHandler{
		catalogService: catalogService,
	}
}

// Create cria uma nova obra
//
//	@Summary	Create a title (admin only)
//	@Tags		titles
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CreateTitleRequest	true	"title data"
//	@Success	201		{object}	dto.TitleResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/titles [post]
func (h *TitleHandler) Create(c *gin.Context) {
	var req dto.CreateTitleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	title, err := h.catalogService.CreateTitle(c.Request.Context(), services.TitleInput{
		Name:         req.Name,
		Year:         req.Year,
		Description:  req.Description,
		CategorySlug: req.Category,
		GenreSlugs:   req.Genres,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTitleResponse(title))
}

// List lista obras com filtros de catálogo
//
//	@Summary	List titles
//	@Tags		titles
//	@Produce	json
//	@Param		name		query		string	false	"filter by name substring"
//	@Param		category	query		string	false	"filter by category slug"
//	@Param		genre		query		string	false	"filter by genre slug"
//	@Param		year		query		int		false	"filter by year"
//	@Param		page		query		int		false	"page"
//	@Param		page_size	query		int		false	"page size"
//	@Success	200			{object}	dto.PaginatedResponse
//	@Router		/titles [get]
func (h *TitleHandler) List(c *gin.Context) {
	filters := repositories.TitleFilters{
		Name:         c.Query("name"),
		CategorySlug: c.Query("category"),
		GenreSlug:    c.Query("genre"),
		Pagination:   dto.PaginationFromQuery(c),
	}

	if yearParam := c.Query("year"); yearParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err == nil {
			filters.Year = &year
		}
	}

	titles, count, err := h.catalogService.ListTitles(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(dto.ToTitleResponses(titles), count, filters.Pagination))
}

// Get busca uma obra pelo id
//
//	@Summary	Get a title
//	@Tags		titles
//	@Produce	json
//	@Param		title_id	path		string	true	"title id"
//	@Success	200			{object}	dto.TitleResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/titles/{title_id} [get]
func (h *TitleHandler) Get(c *gin.Context) {
	title, err := h.catalogService.GetTitle(c.Request.Context(), c.Param("title_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTitleResponse(title))
}

// Update altera uma obra existente
//
//	@Summary	Update a title (admin only)
//	@Tags		titles
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		title_id	path		string					true	"title id"
//	@Param		request		body		dto.UpdateTitleRequest	true	"fields to update"
//	@Success	200			{object}	dto.TitleResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/titles/{title_id} [patch]
func (h *TitleHandler) Update(c *gin.Context) {
	var req dto.UpdateTitleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	title, err := h.catalogService.UpdateTitle(c.Request.Context(), c.Param("title_id"), services.UpdateTitleInput{
		Name:         req.Name,
		Year:         req.Year,
		Description:  req.Description,
		CategorySlug: req.Category,
		GenreSlugs:   req.Genres,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTitleResponse(title))
}

// Delete remove uma obra pelo id
//
//	@Summary	Delete a title (admin only)
//	@Tags		titles
//	@Security	BearerAuth
//	@Param		title_id	path	string	true	"title id"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/titles/{title_id} [delete]
func (h *TitleHandler) Delete(c *gin.Context) {
	if err := h.catalogService.DeleteTitle(c.Request.Context(), c.Param("title_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
