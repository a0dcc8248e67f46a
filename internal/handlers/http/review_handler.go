package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reviewhub/reviewhub-backend/internal/handlers/dto"
	"github.com/reviewhub/reviewhub-backend/internal/handlers/middleware"
	"github.com/reviewhub/reviewhub-backend/internal/services"
)

// ReviewHandler lida com as requisições de reviews de uma obra
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler cria um novo ReviewHandler
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Create cria uma review para a obra. Cada usuário pode ter no máximo
// uma review por obra.
//
//	@Summary	Create a review for a title
//	@Tags		reviews
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		title_id	path		string					true	"title id"
//	@Param		request		body		dto.CreateReviewRequest	true	"review data"
//	@Success	201			{object}	dto.ReviewResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Failure	409			{object}	dto.ErrorResponse
//	@Router		/titles/{title_id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	review, err := h.reviewService.CreateReview(
		c.Request.Context(),
		middleware.CurrentUser(c),
		c.Param("title_id"),
		req.Text,
		req.Score,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

// List lista as reviews da obra, mais recentes primeiro
//
//	@Summary	List reviews of a title
//	@Tags		reviews
//	@Produce	json
//	@Param		title_id	path		string	true	"title id"
//	@Param		page		query		int		false	"page"
//	@Param		page_size	query		int		false	"page size"
//	@Success	200			{object}	dto.PaginatedResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/titles/{title_id}/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	pagination := dto.PaginationFromQuery(c)

	reviews, count, err := h.reviewService.ListReviews(c.Request.Context(), c.Param("title_id"), pagination)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(dto.ToReviewResponses(reviews), count, pagination))
}

// Get busca uma review da obra
//
//	@Summary	Get a review
//	@Tags		reviews
//	@Produce	json
//	@Param		title_id	path		string	true	"title id"
//	@Param		review_id	path		string	true	"review id"
//	@Success	200			{object}	dto.ReviewResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/titles/{title_id}/reviews/{review_id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	review, err := h.reviewService.GetReview(c.Request.Context(), c.Param("title_id"), c.Param("review_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

// Update altera uma review. Permitido ao autor, moderadores e admins.
//
//	@Summary	Update a review
//	@Tags		reviews
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		title_id	path		string					true	"title id"
//	@Param		review_id	path		string					true	"review id"
//	@Param		request		body		dto.UpdateReviewRequest	true	"fields to update"
//	@Success	200			{object}	dto.ReviewResponse
//	@Failure	403			{object}	dto.ErrorResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/titles/{title_id}/reviews/{review_id} [patch]
func (h *ReviewHandler) Update(c *gin.Context) {
	var req dto.UpdateReviewRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	review, err := h.reviewService.UpdateReview(
		c.Request.Context(),
		middleware.CurrentUser(c),
		c.Param("title_id"),
		c.Param("review_id"),
		req.Text,
		req.Score,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

// Delete remove uma review. Permitido ao autor, moderadores e admins.
//
//	@Summary	Delete a review
//	@Tags		reviews
//	@Security	BearerAuth
//	@Param		title_id	path	string	true	"title id"
//	@Param		review_id	path	string	true	"review id"
//	@Success	204
//	@Failure	403	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/titles/{title_id}/reviews/{review_id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	err := h.reviewService.DeleteReview(
		c.Request.Context(),
		middleware.CurrentUser(c),
		c.Param("title_id"),
		c.Param("review_id"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
