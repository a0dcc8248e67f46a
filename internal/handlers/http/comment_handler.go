package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reviewhub/reviewhub-backend/internal/handlers/dto"
	"github.com/reviewhub/reviewhub-backend/internal/handlers/middleware"
	"github.com/reviewhub/reviewhub-backend/internal/services"
)

// CommentHandler lida com os comentários de uma review
type CommentHandler struct {
	reviewService *services.ReviewService
}

// NewCommentHandler cria um novo CommentHandler
func NewCommentHandler(reviewService *services.ReviewService) *CommentHandler {
	return &CommentHandler{
		reviewService: reviewService,
	}
}

// Create cria um comentário em uma review
//
//	@Summary	Comment on a review
//	@Tags		comments
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		title_id	path		string						true	"title id"
//	@Param		review_id	path		string						true	"review id"
//	@Param		request		body		dto.CreateCommentRequest	true	"comment data"
//	@Success	201			{object}	dto.CommentResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/titles/{title_id}/reviews/{review_id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	comment, err := h.reviewService.CreateComment(
		c.Request.Context(),
		middleware.CurrentUser(c),
		c.Param("title_id"),
		c.Param("review_id"),
		req.Text,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

// List lista os comentários da review, mais recentes primeiro
//
//	@Summary	List comments of a review
//	@Tags		comments
//	@Produce	json
//	@Param		title_id	path		string	true	"title id"
//	@Param		review_id	path		string	true	"review id"
//	@Param		page		query		int		false	"page"
//	@Param		page_size	query		int		false	"page size"
//	@Success	200			{object}	dto.PaginatedResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/titles/{title_id}/reviews/{review_id}/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	pagination := dto.PaginationFromQuery(c)

	comments, count, err := h.reviewService.ListComments(
		c.Request.Context(),
		c.Param("title_id"),
		c.Param("review_id"),
		pagination,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(dto.ToCommentResponses(comments), count, pagination))
}

// Get busca um comentário da review
//
//	@Summary	Get a comment
//	@Tags		comments
//	@Produce	json
//	@Param		title_id	path		string	true	"title id"
//	@Param		review_id	path		string	true	"review id"
//	@Param		comment_id	path		string	true	"comment id"
//	@Success	200			{object}	dto.CommentResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/titles/{title_id}/reviews/{review_id}/comments/{comment_id} [get]
func (h *CommentHandler) Get(c *gin.Context) {
	comment, err := h.reviewService.GetComment(
		c.Request.Context(),
		c.Param("title_id"),
		c.Param("review_id"),
		c.Param("comment_id"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// Update altera um comentário. Permitido ao autor, moderadores e admins.
//
//	@Summary	Update a comment
//	@Tags		comments
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		title_id	path		string						true	"title id"
//	@Param		review_id	path		string						true	"review id"
//	@Param		comment_id	path		string						true	"comment id"
//	@Param		request		body		dto.UpdateCommentRequest	true	"comment data"
//	@Success	200			{object}	dto.CommentResponse
//	@Failure	403			{object}	dto.ErrorResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/titles/{title_id}/reviews/{review_id}/comments/{comment_id} [patch]
func (h *CommentHandler) Update(c *gin.Context) {
	var req dto.UpdateCommentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	comment, err := h.reviewService.UpdateComment(
		c.Request.Context(),
		middleware.CurrentUser(c),
		c.Param("title_id"),
		c.Param("review_id"),
		c.Param("comment_id"),
		req.Text,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// Delete remove um comentário. Permitido ao autor, moderadores e admins.
//
//	@Summary	Delete a comment
//	@Tags		comments
//	@Security	BearerAuth
//	@Param		title_id	path	string	true	"title id"
//	@Param		review_id	path	string	true	"review id"
//	@Param		comment_id	path	string	true	"comment id"
//	@Success	204
//	@Failure	403	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/titles/{title_id}/reviews/{review_id}/comments/{comment_id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	err := h.reviewService.DeleteComment(
		c.Request.Context(),
		middleware.CurrentUser(c),
		c.Param("title_id"),
		c.Param("review_id"),
		c.Param("comment_id"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
