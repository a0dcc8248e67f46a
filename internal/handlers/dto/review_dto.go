package dto

import (
	"time"

	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
)

// CreateReviewRequest representa a requisição para criar uma review
type CreateReviewRequest struct {
	Text  string `json:"text" binding:"required,max=4000"`
	Score int    `json:"score" binding:"required,min=1,max=10"`
}

// UpdateReviewRequest representa a requisição para alterar uma review
type UpdateReviewRequest struct {
	Text  *string `json:"text" binding:"omitempty,max=4000"`
	Score *int    `json:"score" binding:"omitempty,min=1,max=10"`
}

// ReviewResponse representa a resposta de uma review
type ReviewResponse struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"pub_date"`
}

// ToReviewResponse converte uma entidade Review para ReviewResponse
func ToReviewResponse(review *entities.Review) ReviewResponse {
	author := review.AuthorID
	if review.Author != nil {
		author = review.Author.Username
	}

	return ReviewResponse{
		ID:        review.ID,
		Author:    author,
		Text:      review.Text,
		Score:     review.Score,
		CreatedAt: review.CreatedAt,
	}
}

// ToReviewResponses converte uma lista de reviews
func ToReviewResponses(reviews []*entities.Review) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = ToReviewResponse(review)
	}
	return responses
}

// CreateCommentRequest representa a requisição para criar um comentário
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,max=4000"`
}

// UpdateCommentRequest representa a requisição para alterar um comentário
type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required,max=4000"`
}

// CommentResponse representa a resposta de um comentário
type CommentResponse struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"pub_date"`
}

// ToCommentResponse converte uma entidade Comment para CommentResponse
func ToCommentResponse(comment *entities.Comment) CommentResponse {
	author := comment.AuthorID
	if comment.Author != nil {
		author = comment.Author.Username
	}

	return CommentResponse{
		ID:        comment.ID,
		Author:    author,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}

// ToCommentResponses converte uma lista de comentários
func ToCommentResponses(comments []*entities.Comment) []CommentResponse {
	responses := make([]CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = ToCommentResponse(comment)
	}
	return responses
}
