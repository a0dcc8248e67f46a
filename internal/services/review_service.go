package services

import (
	"context"

	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
	"github.com/reviewhub/reviewhub-backend/internal/domain/errors"
	"github.com/reviewhub/reviewhub-backend/internal/domain/ports"
	"github.com/reviewhub/reviewhub-backend/internal/domain/repositories"
)

// ReviewService contém a lógica de negócio para reviews e comentários
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	commentRepo repositories.CommentRepository
	titleRepo   repositories.TitleRepository
	logger      ports.Logger
}

// NewReviewService cria um novo ReviewService
func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	commentRepo repositories.CommentRepository,
	titleRepo repositories.TitleRepository,
	logger ports.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		commentRepo: commentRepo,
		titleRepo:   titleRepo,
		logger:      logger,
	}
}

// CreateReview cria uma review do ator para a obra.
//
// A existência de review anterior do mesmo autor é verificada aqui,
// mas essa checagem é apenas advisory: duas requisições concorrentes
// podem passar pelo pre-check e então o índice único do banco decide.
func (s *ReviewService) CreateReview(ctx context.Context, actor *entities.User, titleID, text string, score int) (*entities.Review, error) {
	title, err := s.titleRepo.FindByID(ctx, titleID)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, errors.ErrTitleNotFound
	}

	review := &entities.Review{
		TitleID:  title.ID,
		AuthorID: actor.ID,
		Author:   actor,
		Text:     text,
		Score:    score,
	}
	if err := review.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.reviewRepo.FindByTitleAndAuthor(ctx, title.ID, actor.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, s.duplicateReview(title)
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if err == errors.ErrDuplicateReview {
			return nil, s.duplicateReview(title)
		}
		return nil, err
	}

	s.logger.Info("review created", "title", title.Name, "author", actor.Username, "score", score)
	return review, nil
}

// GetReview busca uma review da obra
func (s *ReviewService) GetReview(ctx context.Context, titleID, reviewID string) (*entities.Review, error) {
	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.FindByID(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, errors.ErrReviewNotFound
	}
	return review, nil
}

// UpdateReview altera texto e/ou nota de uma review.
// Permitido ao autor, moderador e admin.
func (s *ReviewService) UpdateReview(ctx context.Context, actor *entities.User, titleID, reviewID string, text *string, score *int) (*entities.Review, error) {
	review, err := s.GetReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	if !review.CanBeEditedBy(actor) {
		return nil, errors.ErrForbidden
	}

	if text != nil {
		review.Text = *text
	}
	if score != nil {
		review.Score = *score
	}
	if err := review.Validate(); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview remove uma review e, por cascata, seus comentários.
// Permitido ao autor, moderador e admin.
func (s *ReviewService) DeleteReview(ctx context.Context, actor *entities.User, titleID, reviewID string) error {
	review, err := s.GetReview(ctx, titleID, reviewID)
	if err != nil {
		return err
	}

	if !review.CanBeEditedBy(actor) {
		return errors.ErrForbidden
	}

	if err := s.reviewRepo.Delete(ctx, review.ID); err != nil {
		return err
	}

	s.logger.Info("review deleted", "review_id", reviewID, "by", actor.Username)
	return nil
}

// ListReviews lista as reviews de uma obra
func (s *ReviewService) ListReviews(ctx context.Context, titleID string, p repositories.Pagination) ([]*entities.Review, int64, error) {
	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, 0, err
	}
	return s.reviewRepo.ListByTitle(ctx, titleID, p)
}

// CreateComment cria um comentário do ator na review
func (s *ReviewService) CreateComment(ctx context.Context, actor *entities.User, titleID, reviewID, text string) (*entities.Comment, error) {
	review, err := s.GetReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	comment := &entities.Comment{
		ReviewID: review.ID,
		AuthorID: actor.ID,
		Author:   actor,
		Text:     text,
	}
	if err := comment.Validate(); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment created", "review_id", review.ID, "author", actor.Username)
	return comment, nil
}

// GetComment busca um comentário de uma review
func (s *ReviewService) GetComment(ctx context.Context, titleID, reviewID, commentID string) (*entities.Comment, error) {
	if _, err := s.GetReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.FindByID(ctx, reviewID, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, errors.ErrCommentNotFound
	}
	return comment, nil
}

// UpdateComment altera o texto de um comentário.
// Permitido ao autor, moderador e admin.
func (s *ReviewService) UpdateComment(ctx context.Context, actor *entities.User, titleID, reviewID, commentID, text string) (*entities.Comment, error) {
	comment, err := s.GetComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	if !comment.CanBeEditedBy(actor) {
		return nil, errors.ErrForbidden
	}

	comment.Text = text
	if err := comment.Validate(); err != nil {
		return nil, err
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment remove um comentário.
// Permitido ao autor, moderador e admin.
func (s *ReviewService) DeleteComment(ctx context.Context, actor *entities.User, titleID, reviewID, commentID string) error {
	comment, err := s.GetComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return err
	}

	if !comment.CanBeEditedBy(actor) {
		return errors.ErrForbidden
	}

	if err := s.commentRepo.Delete(ctx, comment.ID); err != nil {
		return err
	}

	s.logger.Info("comment deleted", "comment_id", commentID, "by", actor.Username)
	return nil
}

// ListComments lista os comentários de uma review
func (s *ReviewService) ListComments(ctx context.Context, titleID, reviewID string, p repositories.Pagination) ([]*entities.Comment, int64, error) {
	if _, err := s.GetReview(ctx, titleID, reviewID); err != nil {
		return nil, 0, err
	}
	return s.commentRepo.ListByReview(ctx, reviewID, p)
}

func (s *ReviewService) requireTitle(ctx context.Context, titleID string) error {
	title, err := s.titleRepo.FindByID(ctx, titleID)
	if err != nil {
		return err
	}
	if title == nil {
		return errors.ErrTitleNotFound
	}
	return nil
}

// duplicateReview monta o erro de conflito nomeando a obra
func (s *ReviewService) duplicateReview(title *entities.Title) error {
	return &errors.DomainError{
		Type:    errors.ProblemTypeConflict,
		Message: "duplicate review",
		Params:  map[string]interface{}{"Title": title.Name},
		Err:     errors.ErrDuplicateReview,
	}
}
