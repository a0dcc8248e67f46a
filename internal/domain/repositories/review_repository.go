package repositories

import (
	"context"

	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
)

// ReviewRepository define a interface para persistência de reviews.
//
// Create deve devolver ErrDuplicateReview quando já existe review do
// mesmo autor para a mesma obra: o índice único (title_id, author_id)
// é a garantia final contra corridas, o serviço só faz um pre-check.
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error
	FindByID(ctx context.Context, titleID, reviewID string) (*entities.Review, error)
	FindByTitleAndAuthor(ctx context.Context, titleID, authorID string) (*entities.Review, error)
	Update(ctx context.Context, review *entities.Review) error
	Delete(ctx context.Context, id string) error
	ListByTitle(ctx context.Context, titleID string, p Pagination) ([]*entities.Review, int64, error)
}

// CommentRepository define a interface para persistência de comentários
type CommentRepository interface {
	Create(ctx context.Context, comment *entities.Comment) error
	FindByID(ctx context.Context, reviewID, commentID string) (*entities.Comment, error)
	Update(ctx context.Context, comment *entities.Comment) error
	Delete(ctx context.Context, id string) error
	ListByReview(ctx context.Context, reviewID string, p Pagination) ([]*entities.Comment, int64, error)
}
