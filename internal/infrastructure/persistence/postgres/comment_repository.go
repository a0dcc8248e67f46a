package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
	"github.com/reviewhub/reviewhub-backend/internal/domain/repositories"
)

// CommentRepository implementa repositories.CommentRepository
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository cria um novo CommentRepository
func NewCommentRepository(db *gorm.DB) repositories.CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	model := commentToModel(comment)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Omit("Review", "Author").Create(model).Error; err != nil {
		return err
	}

	comment.ID = model.ID
	comment.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, reviewID, commentID string) (*entities.Comment, error) {
	var model CommentModel

	db := dbFromContext(ctx, r.db)
	if err := db.Preload("Author").Where("id = ? AND review_id = ?", commentID, reviewID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return commentToEntity(&model)
}

func (r *CommentRepository) Update(ctx context.Context, comment *entities.Comment) error {
	model := commentToModel(comment)

	db := dbFromContext(ctx, r.db)
	return db.Omit("Review", "Author").Save(model).Error
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&CommentModel{}, "id = ?", id).Error
}

func (r *CommentRepository) ListByReview(ctx context.Context, reviewID string, p repositories.Pagination) ([]*entities.Comment, int64, error) {
	var models []*CommentModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&CommentModel{}).Where("review_id = ?", reviewID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	p.Normalize()
	query = query.Preload("Author").Order("created_at DESC").Limit(p.PageSize).Offset(p.Offset())

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	comments := make([]*entities.Comment, 0, len(models))
	for _, model := range models {
		comment, err := commentToEntity(model)
		if err != nil {
			return nil, 0, err
		}
		comments = append(comments, comment)
	}

	return comments, total, nil
}

// Conversores
func commentToModel(comment *entities.Comment) *CommentModel {
	return &CommentModel{
		ID:        comment.ID,
		ReviewID:  comment.ReviewID,
		AuthorID:  comment.AuthorID,
		Text:      comment.Text,
		CreatedAt: unixOrZero(comment.CreatedAt),
		UpdatedAt: unixOrZero(comment.UpdatedAt),
	}
}

func commentToEntity(model *CommentModel) (*entities.Comment, error) {
	comment := &entities.Comment{
		ID:        model.ID,
		ReviewID:  model.ReviewID,
		AuthorID:  model.AuthorID,
		Text:      model.Text,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
	}

	if model.Author != nil {
		author, err := (&UserRepository{}).toEntity(model.Author)
		if err != nil {
			return nil, err
		}
		comment.Author = author
	}

	return comment, nil
}
