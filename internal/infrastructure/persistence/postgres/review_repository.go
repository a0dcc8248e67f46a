package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
	domainerrors "github.com/reviewhub/reviewhub-backend/internal/domain/errors"
	"github.com/reviewhub/reviewhub-backend/internal/domain/repositories"
)

// ReviewRepository implementa repositories.ReviewRepository
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository cria um novo ReviewRepository
func NewReviewRepository(db *gorm.DB) repositories.ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	model := reviewToModel(review)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Omit("Title", "Author").Create(model).Error; err != nil {
		// Índice único (title_id, author_id): guarda autoritativa
		// contra reviews duplicadas em escritas concorrentes
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrDuplicateReview
		}
		return err
	}

	review.ID = model.ID
	review.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, titleID, reviewID string) (*entities.Review, error) {
	var model ReviewModel

	db := dbFromContext(ctx, r.db)
	if err := db.Preload("Author").Where("id = ? AND title_id = ?", reviewID, titleID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return reviewToEntity(&model)
}

func (r *ReviewRepository) FindByTitleAndAuthor(ctx context.Context, titleID, authorID string) (*entities.Review, error) {
	var model ReviewModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("title_id = ? AND author_id = ?", titleID, authorID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return reviewToEntity(&model)
}

func (r *ReviewRepository) Update(ctx context.Context, review *entities.Review) error {
	model := reviewToModel(review)

	db := dbFromContext(ctx, r.db)
	return db.Omit("Title", "Author").Save(model).Error
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	// comments caem via ON DELETE CASCADE
	return db.Delete(&ReviewModel{}, "id = ?", id).Error
}

func (r *ReviewRepository) ListByTitle(ctx context.Context, titleID string, p repositories.Pagination) ([]*entities.Review, int64, error) {
	var models []*ReviewModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&ReviewModel{}).Where("title_id = ?", titleID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	p.Normalize()
	// Mais recentes primeiro
	query = query.Preload("Author").Order("created_at DESC").Limit(p.PageSize).Offset(p.Offset())

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	reviews := make([]*entities.Review, 0, len(models))
	for _, model := range models {
		review, err := reviewToEntity(model)
		if err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, review)
	}

	return reviews, total, nil
}

// Conversores
func reviewToModel(review *entities.Review) *ReviewModel {
	return &ReviewModel{
		ID:        review.ID,
		TitleID:   review.TitleID,
		AuthorID:  review.AuthorID,
		Text:      review.Text,
		Score:     review.Score,
		CreatedAt: unixOrZero(review.CreatedAt),
		UpdatedAt: unixOrZero(review.UpdatedAt),
	}
}

func reviewToEntity(model *ReviewModel) (*entities.Review, error) {
	review := &entities.Review{
		ID:        model.ID,
		TitleID:   model.TitleID,
		AuthorID:  model.AuthorID,
		Text:      model.Text,
		Score:     model.Score,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
	}

	if model.Author != nil {
		author, err := (&UserRepository{}).toEntity(model.Author)
		if err != nil {
			return nil, err
		}
		review.Author = author
	}

	return review, nil
}
