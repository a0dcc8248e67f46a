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
	"github.com/reviewhub/reviewhub-backend/internal/domain/valueobjects"
)

// GenreRepository implementa repositories.GenreRepository
type GenreRepository struct {
	db *gorm.DB
}

// NewGenreRepository cria um novo GenreRepository
func NewGenreRepository(db *gorm.DB) repositories.GenreRepository {
	return &GenreRepository{db: db}
}

func (r *GenreRepository) Create(ctx context.Context, genre *entities.Genre) error {
	model := genreToModel(genre)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrSlugTaken
		}
		return err
	}

	genre.ID = model.ID
	genre.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *GenreRepository) FindBySlug(ctx context.Context, slug string) (*entities.Genre, error) {
	var model GenreModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return genreToEntity(&model)
}

func (r *GenreRepository) FindBySlugs(ctx context.Context, slugs []string) ([]entities.Genre, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	var models []*GenreModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("slug IN ?", slugs).Find(&models).Error; err != nil {
		return nil, err
	}

	genres := make([]entities.Genre, 0, len(models))
	for _, model := range models {
		genre, err := genreToEntity(model)
		if err != nil {
			return nil, err
		}
		genres = append(genres, *genre)
	}

	return genres, nil
}

func (r *GenreRepository) DeleteBySlug(ctx context.Context, slug string) error {
	db := dbFromContext(ctx, r.db)
	var model GenreModel
	if err := db.Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	// Limpar associações na join table antes de apagar o gênero
	if err := db.Exec("DELETE FROM title_genres WHERE genre_model_id = ?", model.ID).Error; err != nil {
		return err
	}

	return db.Delete(&model).Error
}

func (r *GenreRepository) List(ctx context.Context, filters repositories.CatalogFilters) ([]*entities.Genre, int64, error) {
	var models []*GenreModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&GenreModel{})

	if filters.Search != "" {
		query = query.Where("name LIKE ?", "%"+filters.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	filters.Normalize()
	query = query.Order("name").Limit(filters.PageSize).Offset(filters.Offset())

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	genres := make([]*entities.Genre, 0, len(models))
	for _, model := range models {
		genre, err := genreToEntity(model)
		if err != nil {
			return nil, 0, err
		}
		genres = append(genres, genre)
	}

	return genres, total, nil
}

// Conversores
func genreToModel(genre *entities.Genre) *GenreModel {
	return &GenreModel{
		ID:        genre.ID,
		Name:      genre.Name,
		Slug:      genre.Slug.String(),
		CreatedAt: unixOrZero(genre.CreatedAt),
	}
}

func genreToEntity(model *GenreModel) (*entities.Genre, error) {
	slug, err := valueobjects.NewSlug(model.Slug)
	if err != nil {
		return nil, err
	}

	return &entities.Genre{
		ID:        model.ID,
		Name:      model.Name,
		Slug:      slug,
		CreatedAt: time.Unix(model.CreatedAt, 0),
	}, nil
}
