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

// CategoryRepository implementa repositories.CategoryRepository
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository cria um novo CategoryRepository
func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	model := categoryToModel(category)
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

	category.ID = model.ID
	category.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	var model CategoryModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return categoryToEntity(&model)
}

func (r *CategoryRepository) DeleteBySlug(ctx context.Context, slug string) error {
	db := dbFromContext(ctx, r.db)
	// titles.category_id cai para NULL via ON DELETE SET NULL
	return db.Where("slug = ?", slug).Delete(&CategoryModel{}).Error
}

func (r *CategoryRepository) List(ctx context.Context, filters repositories.CatalogFilters) ([]*entities.Category, int64, error) {
	var models []*CategoryModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&CategoryModel{})

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

	categories := make([]*entities.Category, 0, len(models))
	for _, model := range models {
		category, err := categoryToEntity(model)
		if err != nil {
			return nil, 0, err
		}
		categories = append(categories, category)
	}

	return categories, total, nil
}

// Conversores
func categoryToModel(category *entities.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		Slug:      category.Slug.String(),
		CreatedAt: unixOrZero(category.CreatedAt),
	}
}

func categoryToEntity(model *CategoryModel) (*entities.Category, error) {
	slug, err := valueobjects.NewSlug(model.Slug)
	if err != nil {
		return nil, err
	}

	return &entities.Category{
		ID:        model.ID,
		Name:      model.Name,
		Slug:      slug,
		CreatedAt: time.Unix(model.CreatedAt, 0),
	}, nil
}
