package postgres

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
	"github.com/reviewhub/reviewhub-backend/internal/domain/repositories"
)

// TitleRepository implementa repositories.TitleRepository
type TitleRepository struct {
	db *gorm.DB
}

// NewTitleRepository cria um novo TitleRepository
func NewTitleRepository(db *gorm.DB) repositories.TitleRepository {
	return &TitleRepository{db: db}
}

func (r *TitleRepository) Create(ctx context.Context, title *entities.Title, genreIDs []string) error {
	model := titleToModel(title)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := dbFromContext(ctx, r.db)
	// Associações são gravadas separadamente para controlar a join table
	if err := db.Omit("Genres", "Category").Create(model).Error; err != nil {
		return err
	}

	if err := r.replaceGenres(db, model.ID, genreIDs); err != nil {
		return err
	}

	title.ID = model.ID
	title.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *TitleRepository) FindByID(ctx context.Context, id string) (*entities.Title, error) {
	var model TitleModel

	db := dbFromContext(ctx, r.db)
	if err := db.Preload("Category").Preload("Genres").Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	ratings, err := r.ratingsFor(db, []string{model.ID})
	if err != nil {
		return nil, err
	}

	return titleToEntity(&model, ratings)
}

func (r *TitleRepository) Update(ctx context.Context, title *entities.Title, genreIDs []string) error {
	model := titleToModel(title)

	db := dbFromContext(ctx, r.db)
	if err := db.Omit("Genres", "Category").Save(model).Error; err != nil {
		return err
	}

	if genreIDs != nil {
		if err := r.replaceGenres(db, model.ID, genreIDs); err != nil {
			return err
		}
	}

	return nil
}

func (r *TitleRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	if err := db.Exec("DELETE FROM title_genres WHERE title_model_id = ?", id).Error; err != nil {
		return err
	}
	// reviews e comments caem via ON DELETE CASCADE
	return db.Delete(&TitleModel{}, "id = ?", id).Error
}

func (r *TitleRepository) List(ctx context.Context, filters repositories.TitleFilters) ([]*entities.Title, int64, error) {
	var models []*TitleModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&TitleModel{})

	if filters.Name != "" {
		query = query.Where("titles.name LIKE ?", "%"+filters.Name+"%")
	}
	if filters.Year != nil {
		query = query.Where("titles.year = ?", *filters.Year)
	}
	if filters.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = titles.category_id").
			Where("categories.slug = ?", filters.CategorySlug)
	}
	if filters.GenreSlug != "" {
		query = query.
			Joins("JOIN title_genres ON title_genres.title_model_id = titles.id").
			Joins("JOIN genres ON genres.id = title_genres.genre_model_id").
			Where("genres.slug = ?", filters.GenreSlug)
	}

	// Count em sessão própria: o Distinct alteraria o SELECT do Find
	// abaixo e as linhas voltariam só com o id preenchido
	var total int64
	if err := query.Session(&gorm.Session{}).Distinct("titles.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	filters.Normalize()
	query = query.Preload("Category").Preload("Genres").
		Order("titles.name").Limit(filters.PageSize).Offset(filters.Offset())

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	ids := make([]string, len(models))
	for i, model := range models {
		ids[i] = model.ID
	}

	ratings, err := r.ratingsFor(db, ids)
	if err != nil {
		return nil, 0, err
	}

	titles := make([]*entities.Title, 0, len(models))
	for _, model := range models {
		title, err := titleToEntity(model, ratings)
		if err != nil {
			return nil, 0, err
		}
		titles = append(titles, title)
	}

	return titles, total, nil
}

func (r *TitleRepository) replaceGenres(db *gorm.DB, titleID string, genreIDs []string) error {
	if err := db.Exec("DELETE FROM title_genres WHERE title_model_id = ?", titleID).Error; err != nil {
		return err
	}
	for _, genreID := range genreIDs {
		if err := db.Exec(
			"INSERT INTO title_genres (title_model_id, genre_model_id) VALUES (?, ?)",
			titleID, genreID,
		).Error; err != nil {
			return err
		}
	}
	return nil
}

// ratingsFor calcula o rating derivado (média das notas) por obra.
// Obras sem review ficam fora do mapa e o rating resultante é nil.
func (r *TitleRepository) ratingsFor(db *gorm.DB, titleIDs []string) (map[string]int, error) {
	if len(titleIDs) == 0 {
		return map[string]int{}, nil
	}

	var rows []struct {
		TitleID  string
		AvgScore float64
	}

	err := db.Model(&ReviewModel{}).
		Select("title_id, AVG(score) AS avg_score").
		Where("title_id IN ?", titleIDs).
		Group("title_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	ratings := make(map[string]int, len(rows))
	for _, row := range rows {
		ratings[row.TitleID] = int(math.Round(row.AvgScore))
	}
	return ratings, nil
}

// Conversores
func titleToModel(title *entities.Title) *TitleModel {
	var categoryID *string
	if title.Category != nil {
		id := title.Category.ID
		categoryID = &id
	}

	return &TitleModel{
		ID:          title.ID,
		Name:        title.Name,
		Year:        title.Year,
		Description: title.Description,
		CategoryID:  categoryID,
		CreatedAt:   unixOrZero(title.CreatedAt),
		UpdatedAt:   unixOrZero(title.UpdatedAt),
	}
}

func titleToEntity(model *TitleModel, ratings map[string]int) (*entities.Title, error) {
	var category *entities.Category
	if model.Category != nil {
		var err error
		category, err = categoryToEntity(model.Category)
		if err != nil {
			return nil, err
		}
	}

	genres := make([]entities.Genre, 0, len(model.Genres))
	for i := range model.Genres {
		genre, err := genreToEntity(&model.Genres[i])
		if err != nil {
			return nil, err
		}
		genres = append(genres, *genre)
	}

	var rating *int
	if value, ok := ratings[model.ID]; ok {
		rating = &value
	}

	return &entities.Title{
		ID:          model.ID,
		Name:        model.Name,
		Year:        model.Year,
		Description: model.Description,
		Category:    category,
		Genres:      genres,
		Rating:      rating,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}, nil
}
