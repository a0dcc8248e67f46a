package repositories

import (
	"context"

	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
)

// CategoryRepository define a interface para persistência de categorias
type CategoryRepository interface {
	Create(ctx context.Context, category *entities.Category) error
	FindBySlug(ctx context.Context, slug string) (*entities.Category, error)
	// DeleteBySlug remove a categoria; obras que a referenciam ficam
	// sem categoria (set null)
	DeleteBySlug(ctx context.Context, slug string) error
	List(ctx context.Context, filters CatalogFilters) ([]*entities.Category, int64, error)
}

// GenreRepository define a interface para persistência de gêneros
type GenreRepository interface {
	Create(ctx context.Context, genre *entities.Genre) error
	FindBySlug(ctx context.Context, slug string) (*entities.Genre, error)
	FindBySlugs(ctx context.Context, slugs []string) ([]entities.Genre, error)
	DeleteBySlug(ctx context.Context, slug string) error
	List(ctx context.Context, filters CatalogFilters) ([]*entities.Genre, int64, error)
}

// CatalogFilters contém filtros para listagem de categorias e gêneros
type CatalogFilters struct {
	Search string // busca por name
	Pagination
}

// TitleRepository define a interface para persistência de obras.
// Leituras carregam categoria, gêneros e o rating derivado.
type TitleRepository interface {
	Create(ctx context.Context, title *entities.Title, genreIDs []string) error
	FindByID(ctx context.Context, id string) (*entities.Title, error)
	Update(ctx context.Context, title *entities.Title, genreIDs []string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters TitleFilters) ([]*entities.Title, int64, error)
}

// TitleFilters contém filtros para listagem de obras
type TitleFilters struct {
	Name         string // substring de name
	CategorySlug string
	GenreSlug    string
	Year         *int
	Pagination
}
