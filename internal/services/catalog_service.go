package services

import (
	"context"

	"github.com/reviewhub/reviewhub-backend/internal/domain"
	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
	"github.com/reviewhub/reviewhub-backend/internal/domain/errors"
	"github.com/reviewhub/reviewhub-backend/internal/domain/ports"
	"github.com/reviewhub/reviewhub-backend/internal/domain/repositories"
	"github.com/reviewhub/reviewhub-backend/internal/domain/valueobjects"
)

// CatalogService contém a lógica de negócio para categorias, gêneros
// e obras
type CatalogService struct {
	categoryRepo repositories.CategoryRepository
	genreRepo    repositories.GenreRepository
	titleRepo    repositories.TitleRepository
	uow          domain.UnitOfWork
	logger       ports.Logger
}

// NewCatalogService cria um novo CatalogService
func NewCatalogService(
	categoryRepo repositories.CategoryRepository,
	genreRepo repositories.GenreRepository,
	titleRepo repositories.TitleRepository,
	uow domain.UnitOfWork,
	logger ports.Logger,
) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		genreRepo:    genreRepo,
		titleRepo:    titleRepo,
		uow:          uow,
		logger:       logger,
	}
}

// CreateCategory cria uma nova categoria
func (s *CatalogService) CreateCategory(ctx context.Context, name, slug string) (*entities.Category, error) {
	slugVO, err := valueobjects.NewSlug(slug)
	if err != nil {
		return nil, errors.ErrInvalidSlug
	}

	category := &entities.Category{Name: name, Slug: slugVO}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("category created", "slug", slug)
	return category, nil
}

// DeleteCategory remove uma categoria; as obras associadas ficam sem
// categoria (set null), não são removidas
func (s *CatalogService) DeleteCategory(ctx context.Context, slug string) error {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if category == nil {
		return errors.ErrCategoryNotFound
	}

	if err := s.categoryRepo.DeleteBySlug(ctx, slug); err != nil {
		return err
	}

	s.logger.Info("category deleted", "slug", slug)
	return nil
}

// ListCategories lista categorias
func (s *CatalogService) ListCategories(ctx context.Context, filters repositories.CatalogFilters) ([]*entities.Category, int64, error) {
	return s.categoryRepo.List(ctx, filters)
}

// CreateGenre cria um novo gênero
func (s *CatalogService) CreateGenre(ctx context.Context, name, slug string) (*entities.Genre, error) {
	slugVO, err := valueobjects.NewSlug(slug)
	if err != nil {
		return nil, errors.ErrInvalidSlug
	}

	genre := &entities.Genre{Name: name, Slug: slugVO}
	if err := genre.Validate(); err != nil {
		return nil, err
	}

	if err := s.genreRepo.Create(ctx, genre); err != nil {
		return nil, err
	}

	s.logger.Info("genre created", "slug", slug)
	return genre, nil
}

// DeleteGenre remove um gênero
func (s *CatalogService) DeleteGenre(ctx context.Context, slug string) error {
	genre, err := s.genreRepo.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if genre == nil {
		return errors.ErrGenreNotFound
	}

	if err := s.genreRepo.DeleteBySlug(ctx, slug); err != nil {
		return err
	}

	s.logger.Info("genre deleted", "slug", slug)
	return nil
}

// ListGenres lista gêneros
func (s *CatalogService) ListGenres(ctx context.Context, filters repositories.CatalogFilters) ([]*entities.Genre, int64, error) {
	return s.genreRepo.List(ctx, filters)
}

// TitleInput representa os dados para criar ou alterar uma obra
type TitleInput struct {
	Name         string
	Year         int
	Description  string
	CategorySlug string
	GenreSlugs   []string
}

// CreateTitle cria uma nova obra com seus gêneros
func (s *CatalogService) CreateTitle(ctx context.Context, input TitleInput) (*entities.Title, error) {
	title := &entities.Title{
		Name:        input.Name,
		Year:        input.Year,
		Description: input.Description,
	}
	if err := title.Validate(); err != nil {
		return nil, err
	}

	if input.CategorySlug != "" {
		category, err := s.categoryRepo.FindBySlug(ctx, input.CategorySlug)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, errors.ErrCategoryNotFound
		}
		title.Category = category
	}

	genres, genreIDs, err := s.resolveGenres(ctx, input.GenreSlugs)
	if err != nil {
		return nil, err
	}
	title.Genres = genres

	// Obra + join table em uma transação
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.titleRepo.Create(txCtx, title, genreIDs)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("title created", "name", title.Name, "year", title.Year)
	return title, nil
}

// GetTitle busca uma obra por id (com rating derivado)
func (s *CatalogService) GetTitle(ctx context.Context, id string) (*entities.Title, error) {
	title, err := s.titleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, errors.ErrTitleNotFound
	}
	return title, nil
}

// UpdateTitleInput representa os campos alteráveis de uma obra.
// Campos nil não são alterados.
type UpdateTitleInput struct {
	Name         *string
	Year         *int
	Description  *string
	CategorySlug *string
	GenreSlugs   []string
}

// UpdateTitle altera uma obra existente
func (s *CatalogService) UpdateTitle(ctx context.Context, id string, input UpdateTitleInput) (*entities.Title, error) {
	title, err := s.GetTitle(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		title.Name = *input.Name
	}
	if input.Year != nil {
		title.Year = *input.Year
	}
	if input.Description != nil {
		title.Description = *input.Description
	}
	if input.CategorySlug != nil {
		if *input.CategorySlug == "" {
			title.Category = nil
		} else {
			category, err := s.categoryRepo.FindBySlug(ctx, *input.CategorySlug)
			if err != nil {
				return nil, err
			}
			if category == nil {
				return nil, errors.ErrCategoryNotFound
			}
			title.Category = category
		}
	}

	if err := title.Validate(); err != nil {
		return nil, err
	}

	var genreIDs []string
	if input.GenreSlugs != nil {
		genres, ids, err := s.resolveGenres(ctx, input.GenreSlugs)
		if err != nil {
			return nil, err
		}
		title.Genres = genres
		genreIDs = ids
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.titleRepo.Update(txCtx, title, genreIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetTitle(ctx, id)
}

// DeleteTitle remove uma obra e, por cascata, suas reviews
func (s *CatalogService) DeleteTitle(ctx context.Context, id string) error {
	title, err := s.GetTitle(ctx, id)
	if err != nil {
		return err
	}

	if err := s.titleRepo.Delete(ctx, title.ID); err != nil {
		return err
	}

	s.logger.Info("title deleted", "name", title.Name)
	return nil
}

// ListTitles lista obras com filtros
func (s *CatalogService) ListTitles(ctx context.Context, filters repositories.TitleFilters) ([]*entities.Title, int64, error) {
	return s.titleRepo.List(ctx, filters)
}

// resolveGenres converte slugs em gêneros persistidos; slug
// desconhecido é erro
func (s *CatalogService) resolveGenres(ctx context.Context, slugs []string) ([]entities.Genre, []string, error) {
	if len(slugs) == 0 {
		return nil, nil, nil
	}

	genres, err := s.genreRepo.FindBySlugs(ctx, slugs)
	if err != nil {
		return nil, nil, err
	}
	if len(genres) != len(slugs) {
		return nil, nil, errors.ErrGenreNotFound
	}

	ids := make([]string, len(genres))
	for i, genre := range genres {
		ids[i] = genre.ID
	}
	return genres, ids, nil
}
