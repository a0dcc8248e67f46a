package dto

import (
	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
)

// CreateCategoryRequest representa a requisição para criar uma categoria
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=256"`
	Slug string `json:"slug" binding:"required,slug"`
}

// CategoryResponse representa a resposta de uma categoria
type CategoryResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ToCategoryResponse converte uma entidade Category para CategoryResponse
func ToCategoryResponse(category *entities.Category) CategoryResponse {
	return CategoryResponse{
		Name: category.Name,
		Slug: category.Slug.String(),
	}
}

// ToCategoryResponses converte uma lista de categorias
func ToCategoryResponses(categories []*entities.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return responses
}

// CreateGenreRequest representa a requisição para criar um gênero
type CreateGenreRequest struct {
	Name string `json:"name" binding:"required,max=256"`
	Slug string `json:"slug" binding:"required,slug"`
}

// GenreResponse representa a resposta de um gênero
type GenreResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ToGenreResponse converte uma entidade Genre para GenreResponse
func ToGenreResponse(genre *entities.Genre) GenreResponse {
	return GenreResponse{
		Name: genre.Name,
		Slug: genre.Slug.String(),
	}
}

// ToGenreResponses converte uma lista de gêneros
func ToGenreResponses(genres []*entities.Genre) []GenreResponse {
	responses := make([]GenreResponse, len(genres))
	for i, genre := range genres {
		responses[i] = ToGenreResponse(genre)
	}
	return responses
}

// CreateTitleRequest representa a requisição para criar uma obra
type CreateTitleRequest struct {
	Name        string   `json:"name" binding:"required,max=256"`
	Year        int      `json:"year" binding:"required,notfuture"`
	Description string   `json:"description" binding:"omitempty,max=4000"`
	Category    string   `json:"category" binding:"omitempty,slug"`
	Genres      []string `json:"genre" binding:"omitempty,dive,slug"`
}

// UpdateTitleRequest representa a requisição para alterar uma obra
type UpdateTitleRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=256"`
	Year        *int     `json:"year" binding:"omitempty,notfuture"`
	Description *string  `json:"description" binding:"omitempty,max=4000"`
	Category    *string  `json:"category" binding:"omitempty"`
	Genres      []string `json:"genre" binding:"omitempty,dive,slug"`
}

// TitleResponse representa a resposta de uma obra.
// Rating é a média das notas arredondada; null sem reviews.
type TitleResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Year        int               `json:"year"`
	Description string            `json:"description,omitempty"`
	Rating      *int              `json:"rating"`
	Category    *CategoryResponse `json:"category"`
	Genres      []GenreResponse   `json:"genre"`
}

// ToTitleResponse converte uma entidade Title para TitleResponse
func ToTitleResponse(title *entities.Title) TitleResponse {
	var category *CategoryResponse
	if title.Category != nil {
		resp := ToCategoryResponse(title.Category)
		category = &resp
	}

	genres := make([]GenreResponse, len(title.Genres))
	for i := range title.Genres {
		genres[i] = ToGenreResponse(&title.Genres[i])
	}

	return TitleResponse{
		ID:          title.ID,
		Name:        title.Name,
		Year:        title.Year,
		Description: title.Description,
		Rating:      title.Rating,
		Category:    category,
		Genres:      genres,
	}
}

// ToTitleResponses converte uma lista de obras
func ToTitleResponses(titles []*entities.Title) []TitleResponse {
	responses := make([]TitleResponse, len(titles))
	for i, title := range titles {
		responses[i] = ToTitleResponse(title)
	}
	return responses
}
