package entities

import (
	"errors"
	"time"

	"github.com/reviewhub/reviewhub-backend/internal/domain/valueobjects"
)

var (
	ErrSlugRequired = errors.New("slug is required")
)

// Category representa uma categoria de obras (livro, filme, música...)
type Category struct {
	ID        string
	Name      string
	Slug      valueobjects.Slug
	CreatedAt time.Time
}

// Validate valida regras de negócio da entidade Category
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrNameRequired
	}
	if c.Slug.String() == "" {
		return ErrSlugRequired
	}
	return nil
}
