package entities

import (
	"time"

	"github.com/reviewhub/reviewhub-backend/internal/domain/valueobjects"
)

// Genre representa um gênero de obras
type Genre struct {
	ID        string
	Name      string
	Slug      valueobjects.Slug
	CreatedAt time.Time
}

// Validate valida regras de negócio da entidade Genre
func (g *Genre) Validate() error {
	if g.Name == "" {
		return ErrNameRequired
	}
	if g.Slug.String() == "" {
		return ErrSlugRequired
	}
	return nil
}
