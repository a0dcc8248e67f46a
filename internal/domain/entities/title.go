package entities

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrYearRequired = errors.New("release year is required")
	ErrYearInFuture = errors.New("release year cannot be in the future")
)

// Title representa uma obra catalogada (livro, filme etc.) que pode
// receber avaliações.
//
// Rating é derivado: média das notas das reviews arredondada para o
// inteiro mais próximo, calculada na leitura. Nil quando não há reviews.
type Title struct {
	ID          string
	Name        string
	Year        int
	Description string
	Category    *Category
	Genres      []Genre
	Rating      *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate valida regras de negócio da entidade Title
func (t *Title) Validate() error {
	if t.Name == "" {
		return ErrNameRequired
	}
	return ValidateYear(t.Year)
}

// ValidateYear rejeita obras que ainda não foram lançadas
func ValidateYear(year int) error {
	if year <= 0 {
		return ErrYearRequired
	}
	if year > time.Now().Year() {
		return fmt.Errorf("%w: %d", ErrYearInFuture, year)
	}
	return nil
}
