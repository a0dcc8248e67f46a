package entities

import (
	"errors"
	"time"
)

const (
	MinScore = 1
	MaxScore = 10
)

var (
	ErrTextRequired    = errors.New("text is required")
	ErrScoreOutOfRange = errors.New("score must be between 1 and 10")
)

// Review representa uma avaliação de uma obra.
// Cada autor pode avaliar uma obra no máximo uma vez.
type Review struct {
	ID        string
	TitleID   string
	AuthorID  string
	Author    *User
	Text      string
	Score     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate valida regras de negócio da entidade Review
func (r *Review) Validate() error {
	if r.Text == "" {
		return ErrTextRequired
	}
	if r.Score < MinScore || r.Score > MaxScore {
		return ErrScoreOutOfRange
	}
	return nil
}

// CanBeEditedBy verifica se o usuário pode alterar/apagar esta review.
// Autor, moderador e admin podem.
func (r *Review) CanBeEditedBy(u *User) bool {
	if u == nil {
		return false
	}
	return r.AuthorID == u.ID || u.CanModerate()
}
