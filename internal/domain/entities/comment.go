package entities

import (
	"time"
)

// Comment representa um comentário em uma review
type Comment struct {
	ID        string
	ReviewID  string
	AuthorID  string
	Author    *User
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate valida regras de negócio da entidade Comment
func (c *Comment) Validate() error {
	if c.Text == "" {
		return ErrTextRequired
	}
	return nil
}

// CanBeEditedBy verifica se o usuário pode alterar/apagar este comentário
func (c *Comment) CanBeEditedBy(u *User) bool {
	if u == nil {
		return false
	}
	return c.AuthorID == u.ID || u.CanModerate()
}
