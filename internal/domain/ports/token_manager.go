package ports

import "github.com/reviewhub/reviewhub-backend/internal/domain/entities"

// TokenClaims são os claims extraídos de um access token válido
type TokenClaims struct {
	UserID   string
	Username string
	Role     entities.Role
}

// TokenManager emite e valida bearer access tokens
type TokenManager interface {
	Issue(user *entities.User) (string, error)
	Verify(token string) (*TokenClaims, error)
}
