package entities

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/reviewhub/reviewhub-backend/internal/domain/valueobjects"
)

const (
	// MaxUsernameLength é o tamanho máximo do campo username
	MaxUsernameLength = 150
	// ReservedUsername é reservado para o endpoint de auto-atendimento /users/me
	ReservedUsername = "me"
)

// usernamePattern: apenas letras, números e @/./+/-/_
var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUsernameTooLong  = errors.New("username must be at most 150 characters")
	ErrUsernameInvalid  = errors.New("username may contain only letters, numbers and @/./+/-/_")
	ErrUsernameReserved = errors.New("username is reserved")
	ErrEmailRequired    = errors.New("email is required")
	ErrRoleInvalid      = errors.New("invalid role")
)

// User representa um usuário do sistema
type User struct {
	ID        string
	Username  string
	Email     valueobjects.Email
	Role      Role
	Bio       string
	Superuser bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin verifica se o usuário tem privilégios de administrador.
// Superuser é o escape hatch: sempre admin, independente do role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Superuser
}

// IsModerator verifica se o usuário é moderador
func (u *User) IsModerator() bool {
	return u.Role == RoleModerator
}

// CanModerate verifica se o usuário pode editar/apagar conteúdo de terceiros
func (u *User) CanModerate() bool {
	return u.IsAdmin() || u.IsModerator()
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if err := ValidateUsername(u.Username); err != nil {
		return err
	}

	if u.Email.String() == "" {
		return ErrEmailRequired
	}

	if !u.Role.IsValid() {
		return ErrRoleInvalid
	}

	return nil
}

// ValidateUsername valida o formato do username.
// "me" é proibido (case-insensitive) pois colide com a rota /users/me.
func ValidateUsername(username string) error {
	if username == "" {
		return ErrUsernameRequired
	}
	if len(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	if !usernamePattern.MatchString(username) {
		return ErrUsernameInvalid
	}
	if strings.EqualFold(username, ReservedUsername) {
		return ErrUsernameReserved
	}
	return nil
}
