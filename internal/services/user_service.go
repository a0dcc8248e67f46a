package services

import (
	"context"

	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
	"github.com/reviewhub/reviewhub-backend/internal/domain/errors"
	"github.com/reviewhub/reviewhub-backend/internal/domain/ports"
	"github.com/reviewhub/reviewhub-backend/internal/domain/repositories"
	"github.com/reviewhub/reviewhub-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(userRepo repositories.UserRepository, logger ports.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Username string
	Email    string
	Role     string
	Bio      string
}

// CreateUser cria um novo usuário (endpoint administrativo)
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	role := entities.Role(input.Role)
	if input.Role == "" {
		role = entities.RoleUser
	}

	user := &entities.User{
		Username: input.Username,
		Email:    email,
		Role:     role,
		Bio:      input.Bio,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	// Pre-check para distinguir os dois conflitos; o índice único é
	// a garantia final
	if existing, err := s.userRepo.FindByUsername(ctx, input.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, errors.ErrUsernameTaken
	}
	if existing, err := s.userRepo.FindByEmail(ctx, email.String()); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, errors.ErrEmailTaken
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "username", user.Username, "role", user.Role)
	return user, nil
}

// GetUserByUsername busca um usuário pelo username
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// UpdateUserInput representa os campos alteráveis de um usuário.
// Campos nil não são alterados.
type UpdateUserInput struct {
	Email *string
	Role  *string
	Bio   *string
}

// UpdateUser altera um usuário existente (endpoint administrativo)
func (s *UserService) UpdateUser(ctx context.Context, username string, input UpdateUserInput) (*entities.User, error) {
	user, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, errors.ErrInvalidEmail
		}
		if other, err := s.userRepo.FindByEmail(ctx, email.String()); err != nil {
			return nil, err
		} else if other != nil && other.ID != user.ID {
			return nil, errors.ErrEmailTaken
		}
		user.Email = email
	}
	if input.Role != nil {
		role := entities.Role(*input.Role)
		if !role.IsValid() {
			return nil, entities.ErrRoleInvalid
		}
		user.Role = role
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateSelf altera o próprio registro via /users/me.
// O campo role é ignorado: usuários não promovem a si mesmos.
func (s *UserService) UpdateSelf(ctx context.Context, actor *entities.User, input UpdateUserInput) (*entities.User, error) {
	input.Role = nil
	return s.UpdateUser(ctx, actor.Username, input)
}

// DeleteUser remove um usuário; reviews e comentários do autor caem
// junto (cascade)
func (s *UserService) DeleteUser(ctx context.Context, username string) error {
	user, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return err
	}

	s.logger.Info("user deleted", "username", username)
	return nil
}

// ListUsers lista usuários com filtros
func (s *UserService) ListUsers(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, int64, error) {
	return s.userRepo.List(ctx, filters)
}
