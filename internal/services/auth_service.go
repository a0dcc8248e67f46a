package services

import (
	"context"

	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
	"github.com/reviewhub/reviewhub-backend/internal/domain/errors"
	"github.com/reviewhub/reviewhub-backend/internal/domain/ports"
	"github.com/reviewhub/reviewhub-backend/internal/domain/repositories"
	"github.com/reviewhub/reviewhub-backend/internal/domain/valueobjects"
)

// AuthService implementa o fluxo de cadastro em duas etapas:
// signup emite um código de confirmação por email, token troca o
// código por um bearer access token.
type AuthService struct {
	userRepo   repositories.UserRepository
	codes      ports.ConfirmationStore
	tokens     ports.TokenManager
	mailer     ports.Mailer
	translator ports.Translator
	logger     ports.Logger
	codeTTL    string
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	codes ports.ConfirmationStore,
	tokens ports.TokenManager,
	mailer ports.Mailer,
	translator ports.Translator,
	logger ports.Logger,
	codeTTL string,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		codes:      codes,
		tokens:     tokens,
		mailer:     mailer,
		translator: translator,
		logger:     logger,
		codeTTL:    codeTTL,
	}
}

// SignupInput representa os dados de cadastro
type SignupInput struct {
	Username string
	Email    string
	Language string // idioma do email de confirmação
}

// Signup registra (ou re-registra) um usuário e envia o código de
// confirmação por email.
//
// Regras de conflito: email já vinculado a outro username e username
// já vinculado a outro email são erros distintos. Repetir o cadastro
// com o mesmo par (username, email) é permitido e reemite o código.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) error {
	if err := entities.ValidateUsername(input.Username); err != nil {
		if err == entities.ErrUsernameReserved {
			return errors.ErrReservedUsername
		}
		return err
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return errors.ErrInvalidEmail
	}

	byUsername, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		return err
	}
	byEmail, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return err
	}

	if byUsername != nil && byUsername.Email.String() != email.String() {
		return errors.ErrUsernameTaken
	}
	if byEmail != nil && byEmail.Username != input.Username {
		return errors.ErrEmailTaken
	}

	user := byUsername
	if user == nil {
		user = &entities.User{
			Username: input.Username,
			Email:    email,
			Role:     entities.RoleUser,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}
		s.logger.Info("user registered", "username", user.Username)
	}

	code, err := s.codes.Issue(ctx, user.ID)
	if err != nil {
		return err
	}

	lang := input.Language
	params := map[string]interface{}{
		"Username": user.Username,
		"Code":     code,
		"TTL":      s.codeTTL,
	}
	subject := s.translator.T(lang, "mail.confirmation.subject", params)
	body := s.translator.T(lang, "mail.confirmation.body", params)

	if err := s.mailer.Send(ctx, email.String(), subject, body); err != nil {
		return err
	}

	s.logger.Info("confirmation code sent", "username", user.Username)
	return nil
}

// IssueToken troca username + código de confirmação por um access token.
// Username desconhecido é not-found; código errado é falha de
// autenticação, não de validação.
func (s *AuthService) IssueToken(ctx context.Context, username, code string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errors.ErrUserNotFound
	}

	if err := s.codes.Verify(ctx, user.ID, code); err != nil {
		s.logger.Warn("confirmation code rejected", "username", username, "reason", err)
		return "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", err
	}

	s.logger.Info("access token issued", "username", username)
	return token, nil
}

// Authenticate resolve um bearer token para o usuário dono dele
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*entities.User, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrInvalidToken
	}
	return user, nil
}
