package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound     = errors.New("error.user_not_found")
	ErrCategoryNotFound = errors.New("error.category_not_found")
	ErrGenreNotFound    = errors.New("error.genre_not_found")
	ErrTitleNotFound    = errors.New("error.title_not_found")
	ErrReviewNotFound   = errors.New("error.review_not_found")
	ErrCommentNotFound  = errors.New("error.comment_not_found")

	ErrUsernameTaken    = errors.New("error.username_taken")
	ErrEmailTaken       = errors.New("error.email_taken")
	ErrSlugTaken        = errors.New("error.slug_taken")
	ErrDuplicateReview  = errors.New("error.duplicate_review")
	ErrReservedUsername = errors.New("error.reserved_username")

	ErrInvalidConfirmationCode = errors.New("error.invalid_confirmation_code")
	ErrConfirmationCodeExpired = errors.New("error.confirmation_code_expired")
	ErrTooManyCodeRequests     = errors.New("error.too_many_code_requests")
	ErrTooManyCodeAttempts     = errors.New("error.too_many_code_attempts")

	ErrUnauthorized = errors.New("error.unauthorized")
	ErrForbidden    = errors.New("error.forbidden")
	ErrInvalidToken = errors.New("error.invalid_token")
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
	ErrInvalidSlug  = errors.New("error.invalid_slug")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional.
// Params carrega valores para interpolação na mensagem traduzida
// (ex.: o nome da obra em error.duplicate_review).
type DomainError struct {
	Type    string
	Title   string
	Message string
	Params  map[string]interface{}
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
