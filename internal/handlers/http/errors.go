package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
	"github.com/reviewhub/reviewhub-backend/internal/domain/errors"
	"github.com/reviewhub/reviewhub-backend/internal/handlers/dto"
)

// respondError traduz erros de domínio em respostas RFC 7807.
// Toda a validação de regras de negócio converge para cá, qualquer
// que seja o endpoint de entrada.
func respondError(c *gin.Context, err error) {
	var domainErr *errors.DomainError
	var params map[string]interface{}
	if errs.As(err, &domainErr) {
		params = domainErr.Params
	}

	switch {
	// not found
	case errs.Is(err, errors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "User"))
	case errs.Is(err, errors.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Category"))
	case errs.Is(err, errors.ErrGenreNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Genre"))
	case errs.Is(err, errors.ErrTitleNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Title"))
	case errs.Is(err, errors.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Review"))
	case errs.Is(err, errors.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Comment"))

	// conflitos; o texto do sentinel é o message ID da tradução
	case errs.Is(err, errors.ErrUsernameTaken),
		errs.Is(err, errors.ErrEmailTaken),
		errs.Is(err, errors.ErrSlugTaken),
		errs.Is(err, errors.ErrDuplicateReview):
		c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, sentinelKey(err), params))

	// validação de regra de negócio
	case errs.Is(err, errors.ErrReservedUsername), errs.Is(err, entities.ErrUsernameReserved):
		c.JSON(http.StatusBadRequest, validationProblem(c, "error.reserved_username", params))
	case errs.Is(err, entities.ErrYearInFuture):
		c.JSON(http.StatusBadRequest, validationProblem(c, "error.year_in_future", params))
	case errs.Is(err, entities.ErrScoreOutOfRange):
		c.JSON(http.StatusBadRequest, validationProblem(c, "error.score_out_of_range", params))

	// validação das entidades: binding deixa passar strings vazias em
	// campos opcionais de PATCH, o Validate é a última barreira
	case errs.Is(err, errors.ErrInvalidEmail),
		errs.Is(err, errors.ErrInvalidSlug),
		errs.Is(err, entities.ErrNameRequired),
		errs.Is(err, entities.ErrTextRequired),
		errs.Is(err, entities.ErrSlugRequired),
		errs.Is(err, entities.ErrYearRequired),
		errs.Is(err, entities.ErrUsernameRequired),
		errs.Is(err, entities.ErrUsernameTooLong),
		errs.Is(err, entities.ErrUsernameInvalid),
		errs.Is(err, entities.ErrEmailRequired),
		errs.Is(err, entities.ErrRoleInvalid):
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))

	// autenticação
	case errs.Is(err, errors.ErrInvalidConfirmationCode),
		errs.Is(err, errors.ErrConfirmationCodeExpired),
		errs.Is(err, errors.ErrTooManyCodeAttempts):
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, sentinelKey(err)))
	case errs.Is(err, errors.ErrUnauthorized), errs.Is(err, errors.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, ""))
	case errs.Is(err, errors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))

	default:
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}

// sentinelKey devolve o message ID carregado pelo sentinel
func sentinelKey(err error) string {
	for _, sentinel := range []error{
		errors.ErrUsernameTaken,
		errors.ErrEmailTaken,
		errors.ErrSlugTaken,
		errors.ErrDuplicateReview,
		errors.ErrInvalidConfirmationCode,
		errors.ErrConfirmationCodeExpired,
		errors.ErrTooManyCodeAttempts,
	} {
		if errs.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "error.internal.detail"
}

// validationProblem cria uma resposta 400 com detail específico
func validationProblem(c *gin.Context, detailKey string, params map[string]interface{}) dto.ErrorResponse {
	return dto.NewErrorResponseI18n(c, errors.ProblemTypeValidation,
		"error.validation.title", detailKey, http.StatusBadRequest, params)
}

// respondBindingError traduz erros de binding/validação do Gin em 400
// com a lista de campos rejeitados
func respondBindingError(c *gin.Context, err error) {
	var fieldErrors []dto.ValidationError

	var invalid validator.ValidationErrors
	if errs.As(err, &invalid) {
		for _, fe := range invalid {
			fieldErrors = append(fieldErrors, dto.ValidationError{
				Field:   fe.Field(),
				Message: fe.Error(),
				Tag:     fe.Tag(),
			})
		}
	}

	c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, fieldErrors))
}
