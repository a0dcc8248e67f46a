package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
	"github.com/reviewhub/reviewhub-backend/internal/domain/errors"
	"github.com/reviewhub/reviewhub-backend/internal/infrastructure/i18n"
)

// CurrentUserContextKey é a chave do principal autenticado no contexto do Gin
const CurrentUserContextKey = "current_user"

// Authenticator resolve um bearer token para o usuário dono dele
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}

// AuthMiddleware resolve o bearer token da requisição para um
// principal. Leituras são abertas, então a ausência de token não
// bloqueia aqui; os guards RequireAuthenticated/RequireAdmin decidem.
type AuthMiddleware struct {
	auth Authenticator
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(auth Authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// ResolvePrincipal extrai e valida o token, quando presente.
// Token presente mas inválido é rejeitado na hora: um cliente que se
// identifica mal não vira anônimo silenciosamente.
func (m *AuthMiddleware) ResolvePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header || tokenString == "" {
			abortWithProblem(c, http.StatusUnauthorized, errors.ProblemTypeUnauthorized,
				"error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		user, err := m.auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			abortWithProblem(c, http.StatusUnauthorized, errors.ProblemTypeUnauthorized,
				"error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		c.Set(CurrentUserContextKey, user)
		c.Next()
	}
}

// RequireAuthenticated bloqueia requisições anônimas
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			abortWithProblem(c, http.StatusUnauthorized, errors.ProblemTypeUnauthorized,
				"error.unauthorized.title", "error.unauthorized.detail")
			return
		}
		c.Next()
	}
}

// RequireAdmin bloqueia quem não é admin (ou superuser)
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortWithProblem(c, http.StatusUnauthorized, errors.ProblemTypeUnauthorized,
				"error.unauthorized.title", "error.unauthorized.detail")
			return
		}
		if !user.IsAdmin() {
			abortWithProblem(c, http.StatusForbidden, errors.ProblemTypeForbidden,
				"error.forbidden.title", "error.forbidden.detail")
			return
		}
		c.Next()
	}
}

// CurrentUser retorna o principal autenticado, ou nil para anônimo
func CurrentUser(c *gin.Context) *entities.User {
	value, exists := c.Get(CurrentUserContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*entities.User)
	if !ok {
		return nil
	}
	return user
}

// abortWithProblem escreve uma resposta RFC 7807 e interrompe a chain.
// Não usa o pacote dto para evitar ciclo de imports (dto depende das
// chaves de contexto deste pacote).
func abortWithProblem(c *gin.Context, status int, problemType, titleKey, detailKey string) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	problem := problems.NewStatusProblem(status)
	problem.Type = baseURL + problemType
	problem.Title = translate(c, titleKey)
	problem.Detail = translate(c, detailKey)
	problem.Instance = c.Request.URL.Path

	c.AbortWithStatusJSON(status, problem)
}

// translate resolve uma chave i18n usando o serviço do contexto
func translate(c *gin.Context, key string) string {
	value, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}
	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	lang, _ := c.Get(LanguageContextKey)
	langStr, _ := lang.(string)
	if langStr == "" {
		langStr = service.GetDefaultLanguage()
	}

	return service.T(langStr, key)
}
