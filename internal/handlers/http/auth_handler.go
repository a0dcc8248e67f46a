package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reviewhub/reviewhub-backend/internal/handlers/dto"
	"github.com/reviewhub/reviewhub-backend/internal/services"
)

// AuthHandler lida com cadastro e emissão de tokens
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup registra um usuário e envia o código de confirmação por email
//
//	@Summary	Register a user and email a confirmation code
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body	dto.SignupRequest	true	"signup data"
//	@Success	200
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	409	{object}	dto.ErrorResponse
//	@Router		/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	err := h.authService.Signup(c.Request.Context(), services.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Language: dto.GetLanguage(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": req.Username,
		"email":    req.Email,
	})
}

// Token troca username + código de confirmação por um access token
//
//	@Summary	Exchange a confirmation code for a bearer token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.TokenRequest	true	"token request"
//	@Success	200		{object}	dto.TokenResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.TokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	token, err := h.authService.IssueToken(c.Request.Context(), req.Username, req.ConfirmationCode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
