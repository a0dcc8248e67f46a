package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
	"github.com/reviewhub/reviewhub-backend/internal/domain/repositories"
	"github.com/reviewhub/reviewhub-backend/internal/handlers/dto"
	"github.com/reviewhub/reviewhub-backend/internal/handlers/middleware"
	"github.com/reviewhub/reviewhub-backend/internal/services"
)

// UserHandler lida com as requisições administrativas de usuários
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Create cria um novo usuário
//
//	@Summary	Create a user (admin only)
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CreateUserRequest	true	"user data"
//	@Success	201		{object}	dto.UserResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
		Bio:      req.Bio,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// List lista usuários com paginação
//
//	@Summary	List users (admin only)
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		search		query		string	false	"filter by username"
//	@Param		role		query		string	false	"filter by role"
//	@Param		page		query		int		false	"page"
//	@Param		page_size	query		int		false	"page size"
//	@Success	200			{object}	dto.PaginatedResponse
//	@Router		/users [get]
func (h *UserHandler) List(c *gin.Context) {
	filters := repositories.UserFilters{
		Search:     c.Query("search"),
		Pagination: dto.PaginationFromQuery(c),
	}

	if roleParam := c.Query("role"); roleParam != "" {
		role := entities.Role(roleParam)
		filters.Role = &role
	}

	users, count, err := h.userService.ListUsers(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(dto.ToUserResponses(users), count, filters.Pagination))
}

// Get busca um usuário pelo username
//
//	@Summary	Get a user by username (admin only)
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		username	path		string	true	"username"
//	@Success	200			{object}	dto.UserResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/users/{username} [get]
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.GetUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Update altera um usuário pelo username
//
//	@Summary	Update a user (admin only)
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		username	path		string					true	"username"
//	@Param		request		body		dto.UpdateUserRequest	true	"fields to update"
//	@Success	200			{object}	dto.UserResponse
//	@Failure	404			{object}	dto.ErrorResponse
//	@Router		/users/{username} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("username"), services.UpdateUserInput{
		Email: req.Email,
		Role:  req.Role,
		Bio:   req.Bio,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Delete remove um usuário pelo username
//
//	@Summary	Delete a user (admin only)
//	@Tags		users
//	@Security	BearerAuth
//	@Param		username	path	string	true	"username"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/users/{username} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("username")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Me retorna o usuário autenticado
//
//	@Summary	Get the authenticated user
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.UserResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Router		/users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateMe altera o usuário autenticado. Alteração de role é ignorada.
//
//	@Summary	Update the authenticated user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.UpdateUserRequest	true	"fields to update"
//	@Success	200		{object}	dto.UserResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Router		/users/me [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.UpdateSelf(c.Request.Context(), middleware.CurrentUser(c), services.UpdateUserInput{
		Email: req.Email,
		Role:  req.Role,
		Bio:   req.Bio,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
