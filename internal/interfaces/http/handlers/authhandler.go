package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"revu/internal/application/user/usecases"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

type AuthHandler struct {
	registerUC   usecases.RegisterUserExecutor
	loginUC      usecases.LoginUserExecutor
	refreshUC    usecases.RefreshTokenExecutor
	getProfileUC usecases.GetProfileExecutor
	logger       logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterUserExecutor,
	loginUC usecases.LoginUserExecutor,
	refreshUC usecases.RefreshTokenExecutor,
	getProfileUC usecases.GetProfileExecutor,
) *AuthHandler {
	return &AuthHandler{
		registerUC:   registerUC,
		loginUC:      loginUC,
		refreshUC:    refreshUC,
		getProfileUC: getProfileUC,
		logger:       logger.NewLogger(),
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32"`
	Email    string `json:"email,omitempty" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Register handles POST /auth/register
// @Summary Register a new user
// @Description Create an account and receive an initial token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterUserCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"user":  result.User,
		"token": result.Token,
	}, "Registration successful")
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Exchange username and password for a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginUserCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

// RefreshToken handles POST /auth/refresh
// @Summary Refresh tokens
// @Description Exchange a refresh token for a rotated token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Token refreshed", gin.H{"token": result.Token})
}

// GetProfile handles GET /users/:id
// @Summary Get user profile
// @Description Get a user's public profile with follower counts. Accepts a numeric ID or a username.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID or username"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id} [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	query := usecases.GetProfileQuery{}

	idStr := c.Param("id")
	if id, err := strconv.ParseUint(idStr, 10, 32); err == nil && id > 0 {
		query.UserID = uint(id)
	} else if idStr != "" {
		query.Username = idStr
	} else {
		utils.ErrorResponseWithError(c, errors.NewValidationError("user ID or username is required"))
		return
	}

	if viewerID, exists := c.Get("user_id"); exists {
		query.ViewerID = viewerID.(uint)
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Me handles GET /users/me
// @Summary Get own profile
// @Description Get the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, _ := c.Get("user_id")

	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{
		UserID: userID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
