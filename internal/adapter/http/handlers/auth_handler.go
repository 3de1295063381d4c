package handlers

import (
	request "cleanlyquote/internal/adapter/http/dto/request"
	response "cleanlyquote/internal/adapter/http/dto/response"
	"cleanlyquote/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Signup godoc
// @Summary  Create a business account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    payload body request.SignupRequest true "Account"
// @Success  201 {object} response.AuthResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var payload request.SignupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, invalid("A valid email and a password of at least 6 characters are required"))
		return
	}
	res, err := h.usecase.Signup(c.Request.Context(), usecase.SignupInput{
		Email:        payload.Email,
		Password:     payload.Password,
		Name:         payload.Name,
		BusinessName: payload.BusinessName,
		Phone:        payload.Phone,
	})
	if err != nil {
		abortWithError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromAuthResult(res))
}

// Login godoc
// @Summary  Exchange credentials for a bearer token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    payload body request.LoginRequest true "Credentials"
// @Success  200 {object} response.AuthResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, mapAuthError(usecase.ErrCredentialsRequired))
		return
	}
	res, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		abortWithError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuthResult(res))
}

// Me godoc
// @Summary  Current tenant and quota
// @Tags     auth
// @Security Bearer
// @Produce  json
// @Success  200 {object} response.MeResponse
// @Router   /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	profile, err := h.usecase.Me(c.Request.Context(), tenant)
	if err != nil {
		abortWithError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(profile))
}
