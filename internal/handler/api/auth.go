package api

import (
	"errors"
	"net/http"

	reqdto "room-booking-api/internal/handler/dto/request"
	resdto "room-booking-api/internal/handler/dto/response"
	"room-booking-api/internal/handler/httperr"
	"room-booking-api/internal/handler/middleware"
	"room-booking-api/internal/pkg/config"
	"room-booking-api/internal/pkg/cookie"
	"room-booking-api/internal/pkg/jwt"
	"room-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	jwtService  *jwt.Service
	cookieCfg   config.CookieConfig
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, jwtService *jwt.Service, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		jwtService:  jwtService,
		cookieCfg:   cookieCfg,
	}
}

// @Summary User signup
// @Description Register a new account and receive an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Router /user/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	credentials, err := req.Credentials()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	role, err := req.UserRole()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid role", nil)
		return
	}

	token, userRM, err := h.authUseCase.Signup(c.Request.Context(), req.Name, credentials, role)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "User already exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := resdto.ToAuthResponse(token, userRM)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.SetTokenCookie(c, h.cookieCfg, token, h.jwtService.TokenDuration())
	success(c, http.StatusCreated, "User registered successfully", resp)
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /user/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	credentials, err := req.Credentials()
	if err != nil {
		// Credential validation failures read the same as a wrong password
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		return
	}

	token, userRM, err := h.authUseCase.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := resdto.ToAuthResponse(token, userRM)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.SetTokenCookie(c, h.cookieCfg, token, h.jwtService.TokenDuration())
	success(c, http.StatusOK, "Login successful", resp)
}

// @Summary User logout
// @Description Clear the access token cookie
// @Tags auth
// @Success 200 {object} api.envelope
// @Router /user/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cookieCfg)
	success(c, http.StatusOK, "Logged out successfully", nil)
}

// @Summary Get current user
// @Description Get the authenticated user's profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /user/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrTokenValidation, "User not authenticated", nil)
		return
	}

	userRM, err := h.authUseCase.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := resdto.ToUserResponse(userRM)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	success(c, http.StatusOK, "", resp)
}
