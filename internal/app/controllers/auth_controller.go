package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseregistry/internal/app/models/dto"
	"github.com/yigit/courseregistry/internal/app/services"
	"github.com/yigit/courseregistry/internal/middleware"
	"github.com/yigit/courseregistry/internal/pkg/apperrors"
)

// AuthController handles login, session validation and logout. The endpoint
// dispatches on the action query parameter, so the whole auth surface lives
// under a single /auth route.
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// HandlePost dispatches POST /auth by action.
// @Summary Login or logout
// @Description Performs the auth action given by the action query parameter: login or logout
// @Tags auth
// @Accept json
// @Produce json
// @Param action query string true "Auth action" Enums(login, logout)
// @Param request body dto.LoginRequest false "Credentials (login only)"
// @Success 200 {object} dto.AuthResponse "Action completed"
// @Failure 400 {object} dto.APIResponse "Unknown action or invalid payload"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Router /auth [post]
func (c *AuthController) HandlePost(ctx *gin.Context) {
	switch ctx.Query("action") {
	case "login":
		c.login(ctx)
	case "logout":
		c.logout(ctx)
	default:
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Unknown auth action"))
	}
}

// HandleGet dispatches GET /auth by action.
// @Summary Validate session
// @Description Resolves the session cookie back to the authenticated user
// @Tags auth
// @Produce json
// @Param action query string true "Auth action" Enums(validate)
// @Success 200 {object} dto.AuthResponse "Session is valid"
// @Failure 401 {object} dto.AuthResponse "No valid session"
// @Router /auth [get]
func (c *AuthController) HandleGet(ctx *gin.Context) {
	switch ctx.Query("action") {
	case "validate":
		c.validate(ctx)
	default:
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Unknown auth action"))
	}
}

func (c *AuthController) login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ValidationMessage(err)))
		return
	}

	principal, sessionID, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.AuthResponse{
				Success: false,
				Message: "Invalid credentials",
			})
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, sessionID, int(c.authService.SessionTTL().Seconds()))
	ctx.JSON(http.StatusOK, dto.AuthResponse{Success: true, User: principal})
}

func (c *AuthController) validate(ctx *gin.Context) {
	sessionID, err := ctx.Cookie(middleware.SessionCookieName)
	if err != nil || sessionID == "" {
		ctx.JSON(http.StatusUnauthorized, dto.AuthResponse{
			Success: false,
			Message: "No active session",
		})
		return
	}

	principal, err := c.authService.Validate(ctx.Request.Context(), sessionID)
	if err != nil {
		c.setSessionCookie(ctx, "", -1)
		ctx.JSON(http.StatusUnauthorized, dto.AuthResponse{
			Success: false,
			Message: "Invalid or expired session",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{Success: true, User: principal})
}

// logout revokes the session server side and clears the cookie. Logging out
// without a session still succeeds.
func (c *AuthController) logout(ctx *gin.Context) {
	sessionID, err := ctx.Cookie(middleware.SessionCookieName)
	if err == nil && sessionID != "" {
		if err := c.authService.Logout(ctx.Request.Context(), sessionID); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
	}

	c.setSessionCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logged out successfully"))
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, value string, maxAge int) {
	// HTTP-only keeps the token out of reach of page scripts; the token never
	// appears in a response body.
	ctx.SetCookie(middleware.SessionCookieName, value, maxAge, "/", "", false, true)
}
