package handlers

import (
	"log/slog"
	"net/http"

	"github.com/soyjefu/theprepared-PFM/internal/core/domain"
	portssvc "github.com/soyjefu/theprepared-PFM/internal/core/ports/services"
	"github.com/soyjefu/theprepared-PFM/internal/dto"
	"github.com/soyjefu/theprepared-PFM/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// AuthHandler handles password signup and login.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		tokenService: ts,
	}
}

// registerAuthRoutes sets up the public authentication routes. Signup and
// login share one per-IP limiter.
func registerAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, loginLimiter *limiter.Limiter) {
	h := NewAuthHandler(services.User, services.TokenService)

	auth := rg.Group("/auth")
	{
		if loginLimiter != nil {
			limited := middleware.RateLimit(loginLimiter)
			auth.POST("/login", limited, h.Login)
			auth.POST("/register", limited, h.Register)
		} else {
			auth.POST("/login", h.Login)
			auth.POST("/register", h.Register)
		}
		registerGoogleOAuthRoutes(auth, services)
	}
}

func (h *AuthHandler) issueToken(c *gin.Context, logger *slog.Logger, user *domain.User, status int) {
	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, logger, err, "Failed to generate token")
		return
	}
	c.JSON(status, dto.LoginResponse{Token: token, ExpiresAt: expiresAt, User: dto.ToUserResponse(user)})
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, logger, err, "Failed to log in")
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	h.issueToken(c, logger, user, http.StatusOK)
}

// Register godoc
// @Summary Register new user
// @Description Creates a user with the default set of accounts and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username already exists"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	newUser, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to register user")
		return
	}

	logger.Info("User registered", slog.String("user_id", newUser.UserID))
	h.issueToken(c, logger, newUser, http.StatusCreated)
}
