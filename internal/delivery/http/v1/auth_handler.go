package v1

import (
	"net/http"

	"go-futurejob-backend/internal/delivery/http/response"
	"go-futurejob-backend/internal/domain"
	"go-futurejob-backend/pkg/apperror"
	"go-futurejob-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC          domain.AuthUsecase
	tokens          *auth.TokenManager
	tokenTTLSeconds int
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, tokens *auth.TokenManager, tokenTTLSeconds int) {
	handler := &AuthHandler{
		authUC:          authUC,
		tokens:          tokens,
		tokenTTLSeconds: tokenTTLSeconds,
	}

	// Public Routes
	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/login", handler.Login)
		publicAuth.POST("/register", handler.Register)
	}

	// Protected Routes
	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new user with username and password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUC.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registered! Now login.", gin.H{
		"username": req.Username,
	})
}

// Login godoc
// @Summary      User Login
// @Description  Login with username and password; returns a session token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Login Credentials"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	ok, err := h.authUC.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	if !ok {
		// Wrong password and unknown user get the same message on purpose.
		c.Error(apperror.Unauthorized("Invalid login."))
		return
	}

	token, err := h.tokens.Generate(req.Username)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), req.Username)
	if err != nil {
		c.Error(err)
		return
	}

	// Also set the token as a cookie so browser clients don't have to manage
	// the Authorization header themselves.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", token, h.tokenTTLSeconds, "/", "", false, true)

	response.Success(c, http.StatusOK, "Logged in!", gin.H{
		"token": token,
		"user":  user,
	})
}

// Me godoc
// @Summary      Current User
// @Description  Returns the profile of the authenticated user.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.UserProfile}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	username := c.GetString(string(domain.KeyUsername))
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", user)
}
