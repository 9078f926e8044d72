package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/hostbridge/backend/internal/application/identity"
	"github.com/hostbridge/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles local account registration and login
type AuthHandler struct {
	BaseHandler
	users *identityapp.UserService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(users *identityapp.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

// RegisterProtectedRoutes registers routes that require authentication
func (h *AuthHandler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.GET("/me", h.Me)
	}
}

// Register creates a new local account
func (h *AuthHandler) Register(c *gin.Context) {
	var input identityapp.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.users.Register(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, user)
}

// Login verifies local credentials and returns an access token
func (h *AuthHandler) Login(c *gin.Context) {
	var input identityapp.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.users.Login(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Me returns the authenticated user
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), middleware.GetJWTUserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}
