package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hostbridge/backend/internal/application/hostbridge"
	"github.com/hostbridge/backend/internal/infrastructure/hostapi"
)

// ExternalAuthHandler handles login against the external host
type ExternalAuthHandler struct {
	BaseHandler
	auth *hostbridge.AuthService
}

// NewExternalAuthHandler creates a new ExternalAuthHandler
func NewExternalAuthHandler(auth *hostbridge.AuthService) *ExternalAuthHandler {
	return &ExternalAuthHandler{auth: auth}
}

// RegisterRoutes registers external auth routes
func (h *ExternalAuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	external := rg.Group("/external")
	{
		external.POST("/login", h.Login)
	}
}

// externalLoginRequest carries the host credentials
type externalLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login logs in against the external host and persists the session token
// for subsequent bridged calls.
func (h *ExternalAuthHandler) Login(c *gin.Context) {
	var req externalLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.auth.Login(c.Request.Context(), hostbridge.LoginInput{
		UserID:   userID,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, hostbridge.ErrLoginRejected):
			h.Unauthorized(c, "External host rejected the login")
		case errors.Is(err, hostbridge.ErrTokenMissing):
			h.BadGateway(c, "External host login response carried no token")
		case errors.Is(err, hostapi.ErrHostUnreachable):
			h.BadGateway(c, "External host is unreachable")
		default:
			h.HandleError(c, err)
		}
		return
	}

	h.Success(c, result)
}
