package handler

import (
	"errors"
	"log"
	"net/http"

	"callpoint/internal/middleware"
	"callpoint/internal/model"
	"callpoint/internal/service"
	"callpoint/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Token implements the form-encoded OAuth2-style sign-in endpoint.
func (h *AuthHandler) Token(c *gin.Context) {
	email := c.PostForm("email")
	phone := c.PostForm("phoneNumber")
	password := c.PostForm("password")

	if password == "" || (email == "" && phone == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email or phoneNumber and password are required"})
		return
	}

	h.issueToken(c, email, phone, password)
}

// SignIn is the JSON sign-in endpoint.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req model.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Email == "" && req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email or phoneNumber is required"})
		return
	}

	h.issueToken(c, req.Email, req.Phone, req.Password)
}

func (h *AuthHandler) issueToken(c *gin.Context, email, phone, password string) {
	token, err := h.service.SignIn(c.Request.Context(), email, phone, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error during sign in: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}

	c.JSON(http.StatusOK, model.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req model.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.service.SignUp(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrPasswordMismatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error during sign up: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User signed up successfully"})
}

func (h *AuthHandler) ForgetPassword(c *gin.Context) {
	var req model.ForgetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resetToken, err := h.service.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Email not found"})
			return
		}
		log.Printf("Error requesting password reset: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to request password reset"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Password reset token sent successfully",
		"reset_token": resetToken,
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, utils.ErrExpiredToken),
			errors.Is(err, utils.ErrMissingSubject),
			errors.Is(err, utils.ErrInvalidToken):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			log.Printf("Error resetting password: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully"})
}

// Me returns the profile of the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	subject := c.GetString(middleware.AuthSubjectKey)
	if subject == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.service.UserByIdentifier(c.Request.Context(), subject)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error loading user profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(r *gin.Engine, authMW gin.HandlerFunc) {
	r.POST("/SignUp", h.SignUp)
	r.POST("/SignIn", h.SignIn)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/token", h.Token)
		authGroup.POST("/forget_password", h.ForgetPassword)
		authGroup.POST("/reset_password", h.ResetPassword)
	}

	userGroup := r.Group("/users")
	userGroup.Use(authMW)
	{
		userGroup.GET("/me", h.Me)
	}
}
