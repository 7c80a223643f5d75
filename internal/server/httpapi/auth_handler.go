// Package httpapi is the HTTP surface of the auth backend: gin handlers,
// auth middleware, and the cookie plumbing browsers rely on.
package httpapi

import (
	"net/http"
	"time"

	"github.com/Sumit-1325/auth-backend/internal/server/config"
	"github.com/Sumit-1325/auth-backend/internal/server/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration, session, and password-recovery endpoints.
type AuthHandler struct {
	auth       *services.AuthService
	cookies    *cookieHelper
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewAuthHandler wires an AuthHandler from the service layer and config.
func NewAuthHandler(auth *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		auth:       auth,
		cookies:    &cookieHelper{domain: cfg.CookieDomain, secure: cfg.CookieSecure},
		accessTTL:  cfg.AccessTokenValidityDuration,
		refreshTTL: cfg.RefreshTokenValidityDuration,
	}
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	UserName string `json:"userName" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName"`
}

// LoginRequest is the login payload. Identifier carries a username or email.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// ForgotPasswordRequest carries the account email for password recovery.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest carries the replacement password; the token itself
// travels in the URL.
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// Register handles POST /api/v1/users/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "received data is not valid"})
		return
	}

	view, err := h.auth.Register(c.Request.Context(), req.UserName, req.Email, req.Password, req.FullName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"data":    view,
	})
}

// Login handles POST /api/v1/users/login. On success the token pair lands in
// HttpOnly cookies; the access token is additionally returned in the body for
// clients that prefer the Authorization header.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "identifier and password are required"})
		return
	}

	view, pair, err := h.auth.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cookies.setAuthCookies(c, pair.AccessToken, pair.RefreshToken, h.accessTTL, h.refreshTTL)
	c.JSON(http.StatusOK, gin.H{
		"message":     "Login successful",
		"user":        view,
		"accessToken": pair.AccessToken,
	})
}

// Refresh handles POST /api/v1/users/refresh. The refresh token is read from
// its cookie and rotated.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, err := c.Cookie(refreshTokenCookie)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "authentication required"})
		return
	}

	pair, err := h.auth.Refresh(c.Request.Context(), token)
	if err != nil {
		h.cookies.clearAuthCookies(c)
		respondError(c, err)
		return
	}

	h.cookies.setAuthCookies(c, pair.AccessToken, pair.RefreshToken, h.accessTTL, h.refreshTTL)
	c.JSON(http.StatusOK, gin.H{
		"message":     "Token refreshed",
		"accessToken": pair.AccessToken,
	})
}

// Logout handles POST /api/v1/users/logout. Requires authentication; revokes
// the stored refresh token and clears both cookies.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	h.cookies.clearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "User logged out successfully"})
}

// ForgotPassword handles POST /api/v1/users/forgot-password. The response is
// the same whether or not the email belongs to an account.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "a valid email is required"})
		return
	}

	if err := h.auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset link sent to your email"})
}

// ResetPassword handles POST /api/v1/users/reset-password/:token.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "new password is required"})
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), c.Param("token"), req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful. You can now login with your new password."})
}
