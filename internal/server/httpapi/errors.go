package httpapi

import (
	"errors"
	"net/http"

	"github.com/Sumit-1325/auth-backend/internal/common"
	"github.com/gin-gonic/gin"
)

// errStatus maps service-layer sentinels to HTTP status codes and messages
// safe to show the caller. Anything unrecognized is a 500 with a generic
// message so internals never leak.
func errStatus(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, "token expired"
	case errors.Is(err, common.ErrTokenInvalid):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, common.ErrDuplicateUser):
		return http.StatusBadRequest, "username or email already in use"
	case errors.Is(err, common.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, common.ErrHashing):
		return http.StatusBadRequest, "password is not acceptable"
	case errors.Is(err, common.ErrMailDelivery):
		return http.StatusInternalServerError, "could not send email"
	case errors.Is(err, common.ErrMediaUpload):
		return http.StatusInternalServerError, "could not upload file"
	case errors.Is(err, common.ErrorStoreUnavailable):
		return http.StatusInternalServerError, "service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func respondError(c *gin.Context, err error) {
	status, msg := errStatus(err)
	c.JSON(status, gin.H{"success": false, "message": msg})
}
