package httpapi

import (
	"net/http"

	"github.com/Sumit-1325/auth-backend/internal/server/services"
	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the authenticated user's profile.
type ProfileHandler struct {
	profile *services.ProfileService
}

func NewProfileHandler(profile *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// Get handles GET /api/v1/users/profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	view, err := h.profile.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": view})
}

// Update handles PATCH /api/v1/users/update. The body is multipart form
// data: an optional fullName field and an optional avatar file.
func (h *ProfileHandler) Update(c *gin.Context) {
	var fullName *string
	if v, ok := c.GetPostForm("fullName"); ok {
		fullName = &v
	}

	var avatar *services.AvatarUpload
	if fh, err := c.FormFile("avatar"); err == nil {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "could not read avatar file"})
			return
		}
		defer f.Close()
		avatar = &services.AvatarUpload{
			ContentType: fh.Header.Get("Content-Type"),
			Body:        f,
		}
	}

	if fullName == nil && avatar == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "nothing to update"})
		return
	}

	view, err := h.profile.Update(c.Request.Context(), currentUserID(c), fullName, avatar)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"data":    view,
	})
}
