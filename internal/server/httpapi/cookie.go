package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Cookie names follow what the web frontend expects.
const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

// cookieHelper writes and clears the auth cookie pair. Cookies are always
// HttpOnly and SameSite=None; Secure comes from config so local development
// over plain HTTP keeps working.
type cookieHelper struct {
	domain string
	secure bool
}

func (h *cookieHelper) setAuthCookies(c *gin.Context, accessToken, refreshToken string, accessTTL, refreshTTL time.Duration) {
	h.setCookie(c, accessTokenCookie, accessToken, int(accessTTL.Seconds()))
	h.setCookie(c, refreshTokenCookie, refreshToken, int(refreshTTL.Seconds()))
}

func (h *cookieHelper) clearAuthCookies(c *gin.Context) {
	h.setCookie(c, accessTokenCookie, "", -1)
	h.setCookie(c, refreshTokenCookie, "", -1)
}

func (h *cookieHelper) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(name, value, maxAge, "/", h.domain, h.secure, true)
}
