// Package cookie centralizes the token cookie names and attributes so the
// auth handler and middleware cannot drift apart.
package cookie

import (
	"net/http"
	"time"

	"flashbooth/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
)

// SetTokenCookies writes both token cookies as HttpOnly with the configured
// domain, Secure flag and SameSite policy. Max-Age comes from the token TTLs
// so the cookies expire alongside the tokens they carry.
func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	setToken(c, cfg, AccessTokenCookieName, accessToken, int(accessExpiry.Seconds()))
	setToken(c, cfg, RefreshTokenCookieName, refreshToken, int(refreshExpiry.Seconds()))
}

// ClearTokenCookies expires both token cookies immediately.
func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	setToken(c, cfg, AccessTokenCookieName, "", -1)
	setToken(c, cfg, RefreshTokenCookieName, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func setToken(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	c.SetCookie(name, value, maxAge, "/", cfg.Domain, cfg.Secure, true)
}

func sameSiteMode(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
