package handler

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/janipakwan/pakwan-api/internal/application/service"
	"github.com/janipakwan/pakwan-api/internal/config"
	"github.com/janipakwan/pakwan-api/internal/presentation/http/dto/request"
	"github.com/janipakwan/pakwan-api/internal/presentation/http/dto/response"
	"github.com/janipakwan/pakwan-api/pkg/session"
)

const oauthStateCookie = "oauth_state"

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
	sessions    *session.Manager
	cookieCfg   config.SessionConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, sessions *session.Manager, cookieCfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		cookieCfg:   cookieCfg,
	}
}

// Login verifies credentials and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailMessage(c, "Email and password are required")
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Fail(c, err)
		return
	}

	if err := h.setSessionCookie(c, user.UserID, user.Email); err != nil {
		response.FailMessage(c, "Could not create session")
		return
	}

	response.OK(c, gin.H{
		"user": gin.H{"email": user.Email},
	})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieCfg.CookieName, "", -1, "/", "", h.cookieCfg.CookieHTTPS, true)
	response.OK(c, nil)
}

// GetSession reports whether the request carries a valid session. An absent or
// invalid cookie is not an error; it reports session false.
func (h *AuthHandler) GetSession(c *gin.Context) {
	if userID := GetUserID(c); userID != nil {
		c.JSON(http.StatusOK, gin.H{
			"session": true,
			"user":    gin.H{"email": GetUserEmail(c)},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": false})
}

// GoogleAuth redirects the browser to the Google consent screen.
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	state, err := randomState()
	if err != nil {
		response.FailMessage(c, "Could not start login")
		return
	}

	url, err := h.authService.GoogleAuthURL(state)
	if err != nil {
		response.Fail(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", h.cookieCfg.CookieHTTPS, true)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback completes the OAuth flow, sets the session cookie and sends
// the browser back to the frontend.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		response.FailMessage(c, "Invalid state parameter")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.cookieCfg.CookieHTTPS, true)

	user, err := h.authService.GoogleLogin(c.Request.Context(), c.Query("code"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	if err := h.setSessionCookie(c, user.UserID, user.Email); err != nil {
		response.FailMessage(c, "Could not create session")
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, h.authService.FrontendURL())
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, userID int64, email string) error {
	token, err := h.sessions.Issue(userID, email)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		h.cookieCfg.CookieName,
		token,
		int(h.sessions.TTL().Seconds()),
		"/",
		"",
		h.cookieCfg.CookieHTTPS,
		true,
	)
	return nil
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
