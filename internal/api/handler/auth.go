package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jiyoon/drambook/internal/api/middleware"
	"github.com/jiyoon/drambook/internal/auth"
	"github.com/jiyoon/drambook/internal/domain"
	"github.com/jiyoon/drambook/internal/logger"
	"github.com/jiyoon/drambook/internal/repository"
)

// AuthHandler drives the Kakao login flow and session lifecycle.
type AuthHandler struct {
	kakao        *auth.KakaoClient
	sessions     *auth.SessionStore
	users        *repository.UserRepository
	records      *repository.RecordRepository
	cookieName   string
	cookieSecure bool
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(
	kakao *auth.KakaoClient,
	sessions *auth.SessionStore,
	users *repository.UserRepository,
	records *repository.RecordRepository,
	cookieName string,
	cookieSecure bool,
) *AuthHandler {
	return &AuthHandler{
		kakao:        kakao,
		sessions:     sessions,
		users:        users,
		records:      records,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
	}
}

// LoginKakao handles GET /login/kakao.
func (h *AuthHandler) LoginKakao(c *gin.Context) {
	if !h.kakao.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "kakao login is not configured"})
		return
	}
	c.Redirect(http.StatusFound, h.kakao.AuthorizeURL())
}

// KakaoCallback handles GET /oauth/kakao/callback. It exchanges the
// authorization code, upserts the user with freshly computed record
// statistics, and opens a session.
func (h *AuthHandler) KakaoCallback(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	accessToken, err := h.kakao.ExchangeCode(ctx, code)
	if err != nil {
		log.WithError(err).Warn("kakao code exchange failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "kakao login failed"})
		return
	}

	profile, err := h.kakao.FetchProfile(ctx, accessToken)
	if err != nil {
		log.WithError(err).Warn("kakao profile fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "kakao login failed"})
		return
	}

	// Login recomputes the denormalized stats from visible records.
	totalRecords, avgRating, err := h.records.UserStats(ctx, profile.UserID)
	if err != nil {
		log.WithError(err).Warn("stats computation failed during login")
	}

	user := &domain.User{
		UserID:       profile.UserID,
		Username:     profile.Nickname,
		Nickname:     profile.Nickname,
		Email:        profile.Email,
		LoginType:    "kakao",
		TotalRecords: totalRecords,
		AvgRating:    roundRating(avgRating),
		LastLogin:    time.Now(),
	}
	if err := h.users.Upsert(ctx, user); err != nil {
		log.WithError(err).Error("user upsert failed during login")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	token := h.sessions.Create(profile.UserID, profile.Nickname)
	c.SetCookie(h.cookieName, token, 0, "/", "", h.cookieSecure, true)

	log.WithField(logger.FieldUserID, profile.UserID).Info("login completed")
	c.Redirect(http.StatusFound, "/")
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookieName); err == nil {
		h.sessions.Delete(token)
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// Me handles GET /api/v1/me.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.UserID(c)
	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// roundRating mirrors the one-decimal rounding the user sheet used.
func roundRating(avg float64) float64 {
	return float64(int(avg*10+0.5)) / 10
}
