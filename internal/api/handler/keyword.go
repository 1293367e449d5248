package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jiyoon/drambook/internal/api/middleware"
	"github.com/jiyoon/drambook/internal/repository"
)

// KeywordHandler serves the preferred-keyword endpoints backing the
// clickable wordcloud terms.
type KeywordHandler struct {
	users   *repository.UserRepository
	records *repository.RecordRepository
}

// NewKeywordHandler creates a keyword handler.
func NewKeywordHandler(users *repository.UserRepository, records *repository.RecordRepository) *KeywordHandler {
	return &KeywordHandler{users: users, records: records}
}

type keywordRequest struct {
	Keyword string `json:"keyword" binding:"required"`
}

// AddUserKeyword handles POST /api/v1/keywords: saves a keyword the
// user clicked as an overall preference.
func (h *KeywordHandler) AddUserKeyword(c *gin.Context) {
	userID := middleware.UserID(c)

	var req keywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added, err := h.users.AddPreferredKeyword(c.Request.Context(), userID, req.Keyword)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save keyword"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added})
}

// ListUserKeywords handles GET /api/v1/keywords.
func (h *KeywordHandler) ListUserKeywords(c *gin.Context) {
	keywords, err := h.users.GetPreferredKeywords(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load keywords"})
		return
	}
	if keywords == nil {
		keywords = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"keywords": keywords})
}

// AddRecordKeyword handles POST /api/v1/records/:id/keywords: saves a
// keyword against one tasting record.
func (h *KeywordHandler) AddRecordKeyword(c *gin.Context) {
	userID := middleware.UserID(c)
	recordID := c.Param("id")

	var req keywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added, err := h.records.AddKeyword(c.Request.Context(), recordID, userID, req.Keyword)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save keyword"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added})
}
