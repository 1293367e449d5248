package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jiyoon/drambook/internal/api/middleware"
	"github.com/jiyoon/drambook/internal/domain"
	"github.com/jiyoon/drambook/internal/logger"
	"github.com/jiyoon/drambook/internal/repository"
)

// RecordHandler serves the tasting-record CRUD endpoints.
type RecordHandler struct {
	records *repository.RecordRepository
	users   *repository.UserRepository
}

// NewRecordHandler creates a record handler.
func NewRecordHandler(records *repository.RecordRepository, users *repository.UserRepository) *RecordHandler {
	return &RecordHandler{records: records, users: users}
}

// recordRequest is the write payload for create and update.
type recordRequest struct {
	WhiskeyName string   `json:"whiskey_name" binding:"required"`
	TasteNotes  []string `json:"taste_notes"`
	Rating      int      `json:"rating" binding:"required"`
	Memo        string   `json:"memo"`
	TastedAt    string   `json:"date"`
}

func (r *recordRequest) validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	for _, note := range r.TasteNotes {
		if !domain.IsValidTasteNote(note) {
			return errors.New("unknown taste note: " + note)
		}
	}
	return nil
}

// List handles GET /api/v1/records: the caller's visible records,
// newest first.
func (h *RecordHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)
	records, err := h.records.GetUserRecords(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load records"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"total":   len(records),
	})
}

// Create handles POST /api/v1/records.
func (h *RecordHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)

	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	tastedAt := req.TastedAt
	if tastedAt == "" {
		tastedAt = now.In(domain.KST).Format("2006-01-02")
	}
	record := &domain.TastingRecord{
		// millisecond timestamp doubles as the recency sort key
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		UserID:      userID,
		Username:    c.GetString(middleware.ContextNickname),
		WhiskeyName: req.WhiskeyName,
		TasteNotes:  req.TasteNotes,
		Rating:      req.Rating,
		Memo:        req.Memo,
		TastedAt:    tastedAt,
	}
	if err := h.records.Create(ctx, record); err != nil {
		logger.FromContext(ctx).WithError(err).Error("record create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save record"})
		return
	}

	h.refreshUserStats(c, userID)
	c.JSON(http.StatusCreated, record)
}

// Update handles PUT /api/v1/records/:id.
func (h *RecordHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)
	recordID := c.Param("id")

	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := &domain.TastingRecord{
		ID:          recordID,
		UserID:      userID,
		WhiskeyName: req.WhiskeyName,
		TasteNotes:  req.TasteNotes,
		Rating:      req.Rating,
		Memo:        req.Memo,
		TastedAt:    req.TastedAt,
	}
	if err := h.records.Update(ctx, record); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update record"})
		return
	}

	h.refreshUserStats(c, userID)
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// Delete handles DELETE /api/v1/records/:id (soft delete).
func (h *RecordHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)
	recordID := c.Param("id")

	if err := h.records.SoftDelete(ctx, recordID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete record"})
		return
	}

	h.refreshUserStats(c, userID)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// refreshUserStats recomputes the denormalized user statistics after a
// write. Failures are logged and swallowed; the record write already
// succeeded.
func (h *RecordHandler) refreshUserStats(c *gin.Context, userID string) {
	ctx := c.Request.Context()
	total, avg, err := h.records.UserStats(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).WithError(err).Warn("user stats recomputation failed")
		return
	}
	if err := h.users.UpdateStats(ctx, userID, total, roundRating(avg)); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.FromContext(ctx).WithError(err).Warn("user stats update failed")
	}
}
