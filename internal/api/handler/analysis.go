package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jiyoon/drambook/internal/analysis"
	"github.com/jiyoon/drambook/internal/api/middleware"
	"github.com/jiyoon/drambook/internal/repository"
)

// emptyStateMessage is what the frontend shows instead of an analysis
// panel when there is not enough data to say anything.
const emptyStateMessage = "아직 분석할 기록이 부족해요"

// AnalysisHandler serves the taste-analytics endpoints.
type AnalysisHandler struct {
	analyzer *analysis.Service
	records  *repository.RecordRepository
}

// NewAnalysisHandler creates an analysis handler.
func NewAnalysisHandler(analyzer *analysis.Service, records *repository.RecordRepository) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer, records: records}
}

// Trend handles GET /api/v1/analysis/trend?n=.
func (h *AnalysisHandler) Trend(c *gin.Context) {
	userID := middleware.UserID(c)
	n, _ := strconv.Atoi(c.DefaultQuery("n", "0"))

	verdict := h.analyzer.RecentTrend(c.Request.Context(), userID, n)
	if verdict == nil {
		c.JSON(http.StatusOK, gin.H{"has_data": false, "message": emptyStateMessage})
		return
	}
	c.JSON(http.StatusOK, gin.H{"has_data": true, "trend": verdict})
}

// Taste handles GET /api/v1/analysis/taste.
func (h *AnalysisHandler) Taste(c *gin.Context) {
	userID := middleware.UserID(c)

	result := h.analyzer.FullAnalysis(c.Request.Context(), userID)
	if result == nil {
		c.JSON(http.StatusOK, gin.H{"has_data": false, "message": emptyStateMessage})
		return
	}
	c.JSON(http.StatusOK, gin.H{"has_data": true, "analysis": result})
}

// MyWordcloud handles GET /api/v1/analysis/wordcloud/mine: frequencies
// over the caller's own memos, no similarity filtering.
func (h *AnalysisHandler) MyWordcloud(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)

	records, err := h.records.GetUserRecords(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load records"})
		return
	}
	var memos []string
	for i := range records {
		if records[i].HasMemo() {
			memos = append(memos, records[i].Memo)
		}
	}

	c.JSON(http.StatusOK, gin.H{"wordcloud": h.analyzer.WordFrequencies(ctx, memos)})
}

// CommunityWordcloud handles GET /api/v1/analysis/wordcloud/community:
// other users' memos on records sharing the caller's main expression
// tags.
func (h *AnalysisHandler) CommunityWordcloud(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)

	taste := h.analyzer.FullAnalysis(ctx, userID)
	if taste == nil {
		c.JSON(http.StatusOK, gin.H{"has_data": false, "message": emptyStateMessage})
		return
	}

	referenceTags := make([]string, 0, len(taste.MainExpressions))
	for tag := range taste.MainExpressions {
		referenceTags = append(referenceTags, tag)
	}

	wordcloud := h.analyzer.SimilarUsersWordcloud(ctx, userID, referenceTags)
	c.JSON(http.StatusOK, gin.H{"has_data": true, "wordcloud": wordcloud})
}

// ProductWordcloud handles GET /api/v1/analysis/wordcloud/product?name=.
func (h *AnalysisHandler) ProductWordcloud(c *gin.Context) {
	userID := middleware.UserID(c)
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product name is required"})
		return
	}

	result := h.analyzer.ProductReviewsWordcloud(c.Request.Context(), userID, name)
	c.JSON(http.StatusOK, result)
}
