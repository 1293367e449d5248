package analysis

import (
	"context"
	"time"

	"github.com/jiyoon/drambook/internal/domain"
	"github.com/jiyoon/drambook/internal/logger"
	"github.com/jiyoon/drambook/internal/nlp"
)

const tasteAnalysisCachePrefix = "taste_analysis:"

// RecordSource is the slice of the record store the analyzer reads.
// GetUserRecords returns one user's visible records newest first;
// GetAllRecords returns every record in no particular order.
type RecordSource interface {
	GetUserRecords(ctx context.Context, userID string) ([]domain.TastingRecord, error)
	GetAllRecords(ctx context.Context) ([]domain.TastingRecord, error)
}

// Config tunes the analysis service.
type Config struct {
	CacheTTL     time.Duration
	RecentWindow int
}

// Service is the taste-analytics engine. All entry points are safe for
// concurrent use and never return an error: a collaborator failure
// degrades to a nil or empty result, logged as a warning.
type Service struct {
	records      RecordSource
	freq         *nlp.FrequencyAnalyzer
	cache        *ResultCache
	log          *logger.Logger
	recentWindow int
}

// NewService creates the analysis service.
func NewService(records RecordSource, freq *nlp.FrequencyAnalyzer, log *logger.Logger, cfg *Config) *Service {
	var ttl time.Duration
	recentWindow := DefaultRecentWindow
	if cfg != nil {
		ttl = cfg.CacheTTL
		if cfg.RecentWindow > 0 {
			recentWindow = cfg.RecentWindow
		}
	}
	return &Service{
		records:      records,
		freq:         freq,
		cache:        NewResultCache(ttl),
		log:          log,
		recentWindow: recentWindow,
	}
}

// ClearCache drops all memoized analysis results. Callers that need a
// save or delete reflected immediately call this instead of waiting
// out the TTL.
func (s *Service) ClearCache() {
	s.cache.Clear()
}

func (s *Service) userRecords(ctx context.Context, userID string) []domain.TastingRecord {
	records, err := s.records.GetUserRecords(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField(logger.FieldUserID, userID).
			Warn("record store unavailable for user records")
		return nil
	}
	return records
}

func (s *Service) allRecords(ctx context.Context) []domain.TastingRecord {
	records, err := s.records.GetAllRecords(ctx)
	if err != nil {
		s.log.WithError(err).Warn("record store unavailable for full scan")
		return nil
	}
	return records
}

// RecentTrend analyzes the user's newest records for a dominant taste
// tag. n <= 0 uses the configured window. Nil means not enough data.
func (s *Service) RecentTrend(ctx context.Context, userID string, n int) *TrendVerdict {
	if n <= 0 {
		n = s.recentWindow
	}
	verdict := RecentTrend(s.userRecords(ctx, userID), n)
	if verdict == nil {
		s.log.WithField(logger.FieldUserID, userID).Debug("recent trend: not enough qualifying records")
	}
	return verdict
}

// FullAnalysis summarizes the user's entire visible history: weighted
// main/sub expression buckets plus a wordcloud over their memos. The
// result is memoized per user for the cache TTL. Nil means fewer than
// five visible records.
func (s *Service) FullAnalysis(ctx context.Context, userID string) *TasteAnalysis {
	cacheKey := tasteAnalysisCachePrefix + userID
	if cached, ok := s.cache.Get(cacheKey); ok {
		if result, ok := cached.(*TasteAnalysis); ok {
			return result
		}
	}

	records := visibleRecords(s.userRecords(ctx, userID))
	if len(records) < MinRecordsForAnalysis {
		return nil
	}

	main, sub, memos := fullHistoryBuckets(records)
	result := &TasteAnalysis{
		MainExpressions: main,
		SubExpressions:  sub,
		MemoWordcloud:   s.freq.WordFrequencies(ctx, memos),
		TotalCount:      len(records),
	}
	s.cache.Set(cacheKey, result)

	s.log.WithFields(logger.Fields{
		logger.FieldUserID: userID,
		"main_count":       len(main),
		"sub_count":        len(sub),
		"word_count":       len(result.MemoWordcloud),
	}).Info("taste analysis computed")

	return result
}

// WordFrequencies exposes the memo frequency analyzer directly for the
// "my own words" panel.
func (s *Service) WordFrequencies(ctx context.Context, memos []string) map[string]int {
	return s.freq.WordFrequencies(ctx, memos)
}
