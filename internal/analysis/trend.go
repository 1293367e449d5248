package analysis

import (
	"sort"

	"github.com/jiyoon/drambook/internal/domain"
)

// RatingWeights maps a star rating to its contribution in weighted
// aggregates. The table is part of the product's tuning and must not
// drift.
var RatingWeights = map[int]float64{
	5: 1.0,
	4: 0.8,
	3: 0.6,
	2: 0.3,
	1: 0.1,
}

// Thresholds for the recent-trend verdict.
const (
	// MinRecordsForAnalysis is the minimum visible record count before
	// any analysis produces a result.
	MinRecordsForAnalysis = 5

	// DefaultRecentWindow is how many newest records the recent-trend
	// verdict considers.
	DefaultRecentWindow = 10

	// clearTrendRatio: the top tag must outweigh the runner-up by this
	// factor to count as a clear trend.
	clearTrendRatio = 1.5
)

// TrendVerdict is the outcome of the recent-trend analysis.
type TrendVerdict struct {
	IsClearTrend  bool   `json:"is_clear_trend"`
	TopNote       string `json:"top_note,omitempty"`
	TopNoteKorean string `json:"top_note_korean,omitempty"`
}

// TasteAnalysis summarizes a user's full tasting history. Main
// expressions accumulate from 4-5 star records, sub expressions from
// 1-2 star records; 3-star records contribute to neither bucket.
type TasteAnalysis struct {
	MainExpressions map[string]float64 `json:"main_expressions"`
	SubExpressions  map[string]float64 `json:"sub_expressions"`
	MemoWordcloud   map[string]int     `json:"memo_wordcloud"`
	TotalCount      int                `json:"total_count"`
}

// visibleRecords re-checks the soft-delete marker defensively; the
// repository already filters deleted rows but legacy callers may not.
func visibleRecords(records []domain.TastingRecord) []domain.TastingRecord {
	out := make([]domain.TastingRecord, 0, len(records))
	for i := range records {
		if !records[i].IsDeleted() {
			out = append(out, records[i])
		}
	}
	return out
}

type weightedNote struct {
	note  string
	score float64
}

// sortWeighted orders notes by score descending, then tag name
// ascending. The name tie-break keeps equal-score verdicts
// deterministic.
func sortWeighted(counts map[string]float64) []weightedNote {
	notes := make([]weightedNote, 0, len(counts))
	for note, score := range counts {
		notes = append(notes, weightedNote{note: note, score: score})
	}
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].score != notes[j].score {
			return notes[i].score > notes[j].score
		}
		return notes[i].note < notes[j].note
	})
	return notes
}

// RecentTrend inspects the newest records (at most n, newest first)
// and decides whether one taste tag clearly dominates. Only records
// rated 3 stars or better contribute, weighted by RatingWeights. A nil
// verdict means not enough data to call.
func RecentTrend(records []domain.TastingRecord, n int) *TrendVerdict {
	if n <= 0 {
		n = DefaultRecentWindow
	}

	visible := visibleRecords(records)
	if len(visible) < MinRecordsForAnalysis {
		return nil
	}

	if n > len(visible) {
		n = len(visible)
	}
	recent := visible[:n]

	weighted := make(map[string]float64)
	contributed := false
	for i := range recent {
		record := &recent[i]
		if record.Rating < 3 {
			continue
		}
		contributed = true
		weight, ok := RatingWeights[record.Rating]
		if !ok {
			weight = 0.6
		}
		for _, note := range record.TasteNotes {
			weighted[note] += weight
		}
	}
	if !contributed || len(weighted) == 0 {
		return nil
	}

	sorted := sortWeighted(weighted)
	if len(sorted) < 2 {
		// a single tag is trivially the trend
		return &TrendVerdict{
			IsClearTrend:  true,
			TopNote:       sorted[0].note,
			TopNoteKorean: domain.NoteToKorean(sorted[0].note),
		}
	}

	if sorted[0].score >= sorted[1].score*clearTrendRatio {
		return &TrendVerdict{
			IsClearTrend:  true,
			TopNote:       sorted[0].note,
			TopNoteKorean: domain.NoteToKorean(sorted[0].note),
		}
	}
	return &TrendVerdict{IsClearTrend: false}
}

// fullHistoryBuckets accumulates the main/sub expression buckets and
// collects analyzable memos from a user's visible records.
func fullHistoryBuckets(records []domain.TastingRecord) (main, sub map[string]float64, memos []string) {
	main = make(map[string]float64)
	sub = make(map[string]float64)
	for i := range records {
		record := &records[i]
		weight := RatingWeights[record.Rating]

		if record.HasMemo() {
			memos = append(memos, record.Memo)
		}

		for _, note := range record.TasteNotes {
			switch {
			case record.Rating >= 4:
				main[note] += weight
			case record.Rating <= 2:
				sub[note] += weight
			}
		}
	}
	return main, sub, memos
}
