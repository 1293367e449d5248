package analysis

import (
	"context"

	"github.com/jiyoon/drambook/internal/logger"
)

// ProductWordcloud is the cross-user review summary for one whiskey.
type ProductWordcloud struct {
	Wordcloud map[string]int `json:"wordcloud"`
	Count     int            `json:"count"`
	HasData   bool           `json:"has_data"`
}

// SimilarUsersWordcloud builds a wordcloud from other users' memos on
// records sharing at least one taste tag with referenceTags. Any
// overlap qualifies; overlap size is not ranked. The caller's own
// records are always excluded.
func (s *Service) SimilarUsersWordcloud(ctx context.Context, userID string, referenceTags []string) map[string]int {
	if len(referenceTags) == 0 {
		return map[string]int{}
	}

	reference := make(map[string]struct{}, len(referenceTags))
	for _, tag := range referenceTags {
		reference[tag] = struct{}{}
	}

	var memos []string
	for _, record := range s.allRecords(ctx) {
		if record.UserID == userID {
			continue
		}
		if !record.HasMemo() {
			continue
		}
		for _, note := range record.TasteNotes {
			if _, ok := reference[note]; ok {
				memos = append(memos, record.Memo)
				break
			}
		}
	}

	if len(memos) == 0 {
		s.log.WithField(logger.FieldUserID, userID).Debug("no similar-user memos found")
		return map[string]int{}
	}
	return s.freq.WordFrequencies(ctx, memos)
}

// ProductReviewsWordcloud builds a wordcloud from other users' memos
// on the exact whiskey name. Matching is case-sensitive; a rename or
// typo is a different product.
func (s *Service) ProductReviewsWordcloud(ctx context.Context, userID, productName string) *ProductWordcloud {
	var memos []string
	for _, record := range s.allRecords(ctx) {
		if record.UserID == userID {
			continue
		}
		if record.WhiskeyName != productName {
			continue
		}
		if !record.HasMemo() {
			continue
		}
		memos = append(memos, record.Memo)
	}

	if len(memos) == 0 {
		return &ProductWordcloud{
			Wordcloud: map[string]int{},
			Count:     0,
			HasData:   false,
		}
	}

	return &ProductWordcloud{
		Wordcloud: s.freq.WordFrequencies(ctx, memos),
		Count:     len(memos),
		HasData:   true,
	}
}