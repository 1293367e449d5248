package nlp

import (
	"context"
	"strings"

	"github.com/jiyoon/drambook/internal/domain"
	"github.com/jiyoon/drambook/internal/logger"
)

// FrequencyAnalyzer turns memo texts into word-frequency maps for the
// wordcloud panels. Tokens must be nouns or verbs and pass the
// stopword/whitelist filter to be counted.
type FrequencyAnalyzer struct {
	tokenizers TokenizerProvider
	whitelist  *Whitelist
	log        *logger.Logger
}

// NewFrequencyAnalyzer creates a frequency analyzer.
func NewFrequencyAnalyzer(tokenizers TokenizerProvider, whitelist *Whitelist, log *logger.Logger) *FrequencyAnalyzer {
	return &FrequencyAnalyzer{
		tokenizers: tokenizers,
		whitelist:  whitelist,
		log:        log,
	}
}

// WordFrequencies counts whitelisted noun/verb surface forms across the
// given memos. Empty memos and memos carrying the soft-delete marker
// are skipped. When the tokenizer backend is unavailable, or a memo
// fails to analyze, the result degrades toward an empty map; no error
// reaches the caller.
func (a *FrequencyAnalyzer) WordFrequencies(ctx context.Context, memos []string) map[string]int {
	counts := make(map[string]int)
	if len(memos) == 0 {
		return counts
	}

	tokenizer := a.tokenizers.Get(ctx)
	if tokenizer == nil {
		return counts
	}

	for _, memo := range memos {
		if memo == "" || strings.HasPrefix(memo, domain.DeletedMemoPrefix) {
			continue
		}
		tokens, err := tokenizer.Analyze(ctx, memo)
		if err != nil {
			if a.log != nil {
				a.log.WithError(err).Warn("memo analysis failed, skipping memo")
			}
			continue
		}
		for _, token := range tokens {
			if !token.IsCountableTag() {
				continue
			}
			if !a.whitelist.Countable(ctx, token.Form) {
				continue
			}
			counts[token.Form]++
		}
	}

	if a.log != nil && len(counts) > 0 {
		a.log.WithField("count", len(counts)).Debug("wordcloud terms extracted")
	}
	return counts
}
