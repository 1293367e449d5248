package nlp

import (
	"context"
	"encoding/csv"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/jiyoon/drambook/internal/logger"
	"github.com/jiyoon/drambook/internal/vocab"
)

// Whitelist is the curated set of whiskey-relevant words admitted into
// frequency output. The backing resource is loaded once on first use,
// guarded by double-checked locking. A missing or unreadable resource
// loads as an empty set, which filters out every candidate word; that
// is the intended degraded mode, not an error.
type Whitelist struct {
	source vocab.Source
	log    *logger.Logger

	mu     sync.Mutex
	loaded bool
	words  map[string]struct{}
}

// NewWhitelist creates a whitelist backed by the given vocabulary
// source. Loading is deferred to the first Contains call.
func NewWhitelist(source vocab.Source, log *logger.Logger) *Whitelist {
	return &Whitelist{source: source, log: log}
}

// Contains reports whether word is in the curated vocabulary.
func (w *Whitelist) Contains(ctx context.Context, word string) bool {
	words := w.load(ctx)
	_, ok := words[word]
	return ok
}

// Len returns the number of loaded vocabulary words.
func (w *Whitelist) Len(ctx context.Context) int {
	return len(w.load(ctx))
}

func (w *Whitelist) load(ctx context.Context) map[string]struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.loaded {
		return w.words
	}
	w.loaded = true
	w.words = map[string]struct{}{}

	if w.source == nil {
		if w.log != nil {
			w.log.Warn("no vocabulary source configured, whitelist is empty")
		}
		return w.words
	}

	reader, err := w.source.Fetch(ctx)
	if err != nil {
		if w.log != nil {
			w.log.WithError(err).WithField("location", w.source.Location()).
				Warn("vocabulary resource unavailable, whitelist is empty")
		}
		return w.words
	}
	defer reader.Close()

	words, err := parseVocabularyCSV(reader)
	if err != nil {
		if w.log != nil {
			w.log.WithError(err).WithField("location", w.source.Location()).
				Warn("vocabulary resource unreadable, whitelist is empty")
		}
		return w.words
	}

	w.words = words
	if w.log != nil {
		w.log.WithField("count", len(words)).Info("vocabulary whitelist loaded")
	}
	return w.words
}

// parseVocabularyCSV reads the vocabulary CSV and collects the values
// of its "word" column.
func parseVocabularyCSV(r io.Reader) (map[string]struct{}, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	wordIdx := -1
	for i, col := range header {
		if strings.TrimSpace(col) == "word" {
			wordIdx = i
			break
		}
	}

	words := make(map[string]struct{})
	if wordIdx == -1 {
		return words, nil
	}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) > wordIdx {
			if word := strings.TrimSpace(row[wordIdx]); word != "" {
				words[word] = struct{}{}
			}
		}
	}
	return words, nil
}

// Countable reports whether word survives every word-level filter:
// longer than one code point, not a stopword, and whitelisted.
func (w *Whitelist) Countable(ctx context.Context, word string) bool {
	if utf8.RuneCountInString(word) <= 1 {
		return false
	}
	if IsStopword(word) {
		return false
	}
	return w.Contains(ctx, word)
}
