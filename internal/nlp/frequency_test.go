package nlp

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeTokenizer splits text on whitespace and tags every token NNG
// unless the tags map says otherwise. Texts listed in failOn return an
// error instead.
type fakeTokenizer struct {
	tags   map[string]string
	failOn map[string]bool
	calls  int
}

func (f *fakeTokenizer) Analyze(ctx context.Context, text string) ([]Token, error) {
	f.calls++
	if f.failOn[text] {
		return nil, errors.New("analyzer crashed")
	}
	var tokens []Token
	for _, form := range strings.Fields(text) {
		tag := TagCommonNoun
		if t, ok := f.tags[form]; ok {
			tag = t
		}
		tokens = append(tokens, Token{Form: form, Tag: tag})
	}
	return tokens, nil
}

// fakeProvider hands out a fixed tokenizer, or nil when the backend is
// down.
type fakeProvider struct {
	tok Tokenizer
}

func (p *fakeProvider) Get(ctx context.Context) Tokenizer { return p.tok }

func testWhitelist(words ...string) *Whitelist {
	var b strings.Builder
	b.WriteString("word\n")
	for _, w := range words {
		b.WriteString(w)
		b.WriteString("\n")
	}
	return NewWhitelist(&memorySource{data: b.String()}, nil)
}

func TestWordFrequencies_CountsWhitelistedForms(t *testing.T) {
	tok := &fakeTokenizer{}
	analyzer := NewFrequencyAnalyzer(&fakeProvider{tok: tok}, testWhitelist("피트", "바닐라", "과일"), nil)

	got := analyzer.WordFrequencies(context.Background(), []string{
		"피트 바닐라",
		"피트 과일 석탄",
	})

	want := map[string]int{"피트": 2, "바닐라": 1, "과일": 1}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for word, count := range want {
		if got[word] != count {
			t.Errorf("count for %q = %d, want %d", word, got[word], count)
		}
	}
}

func TestWordFrequencies_EmptyInput(t *testing.T) {
	tok := &fakeTokenizer{}
	analyzer := NewFrequencyAnalyzer(&fakeProvider{tok: tok}, testWhitelist("피트"), nil)

	got := analyzer.WordFrequencies(context.Background(), nil)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil map, got %v", got)
	}
	if tok.calls != 0 {
		t.Errorf("tokenizer should not run on empty input, ran %d times", tok.calls)
	}
}

func TestWordFrequencies_TokenizerUnavailable(t *testing.T) {
	analyzer := NewFrequencyAnalyzer(&fakeProvider{}, testWhitelist("피트"), nil)

	got := analyzer.WordFrequencies(context.Background(), []string{"피트 바닐라"})
	if len(got) != 0 {
		t.Errorf("expected empty map without a tokenizer, got %v", got)
	}
}

func TestWordFrequencies_SkipsEmptyAndDeletedMemos(t *testing.T) {
	tok := &fakeTokenizer{}
	analyzer := NewFrequencyAnalyzer(&fakeProvider{tok: tok}, testWhitelist("피트"), nil)

	got := analyzer.WordFrequencies(context.Background(), []string{
		"",
		"[삭제됨 2024-03-01 12:00] 피트",
		"피트",
	})

	if got["피트"] != 1 {
		t.Errorf("count for 피트 = %d, want 1", got["피트"])
	}
	if tok.calls != 1 {
		t.Errorf("tokenizer should only see the live memo, ran %d times", tok.calls)
	}
}

func TestWordFrequencies_FiltersTagsAndStopwords(t *testing.T) {
	tok := &fakeTokenizer{tags: map[string]string{
		"마시": TagVerb,
		"달콤": "VA", // adjective, not countable
	}}
	// 느낌 is a stopword; whitelisting it must not resurrect it
	analyzer := NewFrequencyAnalyzer(&fakeProvider{tok: tok}, testWhitelist("피트", "마시", "달콤", "느낌"), nil)

	got := analyzer.WordFrequencies(context.Background(), []string{"피트 마시 달콤 느낌"})

	if got["피트"] != 1 || got["마시"] != 1 {
		t.Errorf("nouns and verbs should be counted, got %v", got)
	}
	if _, ok := got["달콤"]; ok {
		t.Error("adjective tags must not be counted")
	}
	if _, ok := got["느낌"]; ok {
		t.Error("stopwords must not be counted")
	}
}

func TestWordFrequencies_AnalyzeErrorSkipsMemo(t *testing.T) {
	tok := &fakeTokenizer{failOn: map[string]bool{"깨진 메모": true}}
	analyzer := NewFrequencyAnalyzer(&fakeProvider{tok: tok}, testWhitelist("피트"), nil)

	got := analyzer.WordFrequencies(context.Background(), []string{"깨진 메모", "피트"})
	if got["피트"] != 1 {
		t.Errorf("surviving memos should still be counted, got %v", got)
	}
}
