package nlp

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

// memorySource serves a vocabulary CSV from memory.
type memorySource struct {
	data string
	err  error
}

func (m *memorySource) Fetch(ctx context.Context) (io.ReadCloser, error) {
	if m.err != nil {
		return nil, m.err
	}
	return io.NopCloser(strings.NewReader(m.data)), nil
}

func (m *memorySource) Location() string { return "memory" }

func TestWhitelist_LoadsWordColumn(t *testing.T) {
	src := &memorySource{data: "id,word,category\n1,피트,smoke\n2,바닐라,sweet\n3, 과일 ,fruit\n"}
	w := NewWhitelist(src, nil)

	ctx := context.Background()
	if n := w.Len(ctx); n != 3 {
		t.Fatalf("expected 3 words, got %d", n)
	}
	for _, word := range []string{"피트", "바닐라", "과일"} {
		if !w.Contains(ctx, word) {
			t.Errorf("expected %q to be whitelisted", word)
		}
	}
	if w.Contains(ctx, "smoke") {
		t.Error("values from other columns must not be whitelisted")
	}
}

func TestWhitelist_MissingWordHeader(t *testing.T) {
	src := &memorySource{data: "id,term\n1,피트\n"}
	w := NewWhitelist(src, nil)

	if n := w.Len(context.Background()); n != 0 {
		t.Errorf("expected empty whitelist without a word column, got %d words", n)
	}
}

func TestWhitelist_SourceErrorDegradesToEmpty(t *testing.T) {
	src := &memorySource{err: errors.New("bucket unreachable")}
	w := NewWhitelist(src, nil)

	ctx := context.Background()
	if w.Contains(ctx, "피트") {
		t.Error("unreachable source should yield an empty whitelist")
	}
	if n := w.Len(ctx); n != 0 {
		t.Errorf("expected 0 words, got %d", n)
	}
}

func TestWhitelist_NilSource(t *testing.T) {
	w := NewWhitelist(nil, nil)
	if w.Contains(context.Background(), "피트") {
		t.Error("nil source should yield an empty whitelist")
	}
}

func TestWhitelist_Countable(t *testing.T) {
	// 느낌 is deliberately whitelisted here to prove the stopword
	// filter wins over whitelist membership.
	src := &memorySource{data: "word\n피트\n꿀\n느낌\n"}
	w := NewWhitelist(src, nil)
	ctx := context.Background()

	tests := []struct {
		word string
		want bool
	}{
		{"피트", true},
		{"꿀", false},  // single code point
		{"느낌", false}, // stopword
		{"석탄", false}, // not whitelisted
		{"", false},
	}
	for _, tt := range tests {
		if got := w.Countable(ctx, tt.word); got != tt.want {
			t.Errorf("Countable(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}
