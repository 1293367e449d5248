package analysis

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jiyoon/drambook/internal/domain"
	"github.com/jiyoon/drambook/internal/logger"
	"github.com/jiyoon/drambook/internal/nlp"
)

func testLogger() *logger.Logger {
	return logger.New(&logger.Config{
		Level:       "error",
		Format:      "text",
		Output:      io.Discard,
		ServiceName: "test",
		Environment: "local",
	})
}

// fakeRecords is an in-memory RecordSource. GetUserRecords mimics the
// repository contract: one user's visible records, newest first by ID.
type fakeRecords struct {
	records   []domain.TastingRecord
	err       error
	userCalls int
	allCalls  int
}

func (f *fakeRecords) GetUserRecords(ctx context.Context, userID string) ([]domain.TastingRecord, error) {
	f.userCalls++
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.TastingRecord
	for _, r := range f.records {
		if r.UserID == userID && !r.IsDeleted() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecords) GetAllRecords(ctx context.Context) ([]domain.TastingRecord, error) {
	f.allCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

// wsTokenizer splits memos on whitespace and tags every token as a
// common noun.
type wsTokenizer struct{}

func (wsTokenizer) Analyze(ctx context.Context, text string) ([]nlp.Token, error) {
	var tokens []nlp.Token
	for _, form := range strings.Fields(text) {
		tokens = append(tokens, nlp.Token{Form: form, Tag: nlp.TagCommonNoun})
	}
	return tokens, nil
}

type staticProvider struct{ tok nlp.Tokenizer }

func (p staticProvider) Get(ctx context.Context) nlp.Tokenizer { return p.tok }

type stringSource struct{ data string }

func (s stringSource) Fetch(ctx context.Context) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.data)), nil
}

func (s stringSource) Location() string { return "memory" }

func newTestFrequency(words ...string) *nlp.FrequencyAnalyzer {
	var b strings.Builder
	b.WriteString("word\n")
	for _, w := range words {
		b.WriteString(w)
		b.WriteString("\n")
	}
	whitelist := nlp.NewWhitelist(stringSource{data: b.String()}, nil)
	return nlp.NewFrequencyAnalyzer(staticProvider{tok: wsTokenizer{}}, whitelist, nil)
}

func newTestService(records *fakeRecords, cfg *Config, words ...string) *Service {
	return NewService(records, newTestFrequency(words...), testLogger(), cfg)
}

func fullHistory(userID string) []domain.TastingRecord {
	return []domain.TastingRecord{
		{ID: "1005", UserID: userID, WhiskeyName: "Lagavulin 16", Rating: 5,
			TasteNotes: domain.StringArray{"spicy"}, Memo: "피트 바닐라"},
		{ID: "1004", UserID: userID, WhiskeyName: "Ardbeg 10", Rating: 4,
			TasteNotes: domain.StringArray{"spicy", "sweet"}},
		{ID: "1003", UserID: userID, WhiskeyName: "Glenlivet 12", Rating: 3,
			TasteNotes: domain.StringArray{"oaky"}, Memo: "피트"},
		{ID: "1002", UserID: userID, WhiskeyName: "Macallan 12", Rating: 2,
			TasteNotes: domain.StringArray{"sweet"}},
		{ID: "1001", UserID: userID, WhiskeyName: "Jameson", Rating: 1,
			TasteNotes: domain.StringArray{"smoky"}},
	}
}

func TestService_FullAnalysis(t *testing.T) {
	records := &fakeRecords{records: fullHistory("u1")}
	svc := newTestService(records, nil, "피트", "바닐라")

	got := svc.FullAnalysis(context.Background(), "u1")
	if got == nil {
		t.Fatal("expected an analysis")
	}
	if got.TotalCount != 5 {
		t.Errorf("TotalCount = %d, want 5", got.TotalCount)
	}
	if got.MainExpressions["spicy"] != 1.8 || got.MainExpressions["sweet"] != 0.8 {
		t.Errorf("unexpected main expressions %v", got.MainExpressions)
	}
	if got.SubExpressions["sweet"] != 0.3 || got.SubExpressions["smoky"] != 0.1 {
		t.Errorf("unexpected sub expressions %v", got.SubExpressions)
	}
	if _, ok := got.MainExpressions["oaky"]; ok {
		t.Error("3-star notes must not reach main expressions")
	}
	if got.MemoWordcloud["피트"] != 2 || got.MemoWordcloud["바닐라"] != 1 {
		t.Errorf("unexpected wordcloud %v", got.MemoWordcloud)
	}
}

func TestService_FullAnalysis_NotEnoughRecords(t *testing.T) {
	records := &fakeRecords{records: fullHistory("u1")[:4]}
	svc := newTestService(records, nil)

	if got := svc.FullAnalysis(context.Background(), "u1"); got != nil {
		t.Errorf("expected nil with 4 records, got %+v", got)
	}
}

func TestService_FullAnalysis_StoreErrorDegrades(t *testing.T) {
	records := &fakeRecords{err: errors.New("db down")}
	svc := newTestService(records, nil)

	if got := svc.FullAnalysis(context.Background(), "u1"); got != nil {
		t.Errorf("expected nil on store failure, got %+v", got)
	}
}

func TestService_FullAnalysis_Caching(t *testing.T) {
	records := &fakeRecords{records: fullHistory("u1")}
	svc := newTestService(records, &Config{CacheTTL: 5 * time.Minute}, "피트")

	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.cache.now = func() time.Time { return current }

	ctx := context.Background()
	first := svc.FullAnalysis(ctx, "u1")
	second := svc.FullAnalysis(ctx, "u1")
	if first == nil || second == nil {
		t.Fatal("expected analyses")
	}
	if records.userCalls != 1 {
		t.Errorf("expected one store read within the TTL, got %d", records.userCalls)
	}
	if first != second {
		t.Error("cached call should return the identical result")
	}

	// a different user is a different cache key
	records.records = append(records.records, fullHistory("u2")...)
	svc.FullAnalysis(ctx, "u2")
	if records.userCalls != 2 {
		t.Errorf("expected a fresh read for another user, got %d calls", records.userCalls)
	}

	// past the TTL the result is recomputed
	current = current.Add(6 * time.Minute)
	svc.FullAnalysis(ctx, "u1")
	if records.userCalls != 3 {
		t.Errorf("expected a recomputation after the TTL, got %d calls", records.userCalls)
	}
}

func TestService_ClearCache(t *testing.T) {
	records := &fakeRecords{records: fullHistory("u1")}
	svc := newTestService(records, nil)

	ctx := context.Background()
	svc.FullAnalysis(ctx, "u1")
	svc.ClearCache()
	svc.FullAnalysis(ctx, "u1")

	if records.userCalls != 2 {
		t.Errorf("expected recomputation after ClearCache, got %d calls", records.userCalls)
	}
}

func TestService_RecentTrend_UsesConfiguredWindow(t *testing.T) {
	// the only well-rated record sits just outside a window of five
	history := []domain.TastingRecord{
		{ID: "1006", UserID: "u1", Rating: 2, TasteNotes: domain.StringArray{"sweet"}},
		{ID: "1005", UserID: "u1", Rating: 2, TasteNotes: domain.StringArray{"sweet"}},
		{ID: "1004", UserID: "u1", Rating: 1, TasteNotes: domain.StringArray{"sweet"}},
		{ID: "1003", UserID: "u1", Rating: 2, TasteNotes: domain.StringArray{"sweet"}},
		{ID: "1002", UserID: "u1", Rating: 2, TasteNotes: domain.StringArray{"sweet"}},
		{ID: "1001", UserID: "u1", Rating: 5, TasteNotes: domain.StringArray{"spicy"}},
	}
	records := &fakeRecords{records: history}
	svc := newTestService(records, &Config{RecentWindow: 5})

	ctx := context.Background()
	if got := svc.RecentTrend(ctx, "u1", 0); got != nil {
		t.Errorf("n=0 should fall back to the configured window, got %+v", got)
	}
	got := svc.RecentTrend(ctx, "u1", 6)
	if got == nil || !got.IsClearTrend || got.TopNote != "spicy" {
		t.Errorf("explicit n should override the window, got %+v", got)
	}
}
