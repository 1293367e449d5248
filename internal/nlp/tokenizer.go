package nlp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jiyoon/drambook/internal/logger"
)

// Part-of-speech tags retained for word counting. Everything else the
// analyzer returns (particles, endings, adjectives) is discarded.
const (
	TagCommonNoun = "NNG"
	TagProperNoun = "NNP"
	TagVerb       = "VV"
)

// Token is one morpheme from the analyzer: the surface form and its
// part-of-speech tag.
type Token struct {
	Form string `json:"form"`
	Tag  string `json:"tag"`
}

// IsCountableTag reports whether the tag is a noun or verb.
func (t Token) IsCountableTag() bool {
	return t.Tag == TagCommonNoun || t.Tag == TagProperNoun || t.Tag == TagVerb
}

// Tokenizer segments Korean text into tagged morphemes.
type Tokenizer interface {
	Analyze(ctx context.Context, text string) ([]Token, error)
}

// TokenizerProvider hands out the shared Tokenizer instance. Get
// returns nil when the analyzer backend is unavailable; callers degrade
// to empty results instead of failing.
type TokenizerProvider interface {
	Get(ctx context.Context) Tokenizer
}

// KiwiConfig holds configuration for the remote Kiwi analyzer service.
type KiwiConfig struct {
	BaseURL string
	Timeout time.Duration
}

// KiwiProvider lazily constructs a single KiwiClient shared by all
// request handlers. Construction is guarded by double-checked locking
// so concurrent first callers build the client exactly once.
type KiwiProvider struct {
	cfg KiwiConfig
	log *logger.Logger

	mu     sync.Mutex
	client Tokenizer
	built  bool
}

// NewKiwiProvider creates a provider for the configured Kiwi service.
func NewKiwiProvider(cfg KiwiConfig, log *logger.Logger) *KiwiProvider {
	return &KiwiProvider{cfg: cfg, log: log}
}

// Get returns the shared tokenizer, building it on first use. A
// missing base URL means the dependency is absent; Get then returns
// nil (once, with a warning) and keeps returning nil.
func (p *KiwiProvider) Get(ctx context.Context) Tokenizer {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.built {
		p.built = true
		if p.cfg.BaseURL == "" {
			if p.log != nil {
				p.log.Warn("tokenizer backend not configured, word analysis disabled")
			}
		} else {
			p.client = NewKiwiClient(&p.cfg)
			if p.log != nil {
				p.log.WithField("base_url", p.cfg.BaseURL).Info("Kiwi tokenizer client ready")
			}
		}
	}
	return p.client
}

// KiwiClient calls a remote Kiwi morphological-analysis service over
// HTTP. The service exposes POST /analyze taking {"text": ...} and
// returning the token list.
type KiwiClient struct {
	client   *resty.Client
	endpoint string
}

// NewKiwiClient creates a client for the Kiwi analyzer service.
func NewKiwiClient(cfg *KiwiConfig) *KiwiClient {
	client := resty.New()
	client.SetHeader("Content-Type", "application/json")
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	client.SetTimeout(timeout)

	return &KiwiClient{
		client:   client,
		endpoint: cfg.BaseURL + "/analyze",
	}
}

type kiwiAnalyzeRequest struct {
	Text string `json:"text"`
}

type kiwiAnalyzeResponse struct {
	Tokens []Token `json:"tokens"`
}

// Analyze sends text to the analyzer service and returns the tagged
// morphemes.
func (c *KiwiClient) Analyze(ctx context.Context, text string) ([]Token, error) {
	var result kiwiAnalyzeResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(kiwiAnalyzeRequest{Text: text}).
		SetResult(&result).
		Post(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("tokenizer request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("tokenizer returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return result.Tokens, nil
}
