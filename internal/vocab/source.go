// Package vocab fetches the curated whiskey-vocabulary resource the
// word-frequency whitelist is built from. The resource is a CSV with a
// "word" header column, hosted either on local disk or in an
// S3-compatible bucket.
package vocab

import (
	"context"
	"io"
)

// SourceType selects where the vocabulary resource lives.
type SourceType string

const (
	SourceTypeLocal SourceType = "local"
	SourceTypeS3    SourceType = "s3"
)

// Source fetches the raw vocabulary resource.
type Source interface {
	// Fetch opens the resource for reading. The caller closes it.
	Fetch(ctx context.Context) (io.ReadCloser, error)

	// Location describes the resource for log messages.
	Location() string
}
