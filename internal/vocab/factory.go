package vocab

import "fmt"

// FactoryConfig selects and configures a vocabulary source.
type FactoryConfig struct {
	Type SourceType
	Path string // local path when Type is local
	S3   *S3Config
}

// NewSource creates a vocabulary source from configuration. An empty
// type defaults to local.
func NewSource(cfg *FactoryConfig) (Source, error) {
	switch cfg.Type {
	case SourceTypeS3:
		if cfg.S3 == nil {
			return nil, fmt.Errorf("s3 vocabulary source selected but not configured")
		}
		return NewS3Source(cfg.S3)
	case SourceTypeLocal, "":
		return NewLocalSource(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unsupported vocabulary source type: %s", cfg.Type)
	}
}
