package codec

import "path/filepath"

// Option configures a Read or Save call.
type Option func(*config)

type config struct {
	compression Compression
	raw         bool
	level       int
}

// WithRawBytes disables object encoding: Save accepts a []byte written
// through the codec verbatim, and Read requires a *[]byte target.
// Ignored for the plain-object suffixes (.pkl, .pickle, .cbor), which
// always store an encoded object.
func WithRawBytes() Option {
	return func(c *config) {
		c.raw = true
	}
}

// WithLevel sets the compression level for codecs that support one
// (gzip, bzip2, zstd). Zero selects the codec's default.
func WithLevel(level int) Option {
	return func(c *config) {
		c.level = level
	}
}

// resolve applies opts and the extension-driven overrides for path.
func resolve(path string, opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	ext := filepath.Ext(path)
	cfg.compression = extTable[ext]
	if plainObject[ext] {
		cfg.raw = false
	}
	return cfg
}
