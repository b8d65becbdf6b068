package stancache

import (
	"golang.org/x/sync/singleflight"
)

// Client compiles models through an external [Compiler], reusing on-disk
// artifacts when a cache path is provided.
type Client struct {
	compiler Compiler

	// cacheDir, when set, anchors relative cache paths.
	cacheDir string

	// buildGroup deduplicates concurrent builds for the same cache path.
	buildGroup singleflight.Group
}

// New creates a Client around the given compiler collaborator.
//
// A nil compiler fails fast with [ErrNoCompiler] rather than being
// discovered mid-build.
func New(compiler Compiler, opts ...Option) (*Client, error) {
	if compiler == nil {
		return nil, ErrNoCompiler
	}
	c := &Client{compiler: compiler}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
