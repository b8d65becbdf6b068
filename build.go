package stancache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"

	"github.com/probstat/stancache/codec"
)

// Build returns the compiled model for spec.
//
// With [BuildWithCachePath], Build probes the path first: a readable
// artifact is returned as-is, with no check that it matches spec. A missing
// file, an unreadable container, or a payload that decodes into the wrong
// shape count as an unreadable cache and trigger one compile, after which
// the fresh artifact is persisted back to the path. A payload that is
// well-formed enough to open but fails CBOR decoding outright aborts the
// call instead of recompiling; the bad file is left in place.
//
// Compiler errors propagate unchanged and nothing is written. If persisting
// the fresh artifact fails, Build returns the error together with the built
// model so the artifact is not lost.
//
// Concurrent Builds for the same cache path share one compilation
// in-process. Cross-process callers race by rename, last writer wins.
func (c *Client) Build(ctx context.Context, spec Spec, opts ...BuildOption) (*Model, error) {
	var cfg buildConfig
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	path := c.resolveCachePath(cfg.cachePath)
	if path == "" {
		return c.compiler.Compile(ctx, spec)
	}

	// Fast path: probe before entering the flight group.
	if m, ok, err := probe(path); ok {
		return m, err
	}

	result, err, _ := c.buildGroup.Do(path, func() (any, error) {
		// Double-check: another goroutine may have populated the path
		// between our probe and acquiring the flight.
		if m, ok, err := probe(path); ok {
			if err != nil {
				return nil, err
			}
			return m, nil
		}

		m, err := c.compiler.Compile(ctx, spec)
		if err != nil {
			return nil, err
		}
		if err := codec.Save(path, m, cfg.codecOpts...); err != nil {
			return m, fmt.Errorf("cache model at %s: %w", path, err)
		}
		return m, nil
	})
	if result == nil {
		return nil, err
	}
	m, _ := result.(*Model) //nolint:errcheck // the flight only ever returns *Model
	return m, err
}

func (c *Client) resolveCachePath(path string) string {
	if path == "" || c.cacheDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.cacheDir, path)
}

// probe attempts to resolve a build from the cache file at path. ok is
// false when the build must proceed: no file yet, or one that fails with a
// file or type error on read. ok with a non-nil err means the probe hit a
// malformed payload, which aborts the call.
func probe(path string) (m *Model, ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		return nil, false, nil
	}
	var cached Model
	err = codec.Read(path, &cached)
	if err == nil {
		return &cached, true, nil
	}
	if rebuildable(err) {
		return nil, false, nil
	}
	return nil, true, err
}

// rebuildable reports whether a probe error means "unreadable cache,
// compile instead" rather than aborting the call. File errors, container
// errors, and type mismatches qualify; malformed payloads do not.
func rebuildable(err error) bool {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return true
	}
	if errors.Is(err, codec.ErrDecompression) {
		return true
	}
	var typeErr *cbor.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return true
	}
	var invalidErr *cbor.InvalidUnmarshalError
	return errors.As(err, &invalidErr)
}
