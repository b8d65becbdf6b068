package stancache

import "github.com/probstat/stancache/codec"

// BuildOption configures a single Build call.
type BuildOption func(*buildConfig)

type buildConfig struct {
	cachePath string
	codecOpts []codec.Option
}

// BuildWithCachePath persists the compiled model at path and reuses it on
// later calls. The path's extension selects the storage codec (see the
// codec package). Without this option Build always compiles and never
// touches the filesystem.
func BuildWithCachePath(path string) BuildOption {
	return func(c *buildConfig) {
		c.cachePath = path
	}
}

// BuildWithCodecOptions forwards options (e.g. codec.WithLevel) to the
// save that populates the cache.
func BuildWithCodecOptions(opts ...codec.Option) BuildOption {
	return func(c *buildConfig) {
		c.codecOpts = append(c.codecOpts, opts...)
	}
}
