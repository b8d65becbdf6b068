package stancache

import (
	"errors"
	"os"
)

// Option configures a Client.
type Option func(*Client) error

const defaultCacheDirPerm = 0o700

// WithCacheDir resolves relative cache paths against dir, creating dir if
// needed. Absolute cache paths are used as given.
func WithCacheDir(dir string) Option {
	return func(c *Client) error {
		if dir == "" {
			return errors.New("stancache: cache dir is empty")
		}
		if err := os.MkdirAll(dir, defaultCacheDirPerm); err != nil {
			return err
		}
		c.cacheDir = dir
		return nil
	}
}
