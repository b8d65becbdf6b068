package codec

import "errors"

// ErrDecompression is returned when a compression container cannot be
// read. It wraps the codec's underlying error.
var ErrDecompression = errors.New("codec: decompression")
