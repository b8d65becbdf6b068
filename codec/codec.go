// Package codec persists Go values to disk with extension-driven compression.
//
// The file extension selects the compression codec: .gz, .gzip and .zip use
// gzip; .xz and .lzma use the xz container; .bz2 uses bzip2; .zst and .zstd
// use zstd. The plain-object suffixes .pkl, .pickle and .cbor store the
// encoded object uncompressed and always apply object encoding, even when
// [WithRawBytes] is set. Any other extension stores raw bytes, with object
// encoding applied unless disabled.
//
// Values are encoded with deterministic CBOR before compression, so any
// CBOR-codable value round-trips through [Save] and [Read] regardless of
// the codec chosen by the extension.
package codec

import (
	"io"
	"path/filepath"
)

// Compression identifies the compression codec selected for a path.
type Compression int

// Compression constants.
const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionLZMA
	CompressionBzip2
	CompressionZstd
)

// extTable maps a path's exact, case-sensitive extension to its codec.
// Unlisted extensions select CompressionNone.
var extTable = map[string]Compression{
	".gz":   CompressionGzip,
	".gzip": CompressionGzip,
	".zip":  CompressionGzip,
	".xz":   CompressionLZMA,
	".lzma": CompressionLZMA,
	".bz2":  CompressionBzip2,
	".zst":  CompressionZstd,
	".zstd": CompressionZstd,
}

// plainObject marks suffixes that always store an encoded object,
// overriding WithRawBytes.
var plainObject = map[string]bool{
	".pkl":    true,
	".pickle": true,
	".cbor":   true,
}

// ForPath returns the codec selected by path's extension.
// Unknown extensions select CompressionNone.
func ForPath(path string) Compression {
	return extTable[filepath.Ext(path)]
}

// String returns the codec name used in error messages.
func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionLZMA:
		return "lzma"
	case CompressionBzip2:
		return "bzip2"
	case CompressionZstd:
		return "zstd"
	default:
		return "none"
	}
}

// openRead wraps r with the codec's decompressor.
func (c Compression) openRead(r io.Reader) (io.ReadCloser, error) {
	switch c {
	case CompressionGzip:
		return openGzipRead(r)
	case CompressionLZMA:
		return openXZRead(r)
	case CompressionBzip2:
		return openBzip2Read(r)
	case CompressionZstd:
		return openZstdRead(r)
	default:
		return io.NopCloser(r), nil
	}
}

// openWrite wraps w with the codec's compressor. Close flushes the
// container; the caller must call it before trusting the output.
func (c Compression) openWrite(w io.Writer, level int) (io.WriteCloser, error) {
	switch c {
	case CompressionGzip:
		return openGzipWrite(w, level)
	case CompressionLZMA:
		return openXZWrite(w)
	case CompressionBzip2:
		return openBzip2Write(w, level)
	case CompressionZstd:
		return openZstdWrite(w, level)
	default:
		return nopWriteCloser{w}, nil
	}
}

// nopWriteCloser passes writes through for the raw-bytes codec.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
