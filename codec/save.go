package codec

import (
	"fmt"
	"io"

	"github.com/probstat/stancache/internal/writeops"
)

// Save persists v at path, creating or overwriting the file.
//
// The path's extension selects the codec, mirroring [Read]. v is
// CBOR-encoded unless [WithRawBytes] is set, in which case v must be a
// []byte written through the codec verbatim. The write goes through a temp
// file in the destination directory followed by a rename, so concurrent
// writers race by rename and a reader never observes a partial file.
func Save(path string, v any, opts ...Option) error {
	cfg := resolve(path, opts)

	var payload []byte
	if cfg.raw {
		b, ok := v.([]byte)
		if !ok {
			return fmt.Errorf("codec: raw save requires a []byte value, got %T", v)
		}
		payload = b
	} else {
		b, err := encMode.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode object: %w", err)
		}
		payload = b
	}

	return writeops.Atomic(path, func(w io.Writer) error {
		cw, err := cfg.compression.openWrite(w, cfg.level)
		if err != nil {
			return fmt.Errorf("open %s writer: %w", cfg.compression, err)
		}
		if _, err := cw.Write(payload); err != nil {
			cw.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := cw.Close(); err != nil {
			return fmt.Errorf("close %s writer: %w", cfg.compression, err)
		}
		return nil
	})
}
