package codec

import (
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// Read loads the value stored at path into v.
//
// The path's extension selects the codec (see [ForPath]). The decompressed
// payload is CBOR-decoded into v, which must be a non-nil pointer. With
// [WithRawBytes], v must be a *[]byte and receives the payload verbatim.
//
// Open errors surface as *fs.PathError, container errors wrap
// [ErrDecompression], and decode errors come back from the CBOR decoder
// unchanged. Read never retries.
func Read(path string, v any, opts ...Option) error {
	cfg := resolve(path, opts)

	f, err := os.Open(path) //nolint:gosec // user-provided path is intentional
	if err != nil {
		return err
	}
	defer f.Close()

	cr, err := cfg.compression.openRead(f)
	if err != nil {
		return fmt.Errorf("%w: open %s reader: %w", ErrDecompression, cfg.compression, err)
	}
	data, err := io.ReadAll(cr)
	if err != nil {
		cr.Close()
		return fmt.Errorf("%w: read %s: %w", ErrDecompression, path, err)
	}
	if err := cr.Close(); err != nil {
		return fmt.Errorf("%w: close %s reader: %w", ErrDecompression, cfg.compression, err)
	}

	if cfg.raw {
		buf, ok := v.(*[]byte)
		if !ok {
			return fmt.Errorf("codec: raw read requires a *[]byte target, got %T", v)
		}
		*buf = data
		return nil
	}
	return cbor.Unmarshal(data, v)
}
