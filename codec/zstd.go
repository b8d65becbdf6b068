package codec

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// zstdReadCloser adapts zstd.Decoder's errorless Close to io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func openZstdRead(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return zstdReadCloser{dec}, nil
}

func openZstdWrite(w io.Writer, level int) (io.WriteCloser, error) {
	if level == 0 {
		return zstd.NewWriter(w)
	}
	return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
}
