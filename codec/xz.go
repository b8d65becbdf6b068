package codec

import (
	"io"

	"github.com/ulikunitz/xz"
)

// Both .xz and .lzma share the xz container format. The xz reader has no
// Close, so reads are wrapped with a NopCloser.

func openXZRead(r io.Reader) (io.ReadCloser, error) {
	xr, err := xz.NewReader(r)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(xr), nil
}

func openXZWrite(w io.Writer) (io.WriteCloser, error) {
	return xz.NewWriter(w)
}
