package codec

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

func openGzipRead(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func openGzipWrite(w io.Writer, level int) (io.WriteCloser, error) {
	if level == 0 {
		return gzip.NewWriter(w), nil
	}
	return gzip.NewWriterLevel(w, level)
}
