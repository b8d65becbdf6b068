package codec

import (
	"io"

	"github.com/dsnet/compress/bzip2"
)

// stdlib compress/bzip2 only decompresses, so both directions go through
// dsnet's implementation.

func openBzip2Read(r io.Reader) (io.ReadCloser, error) {
	return bzip2.NewReader(r, nil)
}

func openBzip2Write(w io.Writer, level int) (io.WriteCloser, error) {
	var conf *bzip2.WriterConfig
	if level != 0 {
		conf = &bzip2.WriterConfig{Level: level}
	}
	return bzip2.NewWriter(w, conf)
}
