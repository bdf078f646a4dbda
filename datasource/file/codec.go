package file

import (
	"bytes"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

type codec int

const (
	plainCodec codec = iota
	lz4Codec
	zstdCodec
)

// codecFor selects a codec from a file name's final extension
func codecFor(path string) codec {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".lz4"):
		return lz4Codec
	case strings.HasSuffix(lower, ".zst"), strings.HasSuffix(lower, ".zstd"):
		return zstdCodec
	default:
		return plainCodec
	}
}

// Codecs run on the calling goroutine only.

// decompress wraps r such that reads produce decompressed data. The returned
// function releases any resources held by the decompressor.
func (c codec) decompress(r io.Reader) (io.Reader, func(), error) {
	switch c {
	case lz4Codec:
		return lz4.NewReader(r), func() {}, nil
	case zstdCodec:
		decoder, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, nil, err
		}
		return decoder, decoder.Close, nil
	default:
		return r, func() {}, nil
	}
}

// compress returns data encoded with this codec
func (c codec) compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	var w io.WriteCloser
	switch c {
	case lz4Codec:
		w = lz4.NewWriter(&buf)
	case zstdCodec:
		encoder, err := zstd.NewWriter(&buf, zstd.WithEncoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		w = encoder
	default:
		return data, nil
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
