package io

import (
	"io"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"

	"github.com/crkarthik11/healthcare/pkg/errors"
)

// Codec is a snapshot encoding, named by its file extension.
type Codec string

const (
	CodecJSON   Codec = ".json"
	CodecZstd   Codec = ".json.zst"
	CodecSnappy Codec = ".json.sz"
)

// Codecs lists the supported codecs.
var Codecs = []Codec{CodecJSON, CodecZstd, CodecSnappy}

// CodecFor returns the codec for a file name. Names with no supported
// extension fail with INVALID_FORMAT.
func CodecFor(path string) (Codec, error) {
	lower := strings.ToLower(path)
	for _, c := range []Codec{CodecZstd, CodecSnappy, CodecJSON} {
		if strings.HasSuffix(lower, string(c)) {
			return c, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unsupported snapshot extension %q (use .json, .json.zst or .json.sz)", path)
}

// NewWriter wraps w so that written bytes are encoded. The returned writer
// must be closed to flush compressed output; closing does not close w.
func (c Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	switch c {
	case CodecZstd:
		return zstd.NewWriter(w)
	case CodecSnappy:
		return snappy.NewBufferedWriter(w), nil
	case CodecJSON:
		return nopWriteCloser{w}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown codec %q", string(c))
}

// NewReader wraps r so that reads return decoded bytes.
func (c Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	switch c {
	case CodecZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "zstd stream")
		}
		return dec.IOReadCloser(), nil
	case CodecSnappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	case CodecJSON:
		return io.NopCloser(r), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown codec %q", string(c))
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
