// Package codec provides the streaming compression formats used by the
// compress and decompress commands.
package codec

import (
	"io"
	"sort"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/rwx-research/fm-cli/internal/errors"
)

const (
	Brotli = "brotli"
	Gzip   = "gzip"
	Zstd   = "zstd"

	Default = Brotli
)

// Codec wraps writers and readers with a compression format. Closing the
// returned writer flushes the format's trailer but never closes w.
type Codec interface {
	Name() string
	Compress(w io.Writer) (io.WriteCloser, error)
	Decompress(r io.Reader) (io.ReadCloser, error)
}

var codecs = map[string]Codec{
	Brotli: brotliCodec{},
	Gzip:   gzipCodec{},
	Zstd:   zstdCodec{},
}

// Lookup returns the codec registered under name.
func Lookup(name string) (Codec, error) {
	c, ok := codecs[name]
	if !ok {
		return nil, errors.Errorf("unknown codec %q, expected one of %v", name, Names())
	}

	return c, nil
}

func Names() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type brotliCodec struct{}

func (brotliCodec) Name() string {
	return Brotli
}

func (brotliCodec) Compress(w io.Writer) (io.WriteCloser, error) {
	return brotli.NewWriter(w), nil
}

func (brotliCodec) Decompress(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(brotli.NewReader(r)), nil
}

type gzipCodec struct{}

func (gzipCodec) Name() string {
	return Gzip
}

func (gzipCodec) Compress(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}

func (gzipCodec) Decompress(r io.Reader) (io.ReadCloser, error) {
	reader, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read gzip header")
	}

	return reader, nil
}

type zstdCodec struct{}

func (zstdCodec) Name() string {
	return Zstd
}

func (zstdCodec) Compress(w io.Writer) (io.WriteCloser, error) {
	encoder, err := zstd.NewWriter(w)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create zstd encoder")
	}

	return encoder, nil
}

func (zstdCodec) Decompress(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create zstd decoder")
	}

	return decoder.IOReadCloser(), nil
}
