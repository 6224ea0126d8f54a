package codec

import (
	"compress/bzip2"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"line-counter/core/fault"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Name identifies a compression format.
type Name string

const (
	None  Name = ""
	Gzip  Name = "gzip"
	Zstd  Name = "zstd"
	Bzip2 Name = "bzip2"
)

// Detect returns the compression format implied by key's extension.
func Detect(key string) Name {
	switch strings.ToLower(path.Ext(key)) {
	case ".gz", ".gzip":
		return Gzip
	case ".zst", ".zstd":
		return Zstd
	case ".bz2":
		return Bzip2
	default:
		return None
	}
}

// Wrap returns a stream that yields the decompressed content of rc.
// Closing the result closes rc. If key has no known extension rc is returned as is.
func Wrap(key string, rc io.ReadCloser) (io.ReadCloser, error) {
	switch Detect(key) {
	case Gzip:
		zr, err := gzip.NewReader(rc)
		if err != nil {
			return nil, decodeError(Gzip, err)
		}
		return &decoder{name: Gzip, r: zr, closeFn: func() error {
			return errors.Join(zr.Close(), rc.Close())
		}}, nil
	case Zstd:
		zr, err := zstd.NewReader(rc, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, decodeError(Zstd, err)
		}
		return &decoder{name: Zstd, r: zr, closeFn: func() error {
			zr.Close()
			return rc.Close()
		}}, nil
	case Bzip2:
		return &decoder{name: Bzip2, r: bzip2.NewReader(rc), closeFn: rc.Close}, nil
	default:
		return rc, nil
	}
}

type decoder struct {
	name    Name
	r       io.Reader
	closeFn func() error
}

func (d *decoder) Read(p []byte) (int, error) {
	n, err := d.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		err = decodeError(d.name, err)
	}
	return n, err
}

func (d *decoder) Close() error {
	return d.closeFn()
}

// decodeError keeps errors of the underlying stream and marks the rest as corrupt data.
func decodeError(name Name, err error) error {
	if fault.Classified(err) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", fault.ErrInvalidData, name, err)
}
