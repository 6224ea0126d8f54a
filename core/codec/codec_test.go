package codec_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"line-counter/core/codec"
	"line-counter/core/fault"
	"line-counter/core/lines"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const content = "line1\nline2\nline3\n"

func gzipped(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func zstded(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestDetect(t *testing.T) {
	assert.Equal(t, codec.Gzip, codec.Detect("logs/2024/app.log.gz"))
	assert.Equal(t, codec.Gzip, codec.Detect("DATA.GZIP"))
	assert.Equal(t, codec.Zstd, codec.Detect("a.zst"))
	assert.Equal(t, codec.Bzip2, codec.Detect("a.bz2"))
	assert.Equal(t, codec.None, codec.Detect("data.txt"))
	assert.Equal(t, codec.None, codec.Detect("gz"))
}

func TestWrap(t *testing.T) {
	t.Run("Gzip", func(t *testing.T) {
		src := &closeTracker{Reader: bytes.NewReader(gzipped(t, content))}
		rc, err := codec.Wrap("data.txt.gz", src)
		require.NoError(t, err)

		res, err := lines.Count(context.Background(), rc)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), res.Lines)
		assert.Equal(t, uint64(len(content)), res.Bytes)

		require.NoError(t, rc.Close())
		assert.True(t, src.closed)
	})

	t.Run("Zstd", func(t *testing.T) {
		src := &closeTracker{Reader: bytes.NewReader(zstded(t, "a\nb"))}
		rc, err := codec.Wrap("data.zst", src)
		require.NoError(t, err)

		res, err := lines.Count(context.Background(), rc)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), res.Lines)

		require.NoError(t, rc.Close())
		assert.True(t, src.closed)
	})

	t.Run("PassThrough", func(t *testing.T) {
		src := io.NopCloser(strings.NewReader(content))
		rc, err := codec.Wrap("data.txt", src)
		require.NoError(t, err)
		assert.Equal(t, src, rc)
	})

	t.Run("CorruptHeader", func(t *testing.T) {
		_, err := codec.Wrap("data.gz", io.NopCloser(strings.NewReader("not gzip at all")))
		assert.ErrorIs(t, err, fault.ErrInvalidData)
	})

	t.Run("CorruptBzip2", func(t *testing.T) {
		rc, err := codec.Wrap("data.bz2", io.NopCloser(strings.NewReader("not bzip2")))
		require.NoError(t, err)

		_, err = lines.Count(context.Background(), rc)
		assert.ErrorIs(t, err, fault.ErrInvalidData)
	})

	t.Run("UnderlyingTransportFailureKeepsClass", func(t *testing.T) {
		data := gzipped(t, strings.Repeat("x\n", 10000))
		broken := io.MultiReader(
			bytes.NewReader(data[:len(data)/2]),
			iotest.ErrReader(errors.Join(fault.ErrTransport, errors.New("connection reset"))),
		)
		rc, err := codec.Wrap("data.gz", io.NopCloser(broken))
		require.NoError(t, err)

		_, err = lines.Count(context.Background(), rc)
		assert.ErrorIs(t, err, fault.ErrTransport)
		assert.NotErrorIs(t, err, fault.ErrInvalidData)
	})
}
