package lines

import (
	"bytes"
	"context"
	"errors"
	"io"

	"line-counter/core/fault"
)

const (
	lineFeed  = '\n'
	chunkSize = 64 * 1024
)

// Result is the outcome of one count.
type Result struct {
	// Lines is the number of lines in the stream.
	Lines uint64 `json:"lines"`
	// Bytes is the number of bytes consumed.
	Bytes uint64 `json:"bytes"`
}

// Counter accumulates line feeds across arbitrary chunk boundaries.
// The zero value is ready to use.
type Counter struct {
	feeds uint64
	bytes uint64
	last  byte
}

// Write feeds p to the counter. It never fails.
func (c *Counter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	c.feeds += uint64(bytes.Count(p, []byte{lineFeed}))
	c.bytes += uint64(len(p))
	c.last = p[len(p)-1]
	return len(p), nil
}

// Lines returns the line count of everything written so far.
func (c *Counter) Lines() uint64 {
	if c.bytes > 0 && c.last != lineFeed {
		return c.feeds + 1
	}
	return c.feeds
}

// Bytes returns the number of bytes written so far.
func (c *Counter) Bytes() uint64 {
	return c.bytes
}

// Result snapshots the counter.
func (c *Counter) Result() Result {
	return Result{Lines: c.Lines(), Bytes: c.Bytes()}
}

// Count reads r to the end and returns its line count.
// ctx is checked between chunks. On any error the partial count is discarded.
func Count(ctx context.Context, r io.Reader) (Result, error) {
	var c Counter
	buf := make([]byte, chunkSize)

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, fault.Wrap(fault.ErrCancelled, err)
		}

		n, err := r.Read(buf)
		if n > 0 {
			_, _ = c.Write(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			return c.Result(), nil
		}
		if err != nil {
			return Result{}, fault.Wrap(fault.ErrTransport, err)
		}
	}
}
