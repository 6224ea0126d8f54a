package storage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"line-counter/core/fault"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const bufferSize = 32 * 1024

// Reader opens objects as forward-only byte streams.
//
// Transport failures are retried here and nowhere else: a failed open is
// repeated, and a stream that breaks mid-read is re-requested from the first
// byte not yet delivered.
type Reader struct {
	client Client
	policy RetryPolicy
	logger *zap.Logger
}

// NewReader creates a Reader on top of client.
func NewReader(client Client, policy RetryPolicy, logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{
		client: client,
		policy: policy,
		logger: logger,
	}
}

// Open returns a stream positioned at offset 0 of the object at loc.
// The first byte is fetched before returning so that a missing object or
// rejected credentials fail here rather than on the first Read.
// The caller must Close the stream.
func (r *Reader) Open(ctx context.Context, loc Location) (io.ReadCloser, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	s := &stream{
		ctx:    ctx,
		reader: r,
		loc:    loc,
	}
	if err := s.open(); err != nil {
		return nil, fmt.Errorf("open %s: %w", loc, err)
	}
	return s, nil
}

type stream struct {
	ctx    context.Context
	reader *Reader
	loc    Location

	body io.ReadCloser
	buf  *bufio.Reader

	offset  int64
	retries int
	cause   error // transport failure awaiting a reconnect
	err     error // terminal failure
	eof     bool
	closed  bool
}

func (s *stream) Read(p []byte) (int, error) {
	if s.closed {
		return 0, fmt.Errorf("read %s: %w", s.loc, os.ErrClosed)
	}
	if s.err != nil {
		return 0, s.err
	}

	for {
		if s.eof {
			return 0, io.EOF
		}
		if s.body == nil {
			if err := s.open(); err != nil {
				s.err = fmt.Errorf("read %s at offset %d: %w", s.loc, s.offset, err)
				return 0, s.err
			}
			continue
		}

		n, err := s.buf.Read(p)
		s.offset += int64(n)
		if err == nil {
			return n, nil
		}
		if errors.Is(err, io.EOF) {
			s.eof = true
			s.release()
			return n, io.EOF
		}

		s.release()
		err = Classify(err)
		if !fault.Retryable(err) {
			s.err = fmt.Errorf("read %s at offset %d: %w", s.loc, s.offset, err)
			return n, s.err
		}
		s.cause = err
		if n > 0 {
			return n, nil
		}
	}
}

// Close releases the connection. Calling it more than once is a no-op.
func (s *stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.release()
}

func (s *stream) release() error {
	if s.body == nil {
		return nil
	}
	err := s.body.Close()
	s.body, s.buf = nil, nil
	return err
}

// open connects at the current offset, backing off between transport failures
// until the retry budget of the stream is spent.
func (s *stream) open() error {
	for {
		if s.cause != nil {
			if s.retries >= s.reader.policy.MaxRetries {
				return fmt.Errorf("giving up after %d retries: %w", s.retries, s.cause)
			}
			if err := s.backoff(); err != nil {
				return err
			}
		}

		err := s.dial()
		if err == nil {
			s.cause = nil
			return nil
		}
		if !fault.Retryable(err) {
			return err
		}
		s.cause = err
	}
}

func (s *stream) dial() error {
	opts := minio.GetObjectOptions{}
	if s.offset > 0 {
		if err := opts.SetRange(s.offset, 0); err != nil {
			return fault.Wrap(fault.ErrTransport, err)
		}
	}

	body, err := s.reader.client.GetObject(s.ctx, s.loc.Bucket, s.loc.Key, opts)
	if err != nil {
		return s.dialError(err)
	}

	buf := bufio.NewReaderSize(body, bufferSize)
	if _, err := buf.Peek(1); err != nil && !errors.Is(err, io.EOF) {
		_ = body.Close()
		return s.dialError(err)
	}

	s.body, s.buf = body, buf
	return nil
}

func (s *stream) dialError(err error) error {
	// The previous connection died after delivering the last byte.
	if s.offset > 0 && isInvalidRange(err) {
		s.eof = true
		return nil
	}
	return Classify(err)
}

func (s *stream) backoff() error {
	d := s.reader.policy.Backoff(s.retries)
	s.retries++

	s.reader.logger.Warn("Object read failed, retrying",
		zap.String("location", s.loc.String()),
		zap.Int64("offset", s.offset),
		zap.Int("attempt", s.retries),
		zap.Int("max_retries", s.reader.policy.MaxRetries),
		zap.Duration("backoff", d),
		zap.Error(s.cause),
	)

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-s.ctx.Done():
		return fault.Wrap(fault.ErrCancelled, s.ctx.Err())
	case <-timer.C:
		return nil
	}
}
