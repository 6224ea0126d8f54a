package mocks

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *Client) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	args := m.Called(ctx, bucketName, objectName, opts)
	switch obj := args.Get(0).(type) {
	case func(context.Context, string, string, minio.GetObjectOptions) io.ReadCloser:
		// A fresh body per call, for tests that reopen the same object.
		return obj(ctx, bucketName, objectName, opts), args.Error(1)
	case io.ReadCloser:
		return obj, args.Error(1)
	}
	return nil, args.Error(1)
}
