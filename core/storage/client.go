package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"line-counter/core/fault"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client defines the interface for storage operations.
type Client interface {
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// GetObject opens a stream over an object. Range options are honoured.
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
}

// NewClient creates a client for the configured provider, authenticated with creds.
func NewClient(cfg Config, creds Credentials) (Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case "", ProviderMinio:
		return newMinioClient(cfg, creds)
	case ProviderAWS:
		return newAWSClient(cfg, creds)
	default:
		return nil, fault.Configuration("storage.provider", fmt.Sprintf("%q is not supported", cfg.Provider))
	}
}

func newMinioClient(cfg Config, creds Credentials) (Client, error) {
	minioClient, err := minio.New(hostOf(cfg.Endpoint), &minio.Options{
		Creds:     credentials.NewStaticV4(creds.AccessKeyID, creds.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: newTransport(cfg),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create minio client: %w", fault.ErrConfiguration, err)
	}
	// Minio connects lazily; the first GetObject read is what reaches the network.
	return &minioClientWrapper{Client: minioClient}, nil
}

type minioClientWrapper struct {
	*minio.Client
}

func (c *minioClientWrapper) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return c.Client.GetObject(ctx, bucketName, objectName, opts)
}

// hostOf strips the scheme, minio expects a bare host[:port].
func hostOf(endpoint string) string {
	endpoint = strings.TrimPrefix(endpoint, "http://")
	return strings.TrimPrefix(endpoint, "https://")
}

func newTransport(cfg Config) *http.Transport {
	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           newDialer(cfg).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	applyTimeouts(cfg, tr)
	return tr
}

func newDialer(cfg Config) *net.Dialer {
	d := &net.Dialer{}
	configureDialer(cfg, d)
	return d
}

func configureDialer(cfg Config, d *net.Dialer) {
	d.Timeout = cfg.timeout()
	d.KeepAlive = 30 * time.Second
}

func applyTimeouts(cfg Config, tr *http.Transport) {
	tr.TLSHandshakeTimeout = cfg.timeout()
	tr.ResponseHeaderTimeout = cfg.timeout() // first response byte
}
