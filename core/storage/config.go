package storage

import "time"

// Config holds configuration for the storage provider.
// Credentials are not part of it; they come from the job being run.
type Config struct {
	// Provider selects the client implementation (minio, aws).
	Provider string `mapstructure:"provider" default:"minio"`
	// Endpoint is the host of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"s3.amazonaws.com"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// MaxRetries is how many times a transport failure is retried per object read.
	MaxRetries int `mapstructure:"max_retries" default:"3"`
	// RetryBackoffMillis is the delay before the first retry.
	RetryBackoffMillis int `mapstructure:"retry_backoff_ms" default:"100"`
	// RetryMaxBackoffMillis caps the exponential backoff.
	RetryMaxBackoffMillis int `mapstructure:"retry_max_backoff_ms" default:"5000"`
}

const (
	ProviderMinio = "minio"
	ProviderAWS   = "aws"
)

// IsValidProvider checks if the configured provider is supported.
func (c Config) IsValidProvider() bool {
	switch c.Provider {
	case ProviderMinio, ProviderAWS:
		return true
	default:
		return false
	}
}

func (c Config) timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RetryPolicy derives the transport retry policy from the configuration.
func (c Config) RetryPolicy() RetryPolicy {
	p := DefaultRetryPolicy()
	if c.MaxRetries >= 0 {
		p.MaxRetries = c.MaxRetries
	}
	if c.RetryBackoffMillis > 0 {
		p.InitialBackoff = time.Duration(c.RetryBackoffMillis) * time.Millisecond
	}
	if c.RetryMaxBackoffMillis > 0 {
		p.MaxBackoff = time.Duration(c.RetryMaxBackoffMillis) * time.Millisecond
	}
	return p
}
