package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"line-counter/core/fault"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
)

const (
	defaultAWSEndpoint = "s3.amazonaws.com"
	defaultAWSRegion   = "us-east-1"
)

// awsClient serves the Client interface with the AWS SDK.
type awsClient struct {
	api *s3.Client
}

func newAWSClient(cfg Config, creds Credentials) (Client, error) {
	region := cfg.Region
	if region == "" {
		region = defaultAWSRegion
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(awscreds.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretKey, "")),
		// A buildable client lets the SDK add AWS_CA_BUNDLE roots to the transport.
		awsconfig.WithHTTPClient(awshttp.NewBuildableClient().
			WithDialerOptions(func(d *net.Dialer) { configureDialer(cfg, d) }).
			WithTransportOptions(func(tr *http.Transport) { applyTimeouts(cfg, tr) })),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load aws config: %w", fault.ErrConfiguration, err)
	}

	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		// S3-compatible services (MinIO, LocalStack) need an explicit endpoint and path-style addressing.
		if host := hostOf(cfg.Endpoint); host != "" && host != defaultAWSEndpoint {
			scheme := "http://"
			if cfg.UseSSL {
				scheme = "https://"
			}
			o.BaseEndpoint = aws.String(scheme + host)
			o.UsePathStyle = true
		}
	})

	return &awsClient{api: api}, nil
}

func (c *awsClient) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	_, err := c.api.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucketName)})
	if err == nil {
		return true, nil
	}
	if errors.Is(Classify(err), fault.ErrNotFound) {
		return false, nil
	}
	return false, err
}

func (c *awsClient) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	in := &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectName),
	}
	if r := opts.Header().Get("Range"); r != "" {
		in.Range = aws.String(r)
	}

	out, err := c.api.GetObject(ctx, in)
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}
