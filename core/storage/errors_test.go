package storage_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"line-counter/core/fault"
	"line-counter/core/storage"

	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"MinioNoSuchKey", minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}, fault.ErrNotFound},
		{"MinioNoSuchBucket", minio.ErrorResponse{Code: "NoSuchBucket", StatusCode: 404}, fault.ErrNotFound},
		{"MinioAccessDenied", minio.ErrorResponse{Code: "AccessDenied", StatusCode: 403}, fault.ErrAccessDenied},
		{"MinioBadKey", minio.ErrorResponse{Code: "InvalidAccessKeyId", StatusCode: 403}, fault.ErrAccessDenied},
		{"MinioSignature", minio.ErrorResponse{Code: "SignatureDoesNotMatch", StatusCode: 403}, fault.ErrAccessDenied},
		{"MinioStatusOnly", minio.ErrorResponse{StatusCode: 404}, fault.ErrNotFound},
		{"MinioSlowDown", minio.ErrorResponse{Code: "SlowDown", StatusCode: 503}, fault.ErrTransport},
		{"MinioBadBucketName", minio.ErrorResponse{Code: "InvalidBucketName", StatusCode: 400}, fault.ErrConfiguration},
		{"Wrapped", fmt.Errorf("get: %w", minio.ErrorResponse{Code: "NoSuchKey"}), fault.ErrNotFound},
		{"SmithyNoSuchKey", &smithy.GenericAPIError{Code: "NoSuchKey"}, fault.ErrNotFound},
		{"SmithyAccessDenied", &smithy.GenericAPIError{Code: "AccessDenied"}, fault.ErrAccessDenied},
		{"HTTPForbidden", &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{Response: &http.Response{StatusCode: http.StatusForbidden}},
			Err:      errors.New("forbidden"),
		}, fault.ErrAccessDenied},
		{"Network", errors.New("dial tcp: connection refused"), fault.ErrTransport},
		{"Cancelled", context.Canceled, fault.ErrCancelled},
		{"AlreadyClassified", fmt.Errorf("x: %w", fault.ErrNotFound), fault.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storage.Classify(tt.err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.err.Error())
		})
	}

	assert.NoError(t, storage.Classify(nil))
}
