package storage

import (
	"errors"
	"net/http"

	"line-counter/core/fault"

	"github.com/aws/smithy-go"
	"github.com/minio/minio-go/v7"
)

var (
	notFoundCodes = map[string]bool{
		"NoSuchKey":    true,
		"NoSuchBucket": true,
		"NotFound":     true,
	}
	accessDeniedCodes = map[string]bool{
		"AccessDenied":          true,
		"AllAccessDisabled":     true,
		"InvalidAccessKeyId":    true,
		"SignatureDoesNotMatch": true,
		"InvalidToken":          true,
		"ExpiredToken":          true,
		"Forbidden":             true,
	}
	configurationCodes = map[string]bool{
		"InvalidBucketName": true,
		"KeyTooLongError":   true,
	}
)

// Classify maps a provider error onto the fault taxonomy.
// Anything not recognised as a permanent failure is treated as a transport error.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if fault.Classified(err) {
		return err
	}
	code, status := errorCode(err)
	return fault.Wrap(kindFor(code, status), err)
}

func kindFor(code string, status int) error {
	switch {
	case notFoundCodes[code]:
		return fault.ErrNotFound
	case accessDeniedCodes[code]:
		return fault.ErrAccessDenied
	case configurationCodes[code]:
		return fault.ErrConfiguration
	}

	switch status {
	case http.StatusNotFound:
		return fault.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return fault.ErrAccessDenied
	}
	return fault.ErrTransport
}

// errorCode extracts the S3 error code and HTTP status from either SDK.
func errorCode(err error) (string, int) {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) && (resp.Code != "" || resp.StatusCode != 0) {
		return resp.Code, resp.StatusCode
	}

	status := 0
	var httpErr interface{ HTTPStatusCode() int }
	if errors.As(err, &httpErr) {
		status = httpErr.HTTPStatusCode()
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode(), status
	}
	return "", status
}

// isInvalidRange reports a range request that starts at or past the end of the object.
func isInvalidRange(err error) bool {
	code, status := errorCode(err)
	return code == "InvalidRange" || status == http.StatusRequestedRangeNotSatisfiable
}
