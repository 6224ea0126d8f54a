// Package storage provides the object storage layer of the line counter.
//
// It wraps the MinIO Go client (default) and the AWS SDK v2 (provider "aws") behind
// one Client interface, and builds the Reader used to stream a single object.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream, optionally from a byte offset.
//
// # Reader
//
// Reader.Open yields a forward-only io.ReadCloser over one object. It owns the
// transport retry policy: failed opens are retried with exponential backoff, and a
// connection that breaks mid-object is resumed with a ranged request from the next
// undelivered byte, so consumers see every byte exactly once and in order.
//
// # Errors
//
// Classify maps MinIO error responses, AWS smithy API errors and HTTP statuses onto
// the fault taxonomy (not found, access denied, transport, cancelled).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage, job.Credentials())
//	reader := storage.NewReader(client, cfg.Storage.RetryPolicy(), logger)
//	stream, err := reader.Open(ctx, job.Location())
//	defer stream.Close()
package storage
