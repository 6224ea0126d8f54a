// Package job holds the resolved inputs of one line count.
//
// A Job is built once from five values (protocol, access key, secret, bucket name,
// file path) and is read-only afterwards. Settings is the configuration-file shape of
// the same values, using the s3.* property names:
//
//	s3.protocol=s3a://
//	s3.accessKey=...
//	s3.accessSecret=...
//	s3.bucketName=test-bucket
//	s3.filePath=data.txt
//
// # Usage
//
//	j, err := cfg.S3.Build()
//	fmt.Println(j.URI()) // s3a://test-bucket/data.txt
package job
