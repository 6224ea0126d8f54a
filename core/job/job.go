package job

import (
	"line-counter/core/fault"
	"line-counter/core/storage"
)

// Settings is the s3 section of the application configuration.
type Settings struct {
	// Protocol is the URI scheme prefix, e.g. s3a://.
	Protocol string `mapstructure:"protocol" default:"s3a://"`
	// AccessKey is the access key ID.
	AccessKey string `mapstructure:"accessKey" default:""`
	// AccessSecret is the secret access key.
	AccessSecret string `mapstructure:"accessSecret" default:""`
	// BucketName is the bucket holding the object.
	BucketName string `mapstructure:"bucketName" default:""`
	// FilePath is the object key within the bucket.
	FilePath string `mapstructure:"filePath" default:""`
}

// Build validates the settings into a Job.
func (s Settings) Build() (Job, error) {
	return New(s.Protocol, s.AccessKey, s.AccessSecret, s.BucketName, s.FilePath)
}

// Job aggregates the location of one object and the credentials to read it.
type Job struct {
	location    storage.Location
	credentials storage.Credentials
}

// New builds a Job. It fails with a configuration error naming the first empty input.
func New(protocol, accessKey, accessSecret, bucketName, filePath string) (Job, error) {
	for _, f := range []struct{ name, value string }{
		{"protocol", protocol},
		{"accessKey", accessKey},
		{"accessSecret", accessSecret},
		{"bucketName", bucketName},
		{"filePath", filePath},
	} {
		if f.value == "" {
			return Job{}, fault.Configuration(f.name, "is required")
		}
	}

	return Job{
		location:    storage.Location{Protocol: protocol, Bucket: bucketName, Key: filePath},
		credentials: storage.Credentials{AccessKeyID: accessKey, SecretKey: accessSecret},
	}, nil
}

// Location returns the object to read.
func (j Job) Location() storage.Location {
	return j.location
}

// Credentials returns the key pair used to read the object.
func (j Job) Credentials() storage.Credentials {
	return j.credentials
}

// WithKey returns a copy of the job reading another key in the same bucket.
func (j Job) WithKey(key string) (Job, error) {
	if key == "" {
		return Job{}, fault.Configuration("filePath", "is required")
	}
	j.location = j.location.WithKey(key)
	return j, nil
}

// URI returns {protocol}{bucketName}/{filePath}. It is for display only.
func (j Job) URI() string {
	return j.location.String()
}

func (j Job) String() string {
	return j.URI()
}
