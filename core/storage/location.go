package storage

import "line-counter/core/fault"

// Location identifies one object.
type Location struct {
	// Protocol is the URI scheme prefix used for display, e.g. "s3a://".
	Protocol string
	// Bucket is the bucket name.
	Bucket string
	// Key is the object key within the bucket.
	Key string
}

// NewLocation builds a validated Location.
func NewLocation(protocol, bucket, key string) (Location, error) {
	loc := Location{Protocol: protocol, Bucket: bucket, Key: key}
	if err := loc.Validate(); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// Validate checks that every part of the location is set.
func (l Location) Validate() error {
	switch {
	case l.Protocol == "":
		return fault.Configuration("protocol", "is required")
	case l.Bucket == "":
		return fault.Configuration("bucket", "is required")
	case l.Key == "":
		return fault.Configuration("key", "is required")
	}
	return nil
}

// WithKey returns a copy of the location pointing at another key in the same bucket.
func (l Location) WithKey(key string) Location {
	l.Key = key
	return l
}

// String returns the display form {protocol}{bucket}/{key}.
func (l Location) String() string {
	return l.Protocol + l.Bucket + "/" + l.Key
}
