package storage

import "line-counter/core/fault"

const redacted = "[REDACTED]"

// Credentials is a static access key pair.
// Its formatted and JSON forms never contain the secrets.
type Credentials struct {
	AccessKeyID string
	SecretKey   string
}

// Validate checks that both halves of the pair are set.
func (c Credentials) Validate() error {
	if c.AccessKeyID == "" {
		return fault.Configuration("accessKey", "is required")
	}
	if c.SecretKey == "" {
		return fault.Configuration("accessSecret", "is required")
	}
	return nil
}

func (c Credentials) String() string {
	return "Credentials{" + redacted + "}"
}

func (c Credentials) GoString() string {
	return c.String()
}

func (c Credentials) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}
