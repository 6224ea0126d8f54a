// Package config loads the application configuration.
//
// Sources, highest precedence first: a .env file in the config directory (godotenv
// overloads it into the process environment), environment variables,
// application.properties in the same directory, then the `default` struct tags.
// Environment names are the upper-cased key with dots turned into underscores,
// so s3.bucketName is S3_BUCKETNAME and storage.max_retries is STORAGE_MAX_RETRIES.
//
// The s3 section describes the job; storage, count, log and server tune how it runs.
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	j, err := cfg.S3.Build()
package config
