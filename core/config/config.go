package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"line-counter/core/job"
	"line-counter/core/logger"
	"line-counter/core/server"
	"line-counter/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// PropertiesFile is the optional properties file read from the config path.
const PropertiesFile = "application.properties"

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// S3 holds the object to count and the credentials to read it.
	S3 job.Settings `mapstructure:"s3"`
	// Storage holds configuration for the object storage connection.
	Storage storage.Config `mapstructure:"storage"`
	// Count tunes a single count run.
	Count CountConfig `mapstructure:"count"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Server holds configuration for the HTTP API.
	Server server.Config `mapstructure:"server"`
}

// CountConfig tunes a single count run.
type CountConfig struct {
	// Decompress enables transparent decompression of .gz, .zst and .bz2 objects.
	Decompress bool `mapstructure:"decompress" default:"true"`
	// TimeoutSeconds bounds a run. Zero means no deadline.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"0"`
}

// LoadConfig loads configuration from environment variables, a .env file and
// application.properties found in path. Environment variables win over the
// properties file, which wins over struct defaults.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	propsPath := filepath.Join(path, PropertiesFile)
	if _, err := os.Stat(propsPath); err == nil {
		props, err := readProperties(propsPath)
		if err != nil {
			return nil, err
		}
		if err := v.MergeConfigMap(props); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", PropertiesFile, err)
		}
	}

	// Map environment variables to nested keys (e.g. S3_BUCKETNAME -> s3.bucketName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// readProperties parses a key=value properties file into a nested map,
// splitting keys on dots (s3.bucketName -> s3 -> bucketName).
func readProperties(path string) (map[string]any, error) {
	flat, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	props := make(map[string]any)
	for key, value := range flat {
		parts := strings.Split(key, ".")
		node := props
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}
	return props, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
