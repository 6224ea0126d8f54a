package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"line-counter/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate registers cleanup for every variable the test files may set.
func isolate(t *testing.T) {
	for _, key := range []string{
		"S3_PROTOCOL", "S3_ACCESSKEY", "S3_ACCESSSECRET", "S3_BUCKETNAME", "S3_FILEPATH",
		"STORAGE_PROVIDER", "STORAGE_MAX_RETRIES", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func write(t *testing.T, dir, name, content string) {
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "s3a://", cfg.S3.Protocol)
	assert.Empty(t, cfg.S3.BucketName)
	assert.Equal(t, "minio", cfg.Storage.Provider)
	assert.Equal(t, "s3.amazonaws.com", cfg.Storage.Endpoint)
	assert.True(t, cfg.Storage.UseSSL)
	assert.Equal(t, 3, cfg.Storage.MaxRetries)
	assert.True(t, cfg.Count.Decompress)
	assert.Equal(t, 0, cfg.Count.TimeoutSeconds)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfig_PropertiesFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	write(t, dir, config.PropertiesFile, `s3.accessKey=AKIAEXAMPLE
s3.accessSecret=s3cr3t
s3.bucketName=test-bucket
s3.filePath=data.txt
s3.protocol=s3n://
`)

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "AKIAEXAMPLE", cfg.S3.AccessKey)
	assert.Equal(t, "s3cr3t", cfg.S3.AccessSecret)
	assert.Equal(t, "test-bucket", cfg.S3.BucketName)
	assert.Equal(t, "data.txt", cfg.S3.FilePath)

	j, err := cfg.S3.Build()
	require.NoError(t, err)
	assert.Equal(t, "s3n://test-bucket/data.txt", j.URI())
}

func TestLoadConfig_EnvOverridesProperties(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	write(t, dir, config.PropertiesFile, "s3.filePath=from-properties.txt\ns3.bucketName=props-bucket\n")
	write(t, dir, ".env", "S3_FILEPATH=from-dotenv.txt\nSTORAGE_MAX_RETRIES=7\nSTORAGE_PROVIDER=aws\n")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv.txt", cfg.S3.FilePath)
	assert.Equal(t, "props-bucket", cfg.S3.BucketName)
	assert.Equal(t, 7, cfg.Storage.MaxRetries)
	assert.Equal(t, "aws", cfg.Storage.Provider)
}

func TestLoadConfig_PropertiesFileSyntax(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	write(t, dir, config.PropertiesFile, `# S3 input
s3.protocol=s3a://
s3.accessKey = AKIAEXAMPLE
s3.accessSecret: s3cr3t

s3.bucketName=test-bucket
s3.filePath=logs/2024/data.txt
storage.max_retries=5
count.decompress=false
`)

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "s3a://", cfg.S3.Protocol)
	assert.Equal(t, "AKIAEXAMPLE", cfg.S3.AccessKey)
	assert.Equal(t, "s3cr3t", cfg.S3.AccessSecret)
	assert.Equal(t, "logs/2024/data.txt", cfg.S3.FilePath)
	assert.Equal(t, 5, cfg.Storage.MaxRetries)
	assert.False(t, cfg.Count.Decompress)
	// Untouched keys keep their defaults.
	assert.Equal(t, "minio", cfg.Storage.Provider)
}

func TestLoadConfig_MalformedPropertiesFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	write(t, dir, config.PropertiesFile, "s3/bucketName=test-bucket\n")

	_, err := config.LoadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.PropertiesFile)
}
