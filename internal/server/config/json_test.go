package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	body := `{
		"endpoint_addr_http": ":9999",
		"database_dsn": "postgres://u:p@db:5432/idp",
		"secret_key": "json-secret",
		"token_validity_duration": "30m",
		"s3_access_key_id": "ak",
		"s3_secret_access_key": "sk",
		"s3_bucket": "photos",
		"s3_region": "eu-west-1",
		"s3_base_endpoint": "http://minio:9000/"
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":9999", cfg.EndpointAddrHTTP)
	assert.Equal(t, "postgres://u:p@db:5432/idp", cfg.DatabaseDSN)
	assert.Equal(t, "json-secret", cfg.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, "ak", cfg.S3AccessKeyID)
	assert.Equal(t, "sk", cfg.S3SecretAccessKey)
	assert.Equal(t, "photos", cfg.S3Bucket)
	assert.Equal(t, "eu-west-1", cfg.S3Region)
	assert.Equal(t, "http://minio:9000/", cfg.S3BaseEndpoint)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
}
