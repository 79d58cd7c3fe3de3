package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
services:
  metadata:
    host: 0.0.0.0
    port: 9010
  data:
    host: 0.0.0.0
    port: 9020
  gateway:
    enabled: false
    host: 0.0.0.0
    port: 8080

metadata:
  dialect: sqlite
  databaseUrl: sqlite:///var/tracd/meta.db
  pool:
    maxConnections: 16

storage:
  defaultStore: STORE1
  stores:
    STORE1:
      type: LOCAL
      properties:
        rootPath: /var/tracd/data
    ARCHIVE:
      type: S3
      properties:
        endpoint: s3.example.com
        bucket: tracd-archive
        accessKey: ${TRACD_TEST_ACCESS_KEY}
        secretKey: ${TRACD_TEST_SECRET_KEY}

data:
  storageFormat: ARROW_FILE

tenants:
  - code: ACME
    description: test tenant

gateway:
  apiPrefix: ""
  redirects:
    - source: /
      target: /docs
      status: 301
`

func TestParseValidConfig(t *testing.T) {
	t.Setenv("TRACD_TEST_ACCESS_KEY", "ak")
	t.Setenv("TRACD_TEST_SECRET_KEY", "sk")

	platform, err := Parse([]byte(validConfig))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9010", platform.Services["metadata"].ListenAddress())
	assert.True(t, platform.Services["metadata"].IsEnabled())
	assert.False(t, platform.Services["gateway"].IsEnabled())

	assert.Equal(t, "sqlite", platform.Metadata.Dialect)
	assert.Equal(t, 16, platform.Metadata.Pool.MaxConnections)

	assert.Equal(t, "STORE1", platform.Storage.DefaultStore)
	assert.Equal(t, "ak", platform.Storage.Stores["ARCHIVE"].Properties["accessKey"])
	assert.Equal(t, "sk", platform.Storage.Stores["ARCHIVE"].Properties["secretKey"])

	require.Len(t, platform.Tenants, 1)
	assert.Equal(t, "ACME", platform.Tenants[0].Code)

	require.Len(t, platform.Gateway.Redirects, 1)
	assert.Equal(t, 301, platform.Gateway.Redirects[0].Status)
}

func TestParseMissingEnv(t *testing.T) {
	_, err := Parse([]byte(`
metadata:
  dialect: sqlite
  databaseUrl: sqlite://${TRACD_TEST_UNSET_DB_PATH}
storage:
  defaultStore: STORE1
  stores:
    STORE1: {type: TEST}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TRACD_TEST_UNSET_DB_PATH")
}

func TestValidate(t *testing.T) {
	base := func() *Platform {
		return &Platform{
			Metadata: Metadata{Dialect: "sqlite", DatabaseUrl: "sqlite:///tmp/meta.db"},
			Storage: Storage{
				DefaultStore: "STORE1",
				Stores:       map[string]Store{"STORE1": {Type: StoreTypeTest}},
			},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("unknown dialect", func(t *testing.T) {
		platform := base()
		platform.Metadata.Dialect = "oracle"
		assert.Error(t, platform.Validate())
	})

	t.Run("url does not match dialect", func(t *testing.T) {
		platform := base()
		platform.Metadata.DatabaseUrl = "postgres://localhost/tracd"
		assert.Error(t, platform.Validate())
	})

	t.Run("default store missing", func(t *testing.T) {
		platform := base()
		platform.Storage.DefaultStore = "NOPE"
		assert.Error(t, platform.Validate())
	})

	t.Run("local store without root path", func(t *testing.T) {
		platform := base()
		platform.Storage.Stores["LOCAL1"] = Store{Type: StoreTypeLocal}
		assert.Error(t, platform.Validate())
	})

	t.Run("unknown service", func(t *testing.T) {
		platform := base()
		platform.Services = map[string]Service{"frontend": {Port: 80}}
		assert.Error(t, platform.Validate())
	})

	t.Run("bad service port", func(t *testing.T) {
		platform := base()
		platform.Services = map[string]Service{ServiceData: {Port: 0}}
		assert.Error(t, platform.Validate())
	})

	t.Run("bad tenant code", func(t *testing.T) {
		platform := base()
		platform.Tenants = []Tenant{{Code: "lower_case"}}
		assert.Error(t, platform.Validate())
	})

	t.Run("unknown yaml key is rejected", func(t *testing.T) {
		_, err := Parse([]byte("metdata: {dialect: sqlite}"))
		assert.Error(t, err)
	})
}
