// Package config loads the platform yaml config. `${NAME}` references are
// substituted from the environment before parsing, so secrets stay out of
// the file itself.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"tracd.io/tracd/pkg/dataservice"
	"tracd.io/tracd/pkg/gateway"
	"tracd.io/tracd/pkg/metadata"
)

// Error is the config error class.
var Error = errs.Class("config error")

// Platform is the root of the platform config file.
type Platform struct {
	Services       map[string]Service `yaml:"services"`
	Metadata       Metadata           `yaml:"metadata"`
	Storage        Storage            `yaml:"storage"`
	Data           dataservice.Config `yaml:"data"`
	Tenants        []Tenant           `yaml:"tenants"`
	Authentication Authentication     `yaml:"authentication"`
	Gateway        gateway.Config     `yaml:"gateway"`
}

// Service configures one listener of the process.
type Service struct {
	Enabled    *bool             `yaml:"enabled"`
	Host       string            `yaml:"host"`
	Port       int               `yaml:"port"`
	Properties map[string]string `yaml:"properties"`
}

// IsEnabled treats a missing enabled flag as on.
func (s Service) IsEnabled() bool { return s.Enabled == nil || *s.Enabled }

// ListenAddress renders host:port for net.Listen.
func (s Service) ListenAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Metadata configures the metadata database.
type Metadata struct {
	Dialect     string `yaml:"dialect"`
	DatabaseUrl string `yaml:"databaseUrl"`
	Pool        Pool   `yaml:"pool"`
}

// Pool bounds the database connection pool.
type Pool struct {
	MaxConnections int `yaml:"maxConnections"`
	MaxIdle        int `yaml:"maxIdle"`
}

// Storage configures the blob store plugins by storage key.
type Storage struct {
	DefaultStore string           `yaml:"defaultStore"`
	Stores       map[string]Store `yaml:"stores"`
}

// Store is one blob store plugin instance.
type Store struct {
	Type       string            `yaml:"type"`
	Properties map[string]string `yaml:"properties"`
}

// Tenant is a bootstrap tenant ensured at startup.
type Tenant struct {
	Code        string `yaml:"code"`
	Description string `yaml:"description"`
}

// Authentication names the signing key for token validation.
type Authentication struct {
	SigningKeyAlias string `yaml:"signingKeyAlias"`
}

// Known service names.
const (
	ServiceMetadata = "metadata"
	ServiceData     = "data"
	ServiceGateway  = "gateway"
)

// Known store types.
const (
	StoreTypeLocal = "LOCAL"
	StoreTypeS3    = "S3"
	StoreTypeTest  = "TEST"
)

var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Load reads, substitutes, parses, and validates a platform config file.
func Load(path string) (*Platform, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return Parse(raw)
}

// Parse handles config content already in memory.
func Parse(raw []byte) (*Platform, error) {
	substituted, err := substituteEnv(string(raw))
	if err != nil {
		return nil, err
	}

	decoder := yaml.NewDecoder(strings.NewReader(substituted))
	decoder.KnownFields(true)
	platform := new(Platform)
	if err := decoder.Decode(platform); err != nil {
		return nil, Error.New("invalid config: %v", err)
	}
	if err := platform.Validate(); err != nil {
		return nil, err
	}
	return platform, nil
}

// substituteEnv expands ${NAME} references; any unset name fails the load
// so a missing secret is caught at boot rather than at first use.
func substituteEnv(raw string) (string, error) {
	var missing []string
	substituted := envPattern.ReplaceAllStringFunc(raw, func(match string) string {
		name := match[2 : len(match)-1]
		value, ok := os.LookupEnv(name)
		if !ok {
			missing = append(missing, name)
		}
		return value
	})
	if len(missing) > 0 {
		return "", Error.New("unset config variables: %s", strings.Join(missing, ", "))
	}
	return substituted, nil
}

// Validate applies the structural checks that do not need I/O.
func (p *Platform) Validate() error {
	switch p.Metadata.Dialect {
	case "postgres", "sqlite":
	case "":
		return Error.New("metadata.dialect is required")
	default:
		return Error.New("unknown metadata dialect %q", p.Metadata.Dialect)
	}
	if p.Metadata.DatabaseUrl == "" {
		return Error.New("metadata.databaseUrl is required")
	}
	if !strings.HasPrefix(p.Metadata.DatabaseUrl, p.Metadata.Dialect+"://") {
		return Error.New("metadata.databaseUrl does not match dialect %q", p.Metadata.Dialect)
	}

	if len(p.Storage.Stores) == 0 {
		return Error.New("at least one storage store is required")
	}
	if p.Storage.DefaultStore == "" {
		return Error.New("storage.defaultStore is required")
	}
	if _, ok := p.Storage.Stores[p.Storage.DefaultStore]; !ok {
		return Error.New("storage.defaultStore %q is not configured", p.Storage.DefaultStore)
	}
	for key, store := range p.Storage.Stores {
		switch store.Type {
		case StoreTypeLocal:
			if store.Properties["rootPath"] == "" {
				return Error.New("store %q needs a rootPath property", key)
			}
		case StoreTypeS3:
			for _, prop := range []string{"endpoint", "bucket", "accessKey", "secretKey"} {
				if store.Properties[prop] == "" {
					return Error.New("store %q needs a %s property", key, prop)
				}
			}
		case StoreTypeTest:
		case "":
			return Error.New("store %q needs a type", key)
		default:
			return Error.New("store %q has unknown type %q", key, store.Type)
		}
	}

	for name, service := range p.Services {
		switch name {
		case ServiceMetadata, ServiceData, ServiceGateway:
		default:
			return Error.New("unknown service %q", name)
		}
		if !service.IsEnabled() {
			continue
		}
		if service.Port <= 0 || service.Port > 65535 {
			return Error.New("service %q has invalid port %d", name, service.Port)
		}
	}

	for _, tenant := range p.Tenants {
		if !metadata.ValidTenantCode(tenant.Code) {
			return Error.New("invalid tenant code %q", tenant.Code)
		}
	}
	return nil
}
