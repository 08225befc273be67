// Package appconfig loads composition-level configuration: a TOML file
// overlaid with the WFIRMA_* environment variables the vendor's tooling
// conventionally sets. The SDK packages never read the environment; this
// package exists for the cmd binaries and the examples.
package appconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mtlab/wfirma-go/pkg/internal/client"
	"github.com/mtlab/wfirma-go/pkg/internal/dashboard"
)

// DefaultPath is where the CLI looks for configuration when no --config
// flag is given.
const DefaultPath = "wfirma.toml"

type Config struct {
	API       APIConfig       `koanf:"api"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Storage   StorageConfig   `koanf:"storage"`
	Archive   ArchiveConfig   `koanf:"archive"`
	Kafka     KafkaConfig     `koanf:"kafka"`
	Sheet     SheetConfig     `koanf:"sheet"`
}

// APIConfig holds the vendor credentials. Token mode and key mode follow
// the client's precedence: a token wins when both are present.
type APIConfig struct {
	BaseURL     string `koanf:"base_url"`
	CompanyID   string `koanf:"company_id"`
	AccessKey   string `koanf:"access_key"`
	SecretKey   string `koanf:"secret_key"`
	AppKey      string `koanf:"app_key"`
	OAuth2Token string `koanf:"oauth2_token"`
}

type DashboardConfig struct {
	Addr         string        `koanf:"addr"`
	PollInterval time.Duration `koanf:"poll_interval"`
}

type StorageConfig struct {
	Driver string `koanf:"driver"`
	DSN    string `koanf:"dsn"`
	Table  string `koanf:"table"`
}

type ArchiveConfig struct {
	Bucket         string `koanf:"bucket"`
	Region         string `koanf:"region"`
	Endpoint       string `koanf:"endpoint"`
	AccessKey      string `koanf:"access_key"`
	SecretKey      string `koanf:"secret_key"`
	SessionToken   string `koanf:"session_token"`
	RoleARN        string `koanf:"role_arn"`
	RoleSession    string `koanf:"role_session"`
	ForcePathStyle bool   `koanf:"force_path_style"`
	KeyTemplate    string `koanf:"key_template"`
	Compress       bool   `koanf:"compress"`
}

type KafkaConfig struct {
	Brokers []string `koanf:"brokers"`
	Topic   string   `koanf:"topic"`
}

type SheetConfig struct {
	URL string `koanf:"url"`
}

// Defaults returns the configuration used when the file and environment
// say nothing.
func Defaults() Config {
	return Config{
		API: APIConfig{BaseURL: client.DefaultBaseURL},
		Dashboard: DashboardConfig{
			Addr:         dashboard.DefaultAddr,
			PollInterval: dashboard.DefaultPollInterval,
		},
		Storage: StorageConfig{DSN: "wfirma.db"},
		Kafka:   KafkaConfig{Topic: "wfirma.invoices"},
	}
}

// Load reads the TOML file at path and applies the environment overlay.
// When optional is true a missing file only leaves the defaults in place.
func Load(path string, optional bool) (Config, error) {
	cfg := Defaults()

	k := koanf.New(".")
	err := k.Load(file.Provider(path), toml.Parser())
	switch {
	case err == nil:
		if err := k.Unmarshal("", &cfg); err != nil {
			return Config{}, fmt.Errorf("appconfig: parse %s: %w", path, err)
		}
	case optional && errors.Is(err, fs.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("appconfig: load %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}
