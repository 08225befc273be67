package wfirma

import (
	"github.com/mtlab/wfirma-go/pkg/internal/appconfig"
)

// Config is the TOML file shape the cmd binaries load.
type Config = appconfig.Config

type (
	APIConfig       = appconfig.APIConfig
	DashboardConfig = appconfig.DashboardConfig
	StorageConfig   = appconfig.StorageConfig
	ArchiveConfig   = appconfig.ArchiveConfig
	KafkaConfig     = appconfig.KafkaConfig
	SheetConfig     = appconfig.SheetConfig
)

// DefaultConfigPath is where LoadConfig looks when no path is given.
const DefaultConfigPath = appconfig.DefaultPath

// LoadConfig reads a TOML file, overlays the WFIRMA_* environment
// variables and returns the result. With optional set a missing file is
// not an error.
func LoadConfig(path string, optional bool) (Config, error) {
	return appconfig.Load(path, optional)
}
