package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appDirName     = "kctx"
	stateFileName  = "state.json"
	configFileName = "config.toml"
)

// Paths locates the files kctx keeps under the user's configuration
// directory. Everything is derived from xdg.ConfigHome; there is no other
// discovery mechanism.
type Paths struct {
	BaseDir    string
	StateFile  string
	ConfigFile string
}

// DefaultPaths returns the standard ~/.config/kctx layout.
func DefaultPaths() Paths {
	base := filepath.Join(xdg.ConfigHome, appDirName)

	return Paths{
		BaseDir:    base,
		StateFile:  filepath.Join(base, stateFileName),
		ConfigFile: filepath.Join(base, configFileName),
	}
}
