package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is used for directory and config file naming.
const AppName = "iconaudit"

// ConfigFileName is the base name of the config file, without extension.
const ConfigFileName = "iconaudit"

// configDirEnv overrides ConfigDir when set.
const configDirEnv = "ICONAUDIT_CONFIG_DIR"

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the directory holding iconaudit.yaml.
func ConfigDir() string {
	if dir := os.Getenv(configDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// SceneExtensions lists the file extensions accepted for design documents,
// in the order they are tried when a path has no extension.
func SceneExtensions() []string {
	return []string{".yaml", ".yml", ".json", ".toml"}
}

// IsSceneFile reports whether path has a supported design document extension.
func IsSceneFile(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range SceneExtensions() {
		if ext == e {
			return true
		}
	}
	return false
}
