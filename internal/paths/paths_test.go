package paths

import (
	"path/filepath"
	"testing"
)

func TestConfigDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("ICONAUDIT_CONFIG_DIR", dir)
		if got := ConfigDir(); got != dir {
			t.Errorf("ConfigDir() = %q, want %q", got, dir)
		}
	})

	t.Run("xdg default", func(t *testing.T) {
		t.Setenv("ICONAUDIT_CONFIG_DIR", "")
		want := filepath.Join(ConfigHome(), "iconaudit")
		if got := ConfigDir(); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})
}

func TestIsSceneFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"icons.yaml", true},
		{"icons.yml", true},
		{"/tmp/icons.json", true},
		{"icons.toml", true},
		{"icons.fig", false},
		{"icons", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsSceneFile(tt.path); got != tt.want {
				t.Errorf("IsSceneFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
