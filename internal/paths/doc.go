// Package paths resolves the directories iconaudit reads its configuration
// from, following the XDG Base Directory conventions via github.com/adrg/xdg.
//
// ICONAUDIT_CONFIG_DIR overrides the config directory, which tests use to keep
// the user's real configuration out of the picture.
package paths
