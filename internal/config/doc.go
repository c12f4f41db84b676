// Package config provides configuration management for the iconaudit CLI.
//
// # Configuration File
//
// The configuration file is iconaudit.yaml, searched in the current
// directory and then in the XDG config directory (~/.config/iconaudit on
// Linux, overridable with ICONAUDIT_CONFIG_DIR):
//
//	allowed_files: ["Icon Library", "🦓 ZDS - Assets"]
//	allowed_pages: ["🦓 Icons", "Icons"]
//	skip_context_check: false
//	colors:
//	  map_to_black: ["#1D1E23", "#2C2F36", "#0F1012"]
//	  map_to_white: ["#F3F6FA", "#FEFEFE", "#FAFAFA"]
//	fix:
//	  enabled: true
//	  layer_name: Vector
//	  width: 112
//	  height: 72
//	  optimistic_layer_credit: false
//	  max_depth: 64
//	rules:
//	  name_pattern: '^[a-z0-9]+(_[a-z0-9]+)*$'
//	  variant_count: 2
//
// Every key can be overridden from the environment with the ICONAUDIT_
// prefix and dots replaced by underscores, e.g. ICONAUDIT_FIX_ENABLED=false.
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	if errs := config.Validate(cfg); len(errs) > 0 {
//	    // report errs
//	}
package config
