package config

import (
	"regexp"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/host"
)

// Validation errors for configuration fields.
var (
	// ErrEmptyList indicates a list that must hold at least one entry.
	ErrEmptyList = errors.New("must not be empty")

	// ErrInvalidColor indicates a malformed hex color.
	ErrInvalidColor = errors.New("invalid hex color")

	// ErrConflictingColor indicates a color mapped to both black and white.
	ErrConflictingColor = errors.New("color mapped to both black and white")

	// ErrNotPositive indicates a numeric field that must be above zero.
	ErrNotPositive = errors.New("must be greater than zero")

	// ErrInvalidPattern indicates a name pattern that does not compile.
	ErrInvalidPattern = errors.New("invalid regular expression")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if !cfg.SkipContextCheck {
		if len(cfg.AllowedFiles) == 0 {
			errs = append(errs, &FieldError{Field: "allowed_files", Err: ErrEmptyList})
		}
		if len(cfg.AllowedPages) == 0 {
			errs = append(errs, &FieldError{Field: "allowed_pages", Err: ErrEmptyList})
		}
	}

	black := make(map[string]bool)
	for _, c := range cfg.Colors.MapToBlack {
		if _, err := host.ParseHex(c); err != nil {
			errs = append(errs, &FieldError{Field: "colors.map_to_black", Value: c, Err: ErrInvalidColor})
			continue
		}
		black[host.NormalizeHex(c)] = true
	}
	for _, c := range cfg.Colors.MapToWhite {
		if _, err := host.ParseHex(c); err != nil {
			errs = append(errs, &FieldError{Field: "colors.map_to_white", Value: c, Err: ErrInvalidColor})
			continue
		}
		if black[host.NormalizeHex(c)] {
			errs = append(errs, &FieldError{Field: "colors.map_to_white", Value: c, Err: ErrConflictingColor})
		}
	}

	if cfg.Fix.Width <= 0 {
		errs = append(errs, &FieldError{Field: "fix.width", Err: ErrNotPositive})
	}
	if cfg.Fix.Height <= 0 {
		errs = append(errs, &FieldError{Field: "fix.height", Err: ErrNotPositive})
	}
	if cfg.Fix.MaxDepth <= 0 {
		errs = append(errs, &FieldError{Field: "fix.max_depth", Err: ErrNotPositive})
	}
	if cfg.Rules.VariantCount <= 0 {
		errs = append(errs, &FieldError{Field: "rules.variant_count", Err: ErrNotPositive})
	}
	if _, err := regexp.Compile(cfg.Rules.NamePattern); err != nil {
		errs = append(errs, &FieldError{Field: "rules.name_pattern", Value: cfg.Rules.NamePattern, Err: ErrInvalidPattern})
	}

	return errs
}

// FieldError represents an error for a specific configuration key.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return e.Field + ": " + e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
