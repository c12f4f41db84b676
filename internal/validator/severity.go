package validator

import (
	"encoding/json"
	"strings"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
)

// Severity ranks how serious a violation is.
type Severity int

const (
	// SeverityNone means the icon is compliant.
	SeverityNone Severity = iota
	// SeverityMedium is a warning the icon can ship with.
	SeverityMedium
	// SeverityHigh blocks publishing the icon.
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ParseSeverity parses the String form of a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return SeverityNone, nil
	case "medium":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	default:
		return SeverityNone, errors.Newf("unknown severity %q", s)
	}
}

// MarshalJSON encodes the severity by name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a severity name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return errors.Wrap(err, "decoding severity")
	}
	parsed, err := ParseSeverity(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Aggregate returns the highest severity in errs, or SeverityNone when empty.
func Aggregate(errs []Error) Severity {
	highest := SeverityNone
	for _, e := range errs {
		if e.Severity > highest {
			highest = e.Severity
		}
	}
	return highest
}
