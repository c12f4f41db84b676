package validator

import (
	"encoding/json"
	"strings"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
)

// Kind is the type of a violation.
type Kind int

const (
	// KindOther covers violations with no dedicated handling.
	KindOther Kind = iota
	// KindName is a naming-convention or duplicate-name violation.
	KindName
	// KindCategory is a missing or invalid category (parent container).
	KindCategory
	// KindColor is a disallowed fill color.
	KindColor
	// KindLayer is a variant with redundant or misnamed layers.
	KindLayer
	// KindBoundingBox is an icon whose size is not the canonical footprint.
	KindBoundingBox
	// KindIconParts is a variant count mismatch.
	KindIconParts
)

// Kinds lists every Kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindOther, KindName, KindCategory, KindColor, KindLayer, KindBoundingBox, KindIconParts}
}

func (k Kind) String() string {
	switch k {
	case KindOther:
		return "other"
	case KindName:
		return "name"
	case KindCategory:
		return "category"
	case KindColor:
		return "color"
	case KindLayer:
		return "layer"
	case KindBoundingBox:
		return "bounding_box"
	case KindIconParts:
		return "icon_parts"
	default:
		return "unknown"
	}
}

// ParseKind parses the String form of a Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return KindOther, errors.Newf("unknown error kind %q", s)
}

// MarshalJSON encodes the kind by name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a kind name.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return errors.Wrap(err, "decoding error kind")
	}
	parsed, err := ParseKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
