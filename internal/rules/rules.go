// Package rules provides the built-in icon validator used by the CLI.
package rules

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/host"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/validator"
)

// DefaultNamePattern accepts lower-case words joined by underscores.
const DefaultNamePattern = `^[a-z0-9]+(_[a-z0-9]+)*$`

// Config holds the rule parameters. Zero values select the defaults.
type Config struct {
	NamePattern string
	Variants    int
	LayerName   string
	Width       float64
	Height      float64
}

// Rules checks icons against the library conventions.
type Rules struct {
	name      *regexp.Regexp
	variants  int
	layerName string
	width     float64
	height    float64
}

var _ validator.Validator = (*Rules)(nil)

// New compiles cfg into a validator.
func New(cfg Config) (*Rules, error) {
	if cfg.NamePattern == "" {
		cfg.NamePattern = DefaultNamePattern
	}
	re, err := regexp.Compile(cfg.NamePattern)
	if err != nil {
		return nil, errors.Wrapf(err, "compiling name pattern %q", cfg.NamePattern)
	}
	r := &Rules{
		name:      re,
		variants:  cfg.Variants,
		layerName: cfg.LayerName,
		width:     cfg.Width,
		height:    cfg.Height,
	}
	if r.variants <= 0 {
		r.variants = 2
	}
	if r.layerName == "" {
		r.layerName = "Vector"
	}
	if r.width <= 0 || r.height <= 0 {
		r.width, r.height = 112, 72
	}
	return r, nil
}

// Validate implements validator.Validator.
func (r *Rules) Validate(in validator.Input) ([]validator.Error, error) {
	var errs []validator.Error
	errs = append(errs, r.checkName(in)...)

	if strings.TrimSpace(in.Category) == "" {
		errs = append(errs, validator.Error{
			Kind:     validator.KindCategory,
			Severity: validator.SeverityHigh,
			Message:  "Icon is not inside a category",
		})
	}

	if in.Icon == nil {
		return errs, nil
	}
	errs = append(errs, r.checkStructure(in.Icon)...)
	errs = append(errs, r.checkColors(in.Icon)...)
	errs = append(errs, r.checkBounds(in.Icon)...)
	return errs, nil
}

func (r *Rules) checkName(in validator.Input) []validator.Error {
	candidate := in.Name
	valid := r.name.MatchString(in.Name)
	if !valid {
		candidate = Normalize(in.Name)
	}

	if candidate != "" && slices.Contains(in.UsedNames, candidate) {
		return []validator.Error{{
			Kind:          validator.KindName,
			Severity:      validator.SeverityHigh,
			Message:       fmt.Sprintf("Name %q is already used", candidate),
			SuggestedName: nextFree(candidate, in.UsedNames),
		}}
	}
	if valid {
		return nil
	}

	e := validator.Error{
		Kind:     validator.KindName,
		Severity: validator.SeverityMedium,
		Message:  fmt.Sprintf("Name %q does not match %s", in.Name, r.name),
	}
	if candidate != "" && r.name.MatchString(candidate) {
		e.SuggestedName = candidate
	}
	return []validator.Error{e}
}

// Normalize lower-cases name and joins its alphanumeric runs with
// underscores.
func Normalize(name string) string {
	var words []string
	var cur strings.Builder
	for _, c := range strings.ToLower(name) {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			cur.WriteRune(c)
			continue
		}
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		words = append(words, cur.String())
	}
	return strings.Join(words, "_")
}

func nextFree(name string, used []string) string {
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s_%d", name, i)
		if !slices.Contains(used, candidate) {
			return candidate
		}
	}
}

func (r *Rules) checkStructure(icon host.Node) []validator.Error {
	variants, err := icon.Children()
	if err != nil {
		return []validator.Error{{
			Kind:     validator.KindOther,
			Severity: validator.SeverityHigh,
			Message:  "Variants could not be read: " + err.Error(),
		}}
	}

	var errs []validator.Error
	if len(variants) != r.variants {
		errs = append(errs, validator.Error{
			Kind:     validator.KindIconParts,
			Severity: validator.SeverityHigh,
			Message:  fmt.Sprintf("Icon has %d variant(s), expected %d", len(variants), r.variants),
		})
	}

	for _, v := range variants {
		layers, err := v.Children()
		if err != nil {
			continue
		}
		if len(layers) == 1 && layers[0].Name() == r.layerName {
			continue
		}
		errs = append(errs, validator.Error{
			Kind:     validator.KindLayer,
			Severity: validator.SeverityMedium,
			Message:  fmt.Sprintf("Variant %q should hold a single layer named %q", v.Name(), r.layerName),
		})
	}
	return errs
}

func (r *Rules) checkColors(icon host.Node) []validator.Error {
	var (
		seen  []string
		stack = []host.Node{icon}
	)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, p := range n.Fills() {
			if !p.IsSolid() || p.Color.Equal(host.Black) || p.Color.Equal(host.White) {
				continue
			}
			if hex := p.Color.Hex(); !slices.Contains(seen, hex) {
				seen = append(seen, hex)
			}
		}

		children, err := n.Children()
		if err != nil {
			continue
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	errs := make([]validator.Error, 0, len(seen))
	for _, hex := range seen {
		errs = append(errs, validator.Error{
			Kind:     validator.KindColor,
			Severity: validator.SeverityMedium,
			Message:  fmt.Sprintf("Color %s is not allowed", hex),
		})
	}
	return errs
}

func (r *Rules) checkBounds(icon host.Node) []validator.Error {
	w, h := icon.Size()
	if w == r.width && h == r.height {
		return nil
	}
	return []validator.Error{{
		Kind:     validator.KindBoundingBox,
		Severity: validator.SeverityMedium,
		Message:  fmt.Sprintf("Icon is %gx%g, expected %gx%g", w, h, r.width, r.height),
	}}
}
