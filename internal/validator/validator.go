package validator

import (
	"fmt"
	"strings"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/host"
)

// Error is a single violation reported for one icon.
type Error struct {
	Kind     Kind     `json:"kind"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	// SuggestedName is set on name errors that have a replacement.
	SuggestedName string `json:"suggested_name,omitempty"`
}

// Error implements the error interface.
func (e Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Severity.String())
	sb.WriteString(" ")
	sb.WriteString(e.Kind.String())
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.SuggestedName != "" {
		fmt.Fprintf(&sb, " (suggested %q)", e.SuggestedName)
	}
	return sb.String()
}

// Input is what a Validator sees for one icon.
type Input struct {
	Name     string
	Category string
	// UsedNames are the names claimed by icons earlier in the run.
	// Validators must not modify it.
	UsedNames []string
	// Icon gives rules read access to the node's structure. May be nil.
	Icon host.Node
}

// Validator checks one icon against the library's conventions.
type Validator interface {
	Validate(in Input) ([]Error, error)
}

// Func adapts a function to the Validator interface.
type Func func(in Input) ([]Error, error)

// Validate calls f(in).
func (f Func) Validate(in Input) ([]Error, error) {
	return f(in)
}

// SuggestedName returns the first name suggestion in errs, if any.
func SuggestedName(errs []Error) (string, bool) {
	for _, e := range errs {
		if e.Kind == KindName && e.SuggestedName != "" {
			return e.SuggestedName, true
		}
	}
	return "", false
}

// HasKind reports whether any error in errs has kind k.
func HasKind(errs []Error, k Kind) bool {
	for _, e := range errs {
		if e.Kind == k {
			return true
		}
	}
	return false
}
