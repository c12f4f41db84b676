// Package validator holds the shared vocabulary of an icon audit: error
// kinds, severities, the per-icon [Result], and the [Validator] contract that
// rule implementations satisfy.
//
// # Core Concepts
//
//   - [Severity]: None < Medium < High. A result's severity is the maximum
//     over its remaining errors.
//   - [Kind]: the closed set of violation kinds. Switches over Kind are
//     exhaustive; adding a kind means touching every switch.
//   - [Error]: one violation reported for one icon.
//   - [Result]: everything known about one icon after a run.
//
// # Basic Usage
//
//	errs, err := v.Validate(validator.Input{
//		Name:      icon.Name(),
//		Category:  icon.ParentName(),
//		UsedNames: registry.Names(),
//	})
//	sev := validator.Aggregate(errs)
package validator
