// Package fix repairs the violations that are safe to fix without a human:
// disallowed fill colors, redundant variant layers, and off-size bounding
// boxes.
//
// [Classifier] decides which reported errors are fixable, runs each fixer at
// most once per icon, and returns the errors that remain. Fixers mutate the
// document through the host interface; a rejected mutation leaves the
// original error in place.
package fix
