// Package engine orchestrates validation runs over an icon library.
//
// An Engine owns the per-run state: the result store, keyed by icon ID in
// document order, and the registry of names claimed so far. Each run resets
// both, validates every icon in document order, routes the reported errors
// through the auto-fix classifier and annotates the icon with a border for
// its remaining severity. Handlers are serialized, so a run always completes
// before a selection change or remediation request is processed.
//
// Results reach a display through the Publisher protocol: Clear before new
// content, Publish with a result set, or NoIcons when the page holds none.
package engine
