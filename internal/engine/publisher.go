package engine

import (
	"slices"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/validator"
)

// Publisher is the display side of the engine.
type Publisher interface {
	// Clear discards whatever the display currently shows.
	Clear()
	// Publish shows a result set.
	Publish(results []validator.Result)
	// NoIcons signals that the page holds no icons.
	NoIcons()
}

// Discard is a Publisher that drops every message.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Clear()                     {}
func (discard) Publish([]validator.Result) {}
func (discard) NoIcons()                   {}

// Recorder is a Publisher that keeps the display state in memory.
type Recorder struct {
	// Results is the last published set, nil after Clear.
	Results []validator.Result
	// Empty is set by NoIcons and cleared by Clear or Publish.
	Empty bool
	// Clears counts Clear calls.
	Clears int
	// Publishes counts Publish calls.
	Publishes int
}

// Clear implements Publisher.
func (r *Recorder) Clear() {
	r.Results = nil
	r.Empty = false
	r.Clears++
}

// Publish implements Publisher.
func (r *Recorder) Publish(results []validator.Result) {
	r.Results = slices.Clone(results)
	r.Empty = false
	r.Publishes++
}

// NoIcons implements Publisher.
func (r *Recorder) NoIcons() {
	r.Results = nil
	r.Empty = true
}
