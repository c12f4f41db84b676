package engine

import (
	"slices"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/validator"
)

// Store holds one result per icon, in the order the icons were first stored.
type Store struct {
	order   []string
	results map[string]validator.Result
}

// Put stores res, replacing any earlier result for the same icon.
func (s *Store) Put(res validator.Result) {
	if s.results == nil {
		s.results = make(map[string]validator.Result)
	}
	if _, ok := s.results[res.ID]; !ok {
		s.order = append(s.order, res.ID)
	}
	s.results[res.ID] = res
}

// Get returns the result for id.
func (s *Store) Get(id string) (validator.Result, bool) {
	res, ok := s.results[id]
	return res, ok
}

// Len returns the number of stored results.
func (s *Store) Len() int { return len(s.order) }

// All returns every result in store order.
func (s *Store) All() []validator.Result {
	out := make([]validator.Result, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.results[id])
	}
	return out
}

// Filter returns the results whose IDs appear in ids, in store order.
// IDs without a result are ignored.
func (s *Store) Filter(ids []string) []validator.Result {
	out := make([]validator.Result, 0, len(ids))
	for _, id := range s.order {
		if slices.Contains(ids, id) {
			out = append(out, s.results[id])
		}
	}
	return out
}

// Reset empties the store.
func (s *Store) Reset() {
	s.order = nil
	s.results = nil
}
