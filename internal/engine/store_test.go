package engine

import (
	"slices"
	"testing"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/scene"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/validator"
)

func TestStore(t *testing.T) {
	var s Store
	s.Put(validator.Result{ID: "b", Name: "ic_b"})
	s.Put(validator.Result{ID: "a", Name: "ic_a"})
	s.Put(validator.Result{ID: "b", Name: "ic_b2"})

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	all := s.All()
	if all[0].ID != "b" || all[1].ID != "a" {
		t.Errorf("All() order = %s, %s; want b, a", all[0].ID, all[1].ID)
	}
	if got, _ := s.Get("b"); got.Name != "ic_b2" {
		t.Errorf("Get(b).Name = %q, want ic_b2", got.Name)
	}
	if _, ok := s.Get("z"); ok {
		t.Error("Get(z) found a result")
	}

	filtered := s.Filter([]string{"a", "z"})
	if len(filtered) != 1 || filtered[0].ID != "a" {
		t.Errorf("Filter() = %+v, want only a", filtered)
	}
	if s.Len() != 2 {
		t.Error("Filter() modified the store")
	}

	s.Reset()
	if s.Len() != 0 || len(s.All()) != 0 {
		t.Error("Reset() left results behind")
	}
}

func TestNameRegistry(t *testing.T) {
	var r NameRegistry
	r.Claim("ic_a")
	r.Claim("ic_a")
	r.Claim("ic_b")

	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
	if !r.Contains("ic_b") || r.Contains("ic_c") {
		t.Error("Contains() mismatch")
	}

	names := r.Names()
	names[0] = "mutated"
	if !slices.Equal(r.Names(), []string{"ic_a", "ic_a", "ic_b"}) {
		t.Errorf("Names() = %v, copy was not independent", r.Names())
	}

	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len() after Reset = %d", r.Len())
	}
}

func TestGuard(t *testing.T) {
	tests := []struct {
		file, page string
		ok         bool
	}{
		{"Icon Library", "Icons", true},
		{"🦓 ZDS - Assets", "🦓 Icons", true},
		{"Icon Library", "Cover", false},
		{"Scratch", "Icons", false},
	}
	for _, tt := range tests {
		t.Run(tt.file+"/"+tt.page, func(t *testing.T) {
			err := DefaultGuard().Check(scene.New(&scene.File{File: tt.file, Page: tt.page}))
			if (err == nil) != tt.ok {
				t.Errorf("Check() error = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}
