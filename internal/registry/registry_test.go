package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/bullet-hell/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Frame)                   {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func stub(id string) Factory {
	return func() Game { return stubGame{id: id} }
}

func indexOf(list []GameInfo, id string) int {
	for i, info := range list {
		if info.ID == id {
			return i
		}
	}
	return -1
}

func TestRegisterCreateList(t *testing.T) {
	Register(GameInfo{ID: "zz_stub", Title: "Last", Description: "registered first"}, stub("zz_stub"))
	Register(GameInfo{ID: "aa_stub"}, stub("aa_stub"))

	if !Exists("zz_stub") || !Exists("aa_stub") {
		t.Fatal("registered modes should exist")
	}
	if Exists("missing") {
		t.Error("unregistered mode should not exist")
	}

	g, err := Create("aa_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "aa_stub" {
		t.Errorf("Create() returned %q", g.ID())
	}

	list := List()
	zz, aa := indexOf(list, "zz_stub"), indexOf(list, "aa_stub")
	if zz < 0 || aa < 0 {
		t.Fatalf("List() = %v, missing stubs", list)
	}
	if zz > aa {
		t.Error("List() should keep registration order")
	}
	if list[zz].Title != "Last" || list[zz].Description != "registered first" {
		t.Errorf("List()[zz] = %+v", list[zz])
	}
	if list[aa].Title != "aa_stub" {
		t.Errorf("empty title should default to the ID, got %q", list[aa].Title)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("missing")
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Create() error = %v, want ErrUnknownMode", err)
	}
}

func TestLookup(t *testing.T) {
	Register(GameInfo{ID: "lookup_stub", Title: "Lookup"}, stub("lookup_stub"))

	info, ok := Lookup("lookup_stub")
	if !ok || info.Title != "Lookup" {
		t.Errorf("Lookup() = %+v, %v", info, ok)
	}
	if _, ok := Lookup("missing"); ok {
		t.Error("Lookup() should miss unknown IDs")
	}
}

func TestRegisterPanics(t *testing.T) {
	Register(GameInfo{ID: "dup_stub"}, stub("dup_stub"))

	tests := []struct {
		name string
		info GameInfo
		f    Factory
	}{
		{"duplicate ID", GameInfo{ID: "dup_stub"}, stub("dup_stub")},
		{"empty ID", GameInfo{Title: "No ID"}, stub("")},
		{"nil factory", GameInfo{ID: "nil_stub"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register() should panic")
				}
			}()
			Register(tt.info, tt.f)
		})
	}
}
