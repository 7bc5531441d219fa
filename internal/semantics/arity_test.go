package semantics

import (
	"testing"

	"github.com/lojban/nesy/internal/ast"
)

type stubDict map[string]int

func (d stubDict) Arity(word string) int {
	if a, ok := d[word]; ok {
		return a
	}
	return defaultArity
}

func TestArityRootWord(t *testing.T) {
	buf := &ast.Buffer{Selbris: []ast.Selbri{{Kind: ast.SelbriRoot, Word: "klama"}}}
	c := New(stubDict{"klama": 5})
	if got := c.Arity(buf, 0); got != 5 {
		t.Fatalf("Arity() = %d, want 5", got)
	}
}

func TestArityTanruUsesHeadNotModifier(t *testing.T) {
	buf := &ast.Buffer{Selbris: []ast.Selbri{
		{Kind: ast.SelbriRoot, Word: "barda"},  // 0: modifier
		{Kind: ast.SelbriRoot, Word: "zdani"},  // 1: head
		{Kind: ast.SelbriTanru, ModifierID: 0, HeadID: 1},
	}}
	c := New(stubDict{"barda": 2, "zdani": 3})
	if got := c.Arity(buf, 2); got != 3 {
		t.Fatalf("Arity() = %d, want 3 (the head's arity)", got)
	}
}

func TestArityDefaultsWhenWordUnknown(t *testing.T) {
	buf := &ast.Buffer{Selbris: []ast.Selbri{{Kind: ast.SelbriRoot, Word: "mystery"}}}
	c := New(stubDict{})
	if got := c.Arity(buf, 0); got != defaultArity {
		t.Fatalf("Arity() = %d, want default %d", got, defaultArity)
	}
}

func TestArityOutOfRangeIsDefensive(t *testing.T) {
	buf := &ast.Buffer{}
	c := New(stubDict{})
	if got := c.Arity(buf, 42); got != defaultArity {
		t.Fatalf("Arity() = %d, want default %d for an out-of-range id", got, defaultArity)
	}
}

func TestHeadNameCompoundFallsBackToEntity(t *testing.T) {
	buf := &ast.Buffer{Selbris: []ast.Selbri{{Kind: ast.SelbriCompound, Words: nil}}}
	c := New(stubDict{})
	if got := c.HeadName(buf, 0); got != "entity" {
		t.Fatalf("HeadName() = %q, want %q", got, "entity")
	}
}
