package interner

import "testing"

func TestInternIsFirstUseWins(t *testing.T) {
	it := New()
	h1 := it.Intern("klama")
	h2 := it.Intern("klama")
	if h1 != h2 {
		t.Fatalf("Intern() returned different handles for the same string: %v, %v", h1, h2)
	}
	if it.Resolve(h1) != "klama" {
		t.Fatalf("Resolve() = %q, want %q", it.Resolve(h1), "klama")
	}
}

func TestInternDistinctStringsGetDistinctHandles(t *testing.T) {
	it := New()
	h1 := it.Intern("klama")
	h2 := it.Intern("zarci")
	if h1 == h2 {
		t.Fatal("Intern() returned the same handle for distinct strings")
	}
	if it.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", it.Len())
	}
}
