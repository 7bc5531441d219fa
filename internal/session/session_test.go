package session

import (
	"context"
	"testing"

	"github.com/lojban/nesy/internal/dictionary"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(dictionary.New(), 10, nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s
}

func TestAssertThenQueryExact(t *testing.T) {
	s := newTestSession(t)

	if err := s.Assert("la .bob. cu barda"); err != nil {
		t.Fatalf("Assert() error: %v", err)
	}

	ok, err := s.Query(context.Background(), "la .bob. cu barda")
	if err != nil {
		t.Fatalf("Query() error: %v", err)
	}
	if !ok {
		t.Fatal("Query() = false, want true for an exactly-asserted utterance")
	}
}

func TestQueryUnassertedIsFalse(t *testing.T) {
	s := newTestSession(t)

	ok, err := s.Query(context.Background(), "la .bob. cu barda")
	if err != nil {
		t.Fatalf("Query() error: %v", err)
	}
	if ok {
		t.Fatal("Query() = true, want false for an utterance never asserted")
	}
}

func TestConnectiveConjunctionQueriesEachConjunct(t *testing.T) {
	s := newTestSession(t)

	if err := s.Assert("la .bob. cu barda je sutra"); err != nil {
		t.Fatalf("Assert() error: %v", err)
	}

	ctx := context.Background()
	if ok, err := s.Query(ctx, "la .bob. cu barda"); err != nil || !ok {
		t.Fatalf("Query(barda) = %v, %v; want true, nil", ok, err)
	}
	if ok, err := s.Query(ctx, "la .bob. cu sutra"); err != nil || !ok {
		t.Fatalf("Query(sutra) = %v, %v; want true, nil", ok, err)
	}
}

func TestSeConversionMatchesUnconvertedAssertion(t *testing.T) {
	s := newTestSession(t)

	if err := s.Assert("mi klama lo zarci"); err != nil {
		t.Fatalf("Assert() error: %v", err)
	}

	ok, err := s.Query(context.Background(), "se klama fa lo zarci fe mi")
	if err != nil {
		t.Fatalf("Query() error: %v", err)
	}
	if !ok {
		t.Fatal("Query() = false, want true: se klama swaps x1/x2 back to the asserted order")
	}
}
