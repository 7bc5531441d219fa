package lexer

import "testing"

func TestTokenizeClassifiesCmavoGismuAndNames(t *testing.T) {
	tokens := Tokenize("mi klama lo zarci la .bob.")
	want := []Token{
		{Class: Cmavo, Text: "mi"},
		{Class: Gismu, Text: "klama"},
		{Class: Cmavo, Text: "lo"},
		{Class: Gismu, Text: "zarci"},
		{Class: Cmavo, Text: "la"},
		{Class: Name, Text: "bob"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("Tokenize() returned %d tokens, want %d: %+v", len(tokens), len(want), tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, tokens[i], want[i])
		}
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	if tokens := Tokenize("   "); len(tokens) != 0 {
		t.Fatalf("Tokenize() of blank input = %+v, want empty", tokens)
	}
}
