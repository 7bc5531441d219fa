// Package lexer classifies raw Lojban input into a token stream. It is a
// minimal, good-faith tokenizer rather than a full morphological analyzer.
package lexer

import "strings"

// Class names the lexical category of a Token.
type Class int

const (
	Gismu Class = iota
	Cmavo
	Name
	QuotedLiteral
)

// Token is one classified word from the input stream.
type Token struct {
	Class Class
	Text  string
}

// cmavo is the closed set of grammatical particles this fragment recognizes.
// Anything not in this set and not name-shaped (set off by a leading or
// trailing '.') is treated as a gismu.
var cmavo = map[string]bool{
	"mi": true, "do": true, "ti": true, "ta": true, "tu": true,
	"lo": true, "le": true, "la": true,
	"se": true, "te": true, "ve": true, "xe": true,
	"na": true, "na'e": true, "cu": true,
	"je": true, "ja": true, "jo": true, "ju": true,
	"fa": true, "fe": true, "fi": true, "fo": true, "fu": true,
	"be": true, "bei": true, "bo": true,
	"poi": true, "noi": true, "ke": true, "kei": true,
	"da": true, "de": true, "di": true,
	"si": true, "sa": true, "su": true, "zo": true, "zoi": true,
	"ro": true,
}

// Tokenize splits input on whitespace and classifies each word. Quoted
// spans introduced by zo/zoi are left for the preprocessor to resolve;
// Tokenize only classifies the introducer cmavo here.
func Tokenize(input string) []Token {
	fields := strings.Fields(input)
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, classify(f))
	}
	return tokens
}

func classify(word string) Token {
	bare := strings.Trim(word, ".")
	if cmavo[bare] {
		return Token{Class: Cmavo, Text: bare}
	}
	if strings.HasPrefix(word, ".") || strings.HasSuffix(word, ".") {
		return Token{Class: Name, Text: bare}
	}
	return Token{Class: Gismu, Text: bare}
}
