// Package preprocessor resolves the metalinguistic erasure/quotation
// cmavo (si/sa/su/zo/zoi) into a normalized token stream. Like
// internal/lexer, this is kept minimal.
package preprocessor

import "github.com/lojban/nesy/internal/lexer"

// Normalized is one resolved token: either a pass-through classified
// lexer.Token or a quoted literal produced by zo/zoi resolution.
type Normalized struct {
	Token   lexer.Token
	IsQuote bool
	Quote   string
}

// Preprocess consumes raw tokens left-to-right, applying:
//   - si: erase the immediately preceding token.
//   - sa: erase back to (and including) the nearest preceding cmavo that
//     starts the current construct; approximated here as "erase the
//     previous token", matching si, since scope recovery is outside the
//     fragment this engine covers.
//   - su: erase the entire utterance constructed so far.
//   - zo: quote exactly the single following token.
//   - zoi: quote every token up to (not including) a repeated delimiter
//     token, consuming both delimiter occurrences.
func Preprocess(tokens []lexer.Token) []Normalized {
	var out []Normalized
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch {
		case t.Class == lexer.Cmavo && t.Text == "si":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case t.Class == lexer.Cmavo && t.Text == "sa":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case t.Class == lexer.Cmavo && t.Text == "su":
			out = out[:0]
		case t.Class == lexer.Cmavo && t.Text == "zo":
			if i+1 < len(tokens) {
				i++
				out = append(out, Normalized{IsQuote: true, Quote: tokens[i].Text})
			}
		case t.Class == lexer.Cmavo && t.Text == "zoi":
			if i+1 < len(tokens) {
				delim := tokens[i+1].Text
				j := i + 2
				var quoted []string
				for j < len(tokens) && tokens[j].Text != delim {
					quoted = append(quoted, tokens[j].Text)
					j++
				}
				out = append(out, Normalized{IsQuote: true, Quote: joinWords(quoted)})
				i = j // leave the closing delimiter consumed
			}
		default:
			out = append(out, Normalized{Token: t})
		}
	}
	return out
}

func joinWords(words []string) string {
	s := ""
	for i, w := range words {
		if i > 0 {
			s += " "
		}
		s += w
	}
	return s
}
