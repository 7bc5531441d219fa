package ast

import (
	"github.com/lojban/nesy/internal/lexer"
	"github.com/lojban/nesy/internal/preprocessor"
)

// Builder assembles a Buffer from a normalized token stream. This is a
// pragmatic recursive-descent parser over the fragment of Lojban grammar
// the rest of this module exercises, not a complete grammar.
type Builder struct {
	buf *Buffer
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{buf: &Buffer{}}
}

var convTags = map[string]Conversion{"se": SE, "te": TE, "ve": VE, "xe": XE}
var connectives = map[string]Connective{"je": JE, "ja": JA, "jo": JO, "ju": JU}
var placeTags = map[string]PlaceTag{"fa": FA, "fe": FE, "fi": FI, "fo": FO, "fu": FU}
var proSumti = map[string]bool{"mi": true, "do": true, "ti": true, "ta": true, "tu": true, "da": true, "de": true, "di": true}
var gadriWords = map[string]Gadri{"lo": LO, "le": LE, "la": LA}

// Build lexes, preprocesses, and parses input into a single-sentence
// Buffer, the unit the REPL operates on one line at a time.
func Build(input string) (*Buffer, error) {
	tokens := lexer.Tokenize(input)
	norm := preprocessor.Preprocess(tokens)

	b := NewBuilder()
	if err := b.parseSentence(norm); err != nil {
		return nil, err
	}
	return b.buf, nil
}

type cursor struct {
	toks []preprocessor.Normalized
	pos  int
}

func (c *cursor) peek() (preprocessor.Normalized, bool) {
	if c.pos >= len(c.toks) {
		return preprocessor.Normalized{}, false
	}
	return c.toks[c.pos], true
}

func (c *cursor) next() (preprocessor.Normalized, bool) {
	t, ok := c.peek()
	if ok {
		c.pos++
	}
	return t, ok
}

func (c *cursor) word() (string, bool) {
	t, ok := c.peek()
	if !ok || t.IsQuote {
		return "", false
	}
	return t.Token.Text, true
}

func (b *Builder) addSelbri(s Selbri) SelbriID {
	id := SelbriID(len(b.buf.Selbris))
	b.buf.Selbris = append(b.buf.Selbris, s)
	return id
}

func (b *Builder) addSumti(s Sumti) SumtiID {
	id := SumtiID(len(b.buf.Sumtis))
	b.buf.Sumtis = append(b.buf.Sumtis, s)
	return id
}

func (b *Builder) addSentence(s Sentence) SentenceID {
	id := SentenceID(len(b.buf.Sentences))
	b.buf.Sentences = append(b.buf.Sentences, s)
	return id
}

// parseSentence implements: sumti* [cu] [na] selbri sumti*
func (b *Builder) parseSentence(toks []preprocessor.Normalized) error {
	cur := &cursor{toks: toks}

	var head []SumtiID
	for {
		w, ok := cur.word()
		if !ok || isSelbriStart(w) {
			break
		}
		if w == "cu" {
			cur.next()
			break
		}
		id, consumed := b.parseSumti(cur)
		if !consumed {
			break
		}
		head = append(head, id)
	}

	negated := false
	if w, ok := cur.word(); ok && w == "na" {
		negated = true
		cur.next()
	}

	relation, ok := b.parseSelbri(cur)
	if !ok {
		// No selbri found: nothing to compile. Empty sentence list is a
		// legitimate (if useless) AstBuffer.
		return nil
	}

	var tail []SumtiID
	for {
		id, consumed := b.parseSumti(cur)
		if !consumed {
			break
		}
		tail = append(tail, id)
	}

	id := b.addSentence(Sentence{Relation: relation, HeadTerms: head, TailTerms: tail, Negated: negated})
	b.buf.TopSentences = append(b.buf.TopSentences, id)
	return nil
}

func isSelbriStart(w string) bool {
	if _, ok := convTags[w]; ok {
		return true
	}
	return w == "na" || w == "na'e" || w == "ke"
}

// parseSumti consumes one sumti (optionally place-tagged, optionally
// relative-clause-restricted) and reports whether it consumed anything.
func (b *Builder) parseSumti(cur *cursor) (SumtiID, bool) {
	t, ok := cur.peek()
	if !ok {
		return 0, false
	}
	if t.IsQuote {
		cur.next()
		return b.addSumti(Sumti{Kind: SumtiQuotedLiteral, Text: t.Quote}), true
	}

	w := t.Token.Text

	if w == "ro" {
		// Universal quantification over the sumti that follows. This fragment
		// has no separate quantifier-scope representation, so "ro" is
		// consumed and dropped rather than folded into whatever comes next:
		// "ro da" parses the same as bare "da".
		cur.next()
		return b.parseSumti(cur)
	}

	if tag, isTag := placeTags[w]; isTag {
		cur.next()
		inner, consumed := b.parseSumti(cur)
		if !consumed {
			return 0, false
		}
		return b.addSumti(Sumti{Kind: SumtiTagged, Tag: tag, InnerID: inner}), true
	}

	var baseID SumtiID
	switch {
	case proSumti[w]:
		cur.next()
		baseID = b.addSumti(Sumti{Kind: SumtiProSumti, Word: w})

	case t.Token.Class == lexer.Name:
		cur.next()
		baseID = b.addSumti(Sumti{Kind: SumtiName, Word: w})

	case gadriWords[w] != 0 || w == "lo":
		gadri := gadriWords[w]
		cur.next()
		descID, descOK := b.parseSelbri(cur)
		if !descOK {
			return 0, false
		}
		baseID = b.addSumti(Sumti{Kind: SumtiDescription, DescGadri: gadri, DescID: descID})

	default:
		return 0, false
	}

	if w2, ok := cur.word(); ok && w2 == "poi" {
		cur.next()
		bodyID, ok := b.parseRelativeClauseBody(cur)
		if ok {
			baseID = b.addSumti(Sumti{Kind: SumtiRestricted, InnerID: baseID, BodySentenceID: bodyID})
		}
	}

	return baseID, true
}

// parseRelativeClauseBody parses a "poi <selbri>" tail into a synthetic
// one-place bridi whose subject is left Unspecified — injectVariable
// (internal/semantics) fills it in with the head noun's variable.
func (b *Builder) parseRelativeClauseBody(cur *cursor) (SentenceID, bool) {
	relation, ok := b.parseSelbri(cur)
	if !ok {
		return 0, false
	}
	subj := b.addSumti(Sumti{Kind: SumtiUnspecified})
	return b.addSentence(Sentence{Relation: relation, HeadTerms: []SumtiID{subj}}), true
}

// parseSelbri implements: (conversion | na'e) selbri | ke selbri [kei] | word-chain [connective word-chain] [be bound-sumti (bei bound-sumti)* [be'o]]
func (b *Builder) parseSelbri(cur *cursor) (SelbriID, bool) {
	w, ok := cur.word()
	if !ok {
		return 0, false
	}

	if tag, isConv := convTags[w]; isConv {
		cur.next()
		inner, innerOK := b.parseSelbri(cur)
		if !innerOK {
			return 0, false
		}
		return b.addSelbri(Selbri{Kind: SelbriConverted, Tag: tag, InnerID: inner}), true
	}

	if w == "na'e" {
		cur.next()
		inner, innerOK := b.parseSelbri(cur)
		if !innerOK {
			return 0, false
		}
		return b.addSelbri(Selbri{Kind: SelbriNegated, InnerID: inner}), true
	}

	if w == "ke" {
		cur.next()
		inner, innerOK := b.parseSelbri(cur)
		if !innerOK {
			return 0, false
		}
		if w2, ok := cur.word(); ok && w2 == "kei" {
			cur.next()
		}
		return b.addSelbri(Selbri{Kind: SelbriGrouped, InnerID: inner}), true
	}

	words, ok := b.parseWordChain(cur)
	if !ok {
		return 0, false
	}
	node := b.chainToSelbri(words)

	if connW, ok := cur.word(); ok {
		if conn, isConn := connectives[connW]; isConn {
			cur.next()
			rightWords, rok := b.parseWordChain(cur)
			if rok {
				right := b.chainToSelbri(rightWords)
				node = b.addSelbri(Selbri{Kind: SelbriConnected, LeftID: node, Conn: conn, RightID: right})
			}
		}
	}

	if w2, ok := cur.word(); ok && w2 == "be" {
		cur.next()
		var bound []SumtiID
		for {
			id, consumed := b.parseSumti(cur)
			if !consumed {
				break
			}
			bound = append(bound, id)
			if w3, ok := cur.word(); ok && w3 == "bei" {
				cur.next()
				continue
			}
			break
		}
		if w3, ok := cur.word(); ok && w3 == "be'o" {
			cur.next()
		}
		node = b.addSelbri(Selbri{Kind: SelbriWithArgs, CoreID: node, BoundSumtiIDs: bound})
	}

	return node, true
}

// parseWordChain consumes a run of bare gismu-shaped words, stopping at any
// recognized cmavo (sumti introducer, connective, "be", "cu", etc.).
func (b *Builder) parseWordChain(cur *cursor) ([]string, bool) {
	var words []string
	for {
		w, ok := cur.word()
		if !ok || isStopWord(w) {
			break
		}
		words = append(words, w)
		cur.next()
	}
	if len(words) == 0 {
		return nil, false
	}
	return words, true
}

func isStopWord(w string) bool {
	if w == "cu" || w == "be" || w == "bei" || w == "be'o" || w == "poi" || w == "na" || w == "ro" || w == "na'e" || w == "ke" || w == "kei" {
		return true
	}
	if proSumti[w] {
		return true
	}
	if _, ok := gadriWords[w]; ok {
		return true
	}
	if _, ok := connectives[w]; ok {
		return true
	}
	if _, ok := placeTags[w]; ok {
		return true
	}
	return false
}

// chainToSelbri folds a run of words into a left-to-right Tanru chain: the
// last word is the structural head, everything before it modifies the
// result of folding the remainder — the right-hand term is always the head.
func (b *Builder) chainToSelbri(words []string) SelbriID {
	if len(words) == 1 {
		return b.addSelbri(Selbri{Kind: SelbriRoot, Word: words[0]})
	}
	head := b.addSelbri(Selbri{Kind: SelbriRoot, Word: words[len(words)-1]})
	for i := len(words) - 2; i >= 0; i-- {
		mod := b.addSelbri(Selbri{Kind: SelbriRoot, Word: words[i]})
		head = b.addSelbri(Selbri{Kind: SelbriTanru, ModifierID: mod, HeadID: head})
	}
	return head
}
