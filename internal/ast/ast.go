// Package ast defines the flat arena buffer the semantic compiler consumes.
//
// A Buffer is produced by the lexer/preprocessor/parser pipeline and is
// never mutated by the compiler. Nodes reference each other by index into
// the three parallel arenas below rather than by pointer, so the structure
// is a DAG over plain integers — the compiler walks it as a tree and
// compiles a shared node independently every time it is reached; no
// memoization is needed for correctness, only for avoiding repeated work.
package ast

// Gadri names the article introducing a Description sumti.
type Gadri int

const (
	LO Gadri = iota // existential: lo
	LE              // specific definite: le
	LA              // name-making: la
)

// Conversion names an SE-family selbri place-permutation tag.
type Conversion int

const (
	SE Conversion = iota // swap x1<->x2
	TE                   // swap x1<->x3
	VE                   // swap x1<->x4
	XE                   // swap x1<->x5
)

// Connective names a selbri-level logical connective.
type Connective int

const (
	JE Connective = iota // and
	JA                   // or
	JO                   // iff
	JU                   // xor
)

// PlaceTag names an explicit argument-place tag (fa/fe/fi/fo/fu).
type PlaceTag int

const (
	FA PlaceTag = iota // x1
	FE                 // x2
	FI                 // x3
	FO                 // x4
	FU                 // x5
)

// Index returns the zero-based argument position this tag names.
func (t PlaceTag) Index() int { return int(t) }

// SelbriID indexes into a Buffer's Selbris arena.
type SelbriID int

// SumtiID indexes into a Buffer's Sumtis arena.
type SumtiID int

// SentenceID indexes into a Buffer's Sentences arena.
type SentenceID int

// Selbri is the relation term of a bridi. Exactly one field group is valid
// per Kind; callers switch on Kind rather than checking for zero values,
// since zero is a legitimate SelbriID/word.
type Selbri struct {
	Kind SelbriKind

	Word string // Root

	ModifierID SelbriID // Tanru
	HeadID     SelbriID // Tanru

	Tag     Conversion // Converted
	InnerID SelbriID   // Converted, Negated, Grouped

	CoreID        SelbriID  // WithArgs
	BoundSumtiIDs []SumtiID // WithArgs

	LeftID SelbriID   // Connected
	Conn   Connective // Connected
	RightID SelbriID  // Connected

	Words []string // Compound
}

// SelbriKind discriminates the Selbri variant set.
type SelbriKind int

const (
	SelbriRoot SelbriKind = iota
	SelbriTanru
	SelbriConverted
	SelbriNegated
	SelbriGrouped
	SelbriWithArgs
	SelbriConnected
	SelbriCompound
)

// Sumti is an argument term: pronoun, name, description, quoted literal, or
// a tagged/restricted variant wrapping an inner sumti.
type Sumti struct {
	Kind SumtiKind

	Word string // ProSumti, Name

	DescGadri Gadri    // Description
	DescID    SelbriID // Description

	Tag       PlaceTag // Tagged
	InnerID   SumtiID  // Tagged, Restricted

	BodySentenceID SentenceID // Restricted

	Text string // QuotedLiteral
}

// SumtiKind discriminates the Sumti variant set.
type SumtiKind int

const (
	SumtiProSumti SumtiKind = iota
	SumtiName
	SumtiDescription
	SumtiTagged
	SumtiRestricted
	SumtiQuotedLiteral
	SumtiUnspecified
)

// Sentence is one bridi: a relation plus ordered head/tail argument terms.
type Sentence struct {
	Relation  SelbriID
	HeadTerms []SumtiID
	TailTerms []SumtiID
	Negated   bool
}

// Buffer is the flat arena the AST builder produces and the compiler reads.
// It is never mutated after construction.
type Buffer struct {
	Selbris   []Selbri
	Sumtis    []Sumti
	Sentences []Sentence

	// TopSentences holds the ids of sentences that are independent bridi in
	// their own right, in parse order. A poi relative clause builds its own
	// synthetic Sentence (see Sumti.BodySentenceID) in the same Sentences
	// arena, but that sentence is only ever reached through its restricted
	// sumti, never on its own — it has no entry here.
	TopSentences []SentenceID
}

// Selbri returns the node at id. Out-of-range ids are a structural anomaly;
// callers that index defensively should check InRange first.
func (b *Buffer) Selbri(id SelbriID) Selbri { return b.Selbris[id] }

// Sumti returns the node at id.
func (b *Buffer) Sumti(id SumtiID) Sumti { return b.Sumtis[id] }

// Sentence returns the node at id.
func (b *Buffer) Sentence(id SentenceID) Sentence { return b.Sentences[id] }

// SelbriInRange reports whether id is a valid index into Selbris.
func (b *Buffer) SelbriInRange(id SelbriID) bool {
	return id >= 0 && int(id) < len(b.Selbris)
}

// SumtiInRange reports whether id is a valid index into Sumtis.
func (b *Buffer) SumtiInRange(id SumtiID) bool {
	return id >= 0 && int(id) < len(b.Sumtis)
}
