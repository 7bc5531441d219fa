// Package semantics is the semantic compiler: it translates a Lojban bridi
// AST (internal/ast) into a closed first-order logic formula
// (internal/logic), threading a symbol interner and fresh-variable counter
// across an entire utterance batch.
//
// This is where the hard engineering lives — intersective tanru, SE-family
// place conversion, lo-gadri existential descriptions with relative-clause
// restrictors, be/bei argument binding, je/ja/jo/ju connectives,
// fa/fe/fi/fo/fu place tags, and negation all live here. It is a pure
// function of its inputs: no I/O, no logging, no locking, no suspension
// points — single-threaded and synchronous by construction.
package semantics

import (
	"fmt"

	"github.com/lojban/nesy/internal/ast"
	"github.com/lojban/nesy/internal/interner"
	"github.com/lojban/nesy/internal/logic"
)

// Dictionary supplies word arities to the compiler. The real implementation
// (internal/dictionary) is populated once at startup from XML; tests can
// substitute a map-backed stub.
type Dictionary interface {
	// Arity returns the declared argument-place count for word, defaulting
	// to 2 when word is unknown.
	Arity(word string) int
}

// Compiler owns an interner and a monotonic fresh-variable counter. Create
// one per reasoning session; it is mutated only by CompileBridi,
// CompileBuffer and ApplySelbri.
type Compiler struct {
	Interner   *interner.Interner
	dict       Dictionary
	varCounter int
}

// New returns a Compiler backed by dict. dict must outlive the Compiler.
func New(dict Dictionary) *Compiler {
	return &Compiler{
		Interner: interner.New(),
		dict:     dict,
	}
}

// freshVar allocates and interns the next "_vN" variable name. The counter
// never decreases, so fresh variables stay pairwise distinct across an
// utterance.
func (c *Compiler) freshVar() interner.Handle {
	name := fmt.Sprintf("_v%d", c.varCounter)
	c.varCounter++
	return c.Interner.Intern(name)
}

// CompileBuffer compiles every top-level sentence in buf in order, returning
// one LogicalForm per sentence. A poi relative clause's synthetic body
// sentence lives in the same buffer but is not top-level: it is reached
// (and compiled) only through its restricted sumti's Restrictor, via
// resolveSumti, never as an independent root here. The var counter and
// interner are shared and threaded across the whole call.
func (c *Compiler) CompileBuffer(buf *ast.Buffer) []*logic.Form {
	forms := make([]*logic.Form, len(buf.TopSentences))
	for i, id := range buf.TopSentences {
		forms[i] = c.CompileBridi(buf, id)
	}
	return forms
}
