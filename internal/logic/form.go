// Package logic defines the compiler's output IR: an immutable tree of
// first-order logic formulas plus its s-expression wire encoding for the
// reasoning bridge.
package logic

import "github.com/lojban/nesy/internal/interner"

// TermKind discriminates the LogicalTerm variant set.
type TermKind int

const (
	Variable TermKind = iota
	Constant
	Description
	Unspecified
)

// Term is one argument slot of a Predicate: a variable, a constant, a
// description, or the distinguished "unfilled" placeholder (Zoe in the
// wire format).
type Term struct {
	Kind   TermKind
	Handle interner.Handle // meaningless when Kind == Unspecified
}

// Var builds a Variable term.
func Var(h interner.Handle) Term { return Term{Kind: Variable, Handle: h} }

// Const builds a Constant term.
func Const(h interner.Handle) Term { return Term{Kind: Constant, Handle: h} }

// Desc builds a Description term.
func Desc(h interner.Handle) Term { return Term{Kind: Description, Handle: h} }

// Unfilled is the single Unspecified term value.
var Unfilled = Term{Kind: Unspecified}

// FormKind discriminates the LogicalForm variant set.
type FormKind int

const (
	FormPredicate FormKind = iota
	FormAnd
	FormOr
	FormNot
	FormExists
	FormForAll
)

// Form is an immutable FOL formula node. Like Selbri/Sumti, only the fields
// relevant to Kind are populated; Form trees are built bottom-up and never
// mutated once constructed — they are self-contained and outlive the AST
// they were compiled from.
type Form struct {
	Kind FormKind

	Relation interner.Handle // Predicate
	Args     []Term          // Predicate

	Left  *Form // And, Or
	Right *Form // And, Or

	Inner *Form // Not

	QVar interner.Handle // Exists, ForAll
	Body *Form           // Exists, ForAll
}

// Predicate builds a Predicate form. Callers are responsible for arity
// correctness (invariant I1); see semantics.Arity.
func Predicate(relation interner.Handle, args []Term) *Form {
	return &Form{Kind: FormPredicate, Relation: relation, Args: args}
}

// And builds a conjunction.
func And(l, r *Form) *Form { return &Form{Kind: FormAnd, Left: l, Right: r} }

// Or builds a disjunction.
func Or(l, r *Form) *Form { return &Form{Kind: FormOr, Left: l, Right: r} }

// Not builds a negation.
func Not(inner *Form) *Form { return &Form{Kind: FormNot, Inner: inner} }

// Exists builds an existential quantifier binding v over body.
func Exists(v interner.Handle, body *Form) *Form {
	return &Form{Kind: FormExists, QVar: v, Body: body}
}

// ForAll builds a universal quantifier binding v over body.
func ForAll(v interner.Handle, body *Form) *Form {
	return &Form{Kind: FormForAll, QVar: v, Body: body}
}

// IsUnspecifiedArg0 reports whether this is a Predicate whose first argument
// is the Unspecified placeholder, i.e. a candidate for variable injection
// from an enclosing relative clause.
func (f *Form) IsUnspecifiedArg0() bool {
	return f.Kind == FormPredicate && len(f.Args) > 0 && f.Args[0].Kind == Unspecified
}
