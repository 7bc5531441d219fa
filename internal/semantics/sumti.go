package semantics

import (
	"github.com/lojban/nesy/internal/ast"
	"github.com/lojban/nesy/internal/interner"
	"github.com/lojban/nesy/internal/logic"
)

// QuantifierEntry is a pending existential quantifier contributed by
// resolving a lo-gadri description sumti. The bridi (or WithArgs) compiler
// that collected it is responsible for wrapping the final form with
// Exists(Var, ...).
type QuantifierEntry struct {
	Var        interner.Handle
	DescID     ast.SelbriID
	Restrictor *logic.Form // nil unless a relative clause attached (§4.2 Restricted)
}

// bareVariables is the fixed set of Lojban bare logical variables: they
// resolve to a LogicalTerm Variable with no contributed quantifier,
// because their binder is whatever ForAll/Exists already encloses them in
// the surrounding discourse.
var bareVariables = map[string]bool{"da": true, "de": true, "di": true}

// resolveSumti converts the sumti at id to a logical term and zero or more
// quantifier entries it contributed.
func (c *Compiler) resolveSumti(buf *ast.Buffer, id ast.SumtiID) (logic.Term, []QuantifierEntry) {
	if !buf.SumtiInRange(id) {
		return logic.Unfilled, nil
	}
	node := buf.Sumti(id)
	switch node.Kind {
	case ast.SumtiProSumti:
		if bareVariables[node.Word] {
			return logic.Var(c.Interner.Intern(node.Word)), nil
		}
		return logic.Const(c.Interner.Intern(node.Word)), nil

	case ast.SumtiName:
		return logic.Const(c.Interner.Intern(node.Word)), nil

	case ast.SumtiQuotedLiteral:
		return logic.Const(c.Interner.Intern(node.Text)), nil

	case ast.SumtiUnspecified:
		return logic.Unfilled, nil

	case ast.SumtiDescription:
		switch node.DescGadri {
		case ast.LO:
			v := c.freshVar()
			return logic.Var(v), []QuantifierEntry{{Var: v, DescID: node.DescID}}
		default: // LE, LA
			return logic.Desc(c.Interner.Intern(c.HeadName(buf, node.DescID))), nil
		}

	case ast.SumtiTagged:
		// Place-tag consumption is the bridi's responsibility, not resolve's.
		return c.resolveSumti(buf, node.InnerID)

	case ast.SumtiRestricted:
		term, quants := c.resolveSumti(buf, node.InnerID)
		body := c.CompileBridi(buf, node.BodySentenceID)
		if len(quants) == 0 {
			// A relative clause on a ProSumti/Name
			// has no quantifier to attach to; the restrictor is dropped.
			return term, quants
		}
		last := len(quants) - 1
		quants[last].Restrictor = injectVariable(body, quants[last].Var)
		return term, quants

	default:
		return logic.Unfilled, nil
	}
}

// injectVariable replaces the first-position Unspecified argument of a
// Predicate with Variable(v), so a relative clause "poi P(...)" binds its
// subject to the head noun's variable. It never mutates its input — Form
// trees are immutable — and returns a new tree sharing unaffected subtrees
// structurally.
func injectVariable(form *logic.Form, v interner.Handle) *logic.Form {
	switch form.Kind {
	case logic.FormPredicate:
		args := form.Args
		switch {
		case len(args) == 0:
			args = []logic.Term{logic.Var(v)}
		case args[0].Kind == logic.Unspecified:
			args = append([]logic.Term{logic.Var(v)}, args[1:]...)
		default:
			return form
		}
		return logic.Predicate(form.Relation, args)

	case logic.FormAnd:
		return logic.And(injectVariable(form.Left, v), injectVariable(form.Right, v))

	case logic.FormNot:
		return logic.Not(injectVariable(form.Inner, v))

	default:
		// Or, Exists, ForAll: injection does not descend under quantifiers
		// or disjunction.
		return form
	}
}
