package semantics

import (
	"github.com/lojban/nesy/internal/ast"
	"github.com/lojban/nesy/internal/logic"
)

// ApplySelbri instantiates the selbri at id against a pre-computed argument
// vector of length equal to its arity. The compiler threads buf through
// every recursive call.
func (c *Compiler) ApplySelbri(buf *ast.Buffer, id ast.SelbriID, args []logic.Term) *logic.Form {
	if !buf.SelbriInRange(id) {
		return logic.Predicate(c.Interner.Intern("entity"), args)
	}
	node := buf.Selbri(id)
	switch node.Kind {
	case ast.SelbriRoot:
		return logic.Predicate(c.Interner.Intern(node.Word), args)

	case ast.SelbriTanru:
		// Intersective: both sides share the same argument vector.
		return logic.And(
			c.ApplySelbri(buf, node.ModifierID, args),
			c.ApplySelbri(buf, node.HeadID, args),
		)

	case ast.SelbriConverted:
		return c.ApplySelbri(buf, node.InnerID, convert(node.Tag, args))

	case ast.SelbriNegated:
		return logic.Not(c.ApplySelbri(buf, node.InnerID, args))

	case ast.SelbriGrouped:
		return c.ApplySelbri(buf, node.InnerID, args) // transparent

	case ast.SelbriConnected:
		left := c.ApplySelbri(buf, node.LeftID, args)
		right := c.ApplySelbri(buf, node.RightID, args)
		return applyConnective(node.Conn, left, right)

	case ast.SelbriCompound:
		head := "entity"
		if len(node.Words) > 0 {
			head = node.Words[len(node.Words)-1]
		}
		return logic.Predicate(c.Interner.Intern(head), args)

	case ast.SelbriWithArgs:
		return c.applyWithArgs(buf, node, args)

	default:
		return logic.Predicate(c.Interner.Intern("entity"), args)
	}
}

// convert swaps position 0 with the position named by tag on a copy of
// args. Swaps apply only when the target index exists (arity-safe); an
// out-of-range swap is a no-op.
func convert(tag ast.Conversion, args []logic.Term) []logic.Term {
	idx := map[ast.Conversion]int{ast.SE: 1, ast.TE: 2, ast.VE: 3, ast.XE: 4}[tag]
	if idx >= len(args) {
		return args
	}
	out := append([]logic.Term(nil), args...)
	out[0], out[idx] = out[idx], out[0]
	return out
}

// applyConnective implements the JE/JA/JO/JU connective table. left and
// right are already-applied forms sharing the same argument vector.
func applyConnective(conn ast.Connective, left, right *logic.Form) *logic.Form {
	switch conn {
	case ast.JE:
		return logic.And(left, right)
	case ast.JA:
		return logic.Or(left, right)
	case ast.JO:
		// Material biconditional.
		return logic.And(
			logic.Or(logic.Not(left), right),
			logic.Or(logic.Not(right), left),
		)
	case ast.JU:
		// Exclusive or.
		return logic.And(
			logic.Or(left, right),
			logic.Not(logic.And(left, right)),
		)
	default:
		return logic.And(left, right)
	}
}

// applyWithArgs implements be/bei argument binding.
func (c *Compiler) applyWithArgs(buf *ast.Buffer, node ast.Selbri, outerArgs []logic.Term) *logic.Form {
	coreArity := c.Arity(buf, node.CoreID)

	merged := make([]logic.Term, 0, coreArity)

	// Position 0 (x1) comes from outer context.
	if len(outerArgs) > 0 {
		merged = append(merged, outerArgs[0])
	} else {
		merged = append(merged, logic.Unfilled)
	}

	var quants []QuantifierEntry
	for _, sumtiID := range node.BoundSumtiIDs {
		term, qs := c.resolveSumti(buf, sumtiID)
		merged = append(merged, term)
		quants = append(quants, qs...)
	}

	// Remaining positions: extend from outer context past the bound region,
	// else pad with Unspecified.
	for len(merged) < coreArity {
		i := len(merged)
		if i < len(outerArgs) {
			merged = append(merged, outerArgs[i])
		} else {
			merged = append(merged, logic.Unfilled)
		}
	}
	if len(merged) > coreArity {
		merged = merged[:coreArity]
	}

	body := c.ApplySelbri(buf, node.CoreID, merged)

	// Quantifiers generated while resolving bound sumti are scoped around
	// the WithArgs expression, innermost last — not the surrounding bridi.
	for i := len(quants) - 1; i >= 0; i-- {
		body = wrapQuantifier(c, buf, quants[i], body)
	}
	return body
}
