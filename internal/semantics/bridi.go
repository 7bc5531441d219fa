package semantics

import (
	"github.com/lojban/nesy/internal/ast"
	"github.com/lojban/nesy/internal/logic"
)

var placeTagIndex = map[ast.PlaceTag]int{
	ast.FA: 0, ast.FE: 1, ast.FI: 2, ast.FO: 3, ast.FU: 4,
}

// CompileBridi is the semantic compiler's entry point. It produces one
// top-level LogicalForm for the bridi at id.
func (c *Compiler) CompileBridi(buf *ast.Buffer, id ast.SentenceID) *logic.Form {
	bridi := buf.Sentence(id)

	// 1. Arity lookup.
	n := c.Arity(buf, bridi.Relation)

	// 2. Place assignment.
	positioned := make([]logic.Term, n)
	present := make([]bool, n)
	var untagged []logic.Term
	var quants []QuantifierEntry

	assignTerm := func(sumtiID ast.SumtiID) {
		if !buf.SumtiInRange(sumtiID) {
			return
		}
		node := buf.Sumti(sumtiID)
		if node.Kind == ast.SumtiTagged {
			term, qs := c.resolveSumti(buf, node.InnerID)
			quants = append(quants, qs...)
			idx := placeTagIndex[node.Tag]
			if idx < n {
				// Later tagged terms with the same tag overwrite earlier ones.
				positioned[idx] = term
				present[idx] = true
			}
			// idx >= n: a place tag with no corresponding place is dropped.
			return
		}
		term, qs := c.resolveSumti(buf, sumtiID)
		quants = append(quants, qs...)
		untagged = append(untagged, term)
	}

	for _, sumtiID := range bridi.HeadTerms {
		assignTerm(sumtiID)
	}
	for _, sumtiID := range bridi.TailTerms {
		assignTerm(sumtiID)
	}

	// Merge: tagged value if present, else next untagged, else Unspecified.
	args := make([]logic.Term, n)
	next := 0
	for i := 0; i < n; i++ {
		switch {
		case present[i]:
			args[i] = positioned[i]
		case next < len(untagged):
			args[i] = untagged[next]
			next++
		default:
			args[i] = logic.Unfilled
		}
	}

	// 3. Relation assembly.
	form := c.ApplySelbri(buf, bridi.Relation, args)

	// 4. Quantifier wrapping, in reverse order of collection (later sumti
	// become inner quantifiers).
	for i := len(quants) - 1; i >= 0; i-- {
		form = wrapQuantifier(c, buf, quants[i], form)
	}

	// 5. Sentence-level negation.
	if bridi.Negated {
		form = logic.Not(form)
	}
	return form
}

// wrapQuantifier wraps body in an existential quantifier for a single
// collected QuantifierEntry, shared between bridi-level and WithArgs-level
// wrapping.
func wrapQuantifier(c *Compiler, buf *ast.Buffer, q QuantifierEntry, body *logic.Form) *logic.Form {
	descArity := c.Arity(buf, q.DescID)
	restrictorArgs := make([]logic.Term, descArity)
	restrictorArgs[0] = logic.Var(q.Var)
	for i := 1; i < descArity; i++ {
		restrictorArgs[i] = logic.Unfilled
	}
	descForm := c.ApplySelbri(buf, q.DescID, restrictorArgs)

	inner := logic.And(descForm, body)
	if q.Restrictor != nil {
		inner = logic.And(q.Restrictor, inner)
	}
	return logic.Exists(q.Var, inner)
}
