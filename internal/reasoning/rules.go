package reasoning

import "github.com/lojban/nesy/internal/logic"

// The rule set below mirrors an egglog schema: seven of its eight
// structural rewrites (material-conditional elimination is omitted) and
// four of its six inference rules (modus ponens and modus tollens are
// omitted) — see the package doc comment in engine.go for why.
// Where egglog lets its e-graph apply a rewrite at any subterm via
// congruence closure, rewriteVariants recurses into subforms itself to get
// the same effect over a plain tree.

// rewriteVariants returns every one-step structural rewrite of f, including
// rewrites found anywhere in its subtree (not just at the root).
func rewriteVariants(f *logic.Form) []*logic.Form {
	var out []*logic.Form
	out = append(out, rootRewrites(f)...)

	switch f.Kind {
	case logic.FormAnd:
		for _, l := range rewriteVariants(f.Left) {
			out = append(out, logic.And(l, f.Right))
		}
		for _, r := range rewriteVariants(f.Right) {
			out = append(out, logic.And(f.Left, r))
		}
	case logic.FormOr:
		for _, l := range rewriteVariants(f.Left) {
			out = append(out, logic.Or(l, f.Right))
		}
		for _, r := range rewriteVariants(f.Right) {
			out = append(out, logic.Or(f.Left, r))
		}
	case logic.FormNot:
		for _, in := range rewriteVariants(f.Inner) {
			out = append(out, logic.Not(in))
		}
	case logic.FormExists:
		for _, body := range rewriteVariants(f.Body) {
			out = append(out, logic.Exists(f.QVar, body))
		}
	case logic.FormForAll:
		for _, body := range rewriteVariants(f.Body) {
			out = append(out, logic.ForAll(f.QVar, body))
		}
	}
	return out
}

// rootRewrites applies the seven structural rewrites at f's own root.
func rootRewrites(f *logic.Form) []*logic.Form {
	var out []*logic.Form
	switch f.Kind {
	case logic.FormAnd:
		out = append(out, logic.And(f.Right, f.Left)) // commutativity
		if f.Left.Kind == logic.FormAnd {
			out = append(out, logic.And(f.Left.Left, logic.And(f.Left.Right, f.Right))) // associativity
		}
	case logic.FormOr:
		out = append(out, logic.Or(f.Right, f.Left))
		if f.Left.Kind == logic.FormOr {
			out = append(out, logic.Or(f.Left.Left, logic.Or(f.Left.Right, f.Right)))
		}
	case logic.FormNot:
		switch f.Inner.Kind {
		case logic.FormNot:
			out = append(out, f.Inner.Inner) // double negation elimination
		case logic.FormAnd:
			out = append(out, logic.Or(logic.Not(f.Inner.Left), logic.Not(f.Inner.Right))) // De Morgan
		case logic.FormOr:
			out = append(out, logic.And(logic.Not(f.Inner.Left), logic.Not(f.Inner.Right)))
		}
	}
	return out
}

// inferenceVariants implements the unary inference rules: conjunction
// elimination and the two quantifier-distribution rules. Each derives a new
// IsTrue fact from a single existing one.
func inferenceVariants(f *logic.Form) []*logic.Form {
	var out []*logic.Form
	switch f.Kind {
	case logic.FormAnd:
		// Conjunction elimination: A ∧ B ⊢ A, B.
		out = append(out, f.Left, f.Right)
	case logic.FormExists:
		if f.Body.Kind == logic.FormAnd {
			// ∃x.(A ∧ B) ⊢ ∃x.A ∧ ∃x.B
			out = append(out, logic.And(
				logic.Exists(f.QVar, f.Body.Left),
				logic.Exists(f.QVar, f.Body.Right),
			))
		}
	case logic.FormForAll:
		if f.Body.Kind == logic.FormAnd {
			// ∀x.(A ∧ B) ⊢ ∀x.A ∧ ∀x.B
			out = append(out, logic.And(
				logic.ForAll(f.QVar, f.Body.Left),
				logic.ForAll(f.QVar, f.Body.Right),
			))
		}
	}
	return out
}

// disjunctiveSyllogism implements the one binary inference rule: A ∨ B,
// ¬A ⊢ B. known reports whether a fact (keyed by its canonical
// s-expression) is already in the store.
func disjunctiveSyllogism(facts []*logic.Form, known func(*logic.Form) bool) []*logic.Form {
	var out []*logic.Form
	for _, f := range facts {
		if f.Kind != logic.FormOr {
			continue
		}
		if known(logic.Not(f.Left)) {
			out = append(out, f.Right)
		}
		if known(logic.Not(f.Right)) {
			out = append(out, f.Left)
		}
	}
	return out
}
