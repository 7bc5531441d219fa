package reasoning

import (
	"fmt"

	"github.com/lojban/nesy/internal/interner"
	"github.com/lojban/nesy/internal/logic"
)

// canonicalize alpha-renames every Exists/ForAll-bound variable in f to a
// positional name ("#0", "#1", ...) assigned in traversal order, leaving
// free variables (bare da/de/di) untouched.
//
// This is necessary because semantics.Compiler.freshVar (internal/semantics/
// compiler.go) hands out a new "_vN" name on every lo-description it
// resolves, and the var counter is shared across a whole session: compiling
// the literal same utterance twice — once to assert it, once to query it —
// yields two Form trees that are alpha-equivalent but not byte-identical.
// Asserting and querying would otherwise never agree on what "the same
// fact" looks like. Canonicalizing at the reasoning bridge's boundary,
// rather than threading a shared counter back through the compiler, keeps
// the compiler a pure per-call function of its AST input and confines the
// alpha-equivalence concern to the one package that actually needs bound
// variables to compare equal.
func canonicalize(f *logic.Form, it *interner.Interner) *logic.Form {
	rename := make(map[interner.Handle]interner.Handle)
	counter := 0
	return canonicalizeWalk(f, it, rename, &counter)
}

func canonicalizeWalk(f *logic.Form, it *interner.Interner, rename map[interner.Handle]interner.Handle, counter *int) *logic.Form {
	switch f.Kind {
	case logic.FormPredicate:
		args := make([]logic.Term, len(f.Args))
		for i, a := range f.Args {
			if a.Kind == logic.Variable {
				if nh, ok := rename[a.Handle]; ok {
					args[i] = logic.Var(nh)
					continue
				}
			}
			args[i] = a
		}
		return logic.Predicate(f.Relation, args)

	case logic.FormAnd:
		return logic.And(
			canonicalizeWalk(f.Left, it, rename, counter),
			canonicalizeWalk(f.Right, it, rename, counter),
		)

	case logic.FormOr:
		return logic.Or(
			canonicalizeWalk(f.Left, it, rename, counter),
			canonicalizeWalk(f.Right, it, rename, counter),
		)

	case logic.FormNot:
		return logic.Not(canonicalizeWalk(f.Inner, it, rename, counter))

	case logic.FormExists, logic.FormForAll:
		canon, ok := rename[f.QVar]
		if !ok {
			canon = it.Intern(fmt.Sprintf("#%d", *counter))
			*counter++
			rename[f.QVar] = canon
		}
		body := canonicalizeWalk(f.Body, it, rename, counter)
		if f.Kind == logic.FormExists {
			return logic.Exists(canon, body)
		}
		return logic.ForAll(canon, body)

	default:
		return f
	}
}
