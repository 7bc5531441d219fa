// Package reasoning is the Prolog-backed entailment bridge.
// Asserted LogicalForm values are kept as a Go-side working set so the
// rewrite/inference rules (rules.go) can pattern-match over the typed tree
// directly, and mirrored into an ichiban/prolog interpreter as stored/1
// facts, which is what QueryEntailment actually consults.
//
// Saturation is explicitly driven from Go rather than written as recursive
// Prolog clauses. The rewrite/inference rules are terminating and bounded
// precisely because an egglog e-graph applies each rule exactly once per
// e-class per pass. A direct Prolog transliteration using recursive
// clauses for, say, double negation elimination would instead resolve
// depth-first and never terminate on a goal that legitimately fails.
// Driving the fixpoint from Go with an explicit iteration cap reproduces
// egglog's bounded-saturation guarantee without that risk — a bounded
// fallback of around 100 iterations.
//
// modus ponens, modus tollens, and material-conditional-elimination from
// the egglog schema are not implemented: all three pattern-match on an
// Implies formula, and this compiler's JO/JU connective lowering
// (internal/semantics/selbri.go) always expands material conditionals and
// biconditionals into And/Or/Not before a LogicalForm is ever built, so
// Implies never appears in an asserted fact. A rule with no possible
// trigger would be dead code.
package reasoning

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/ichiban/prolog"

	"github.com/lojban/nesy/internal/interner"
	"github.com/lojban/nesy/internal/logic"
)

// DefaultSaturationLimit is the bounded-fallback iteration cap.
const DefaultSaturationLimit = 100

// Engine is a single reasoning session's fact store. It is safe for
// concurrent use; a session shares one Engine across its callers behind a
// mutex.
type Engine struct {
	mu     sync.Mutex
	it     *interner.Interner
	interp *prolog.Interpreter
	facts  []*logic.Form
	known  map[string]bool
}

// New returns an Engine sharing it with the semantics.Compiler that will
// feed it LogicalForm values — handles must resolve to the same strings on
// both sides of the bridge.
func New(it *interner.Interner) (*Engine, error) {
	e := &Engine{
		it:     it,
		interp: prolog.New(nil, nil),
		known:  make(map[string]bool),
	}
	if err := e.interp.Exec(`:- dynamic(stored/1).`); err != nil {
		return nil, fmt.Errorf("reasoning: initializing fact store: %w", err)
	}
	return e, nil
}

// AssertFact adds f to the fact store if it is not already known.
func (e *Engine) AssertFact(f *logic.Form) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, err := e.assertLocked(f)
	return err
}

func (e *Engine) assertLocked(f *logic.Form) (bool, error) {
	f = canonicalize(f, e.it)
	key := logic.ToSExp(f, e.it)
	if e.known[key] {
		return false, nil
	}
	e.known[key] = true
	e.facts = append(e.facts, f)

	term := encodeForm(f, e.it)
	if err := e.interp.Exec(fmt.Sprintf(":- assertz(stored(%s)).", term)); err != nil {
		return true, fmt.Errorf("reasoning: asserting fact: %w", err)
	}
	return true, nil
}

// QueryEntailment saturates the fact store up to limit iterations (use
// DefaultSaturationLimit unless config overrides it) and reports whether f
// is now entailed by it.
func (e *Engine) QueryEntailment(ctx context.Context, f *logic.Form, limit int) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.saturateLocked(limit); err != nil {
		return false, err
	}

	f = canonicalize(f, e.it)
	term := encodeForm(f, e.it)
	sols, err := e.interp.QueryContext(ctx, fmt.Sprintf("stored(%s).", term))
	if err != nil {
		return false, fmt.Errorf("reasoning: querying entailment: %w", err)
	}
	defer sols.Close()

	has := sols.Next()
	if serr := sols.Err(); serr != nil {
		return false, fmt.Errorf("reasoning: reading query solutions: %w", serr)
	}
	return has, nil
}

// saturateLocked runs forward-chaining closure to a fixpoint or limit
// iterations, whichever comes first. Every rule is sound and non-recursive
// in the sense that a single pass over the current fact set produces a
// finite set of new facts, so the loop always halts even without the cap;
// the cap exists purely to match the bounded-fallback contract.
func (e *Engine) saturateLocked(limit int) error {
	if limit <= 0 {
		limit = DefaultSaturationLimit
	}

	var errs *multierror.Error
	for i := 0; i < limit; i++ {
		changed := false

		base := e.facts
		var derived []*logic.Form
		for _, f := range base {
			derived = append(derived, rewriteVariants(f)...)
			derived = append(derived, inferenceVariants(f)...)
		}
		derived = append(derived, disjunctiveSyllogism(base, e.isKnownLocked)...)

		for _, d := range derived {
			added, err := e.assertLocked(d)
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			if added {
				changed = true
			}
		}

		if !changed {
			break
		}
	}
	return errs.ErrorOrNil()
}

func (e *Engine) isKnownLocked(f *logic.Form) bool {
	return e.known[logic.ToSExp(f, e.it)]
}
