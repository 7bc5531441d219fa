package reasoning

import (
	"strings"

	"github.com/lojban/nesy/internal/interner"
	"github.com/lojban/nesy/internal/logic"
)

// encodeForm renders f as a ground Prolog term, functor-per-FormKind, for
// storage as a stored/1 fact. This is a distinct grammar from logic.ToSExp:
// ToSExp targets the human-/debug-facing wire format, this targets
// github.com/ichiban/prolog's reader.
func encodeForm(f *logic.Form, it *interner.Interner) string {
	var b strings.Builder
	writeForm(&b, f, it)
	return b.String()
}

func writeForm(b *strings.Builder, f *logic.Form, it *interner.Interner) {
	switch f.Kind {
	case logic.FormPredicate:
		b.WriteString("pred(")
		b.WriteString(quoteAtom(it.Resolve(f.Relation)))
		b.WriteString(", ")
		writeTermList(b, f.Args, it)
		b.WriteString(")")
	case logic.FormAnd:
		b.WriteString("and_(")
		writeForm(b, f.Left, it)
		b.WriteString(", ")
		writeForm(b, f.Right, it)
		b.WriteString(")")
	case logic.FormOr:
		b.WriteString("or_(")
		writeForm(b, f.Left, it)
		b.WriteString(", ")
		writeForm(b, f.Right, it)
		b.WriteString(")")
	case logic.FormNot:
		b.WriteString("not_(")
		writeForm(b, f.Inner, it)
		b.WriteString(")")
	case logic.FormExists:
		b.WriteString("exists_(")
		b.WriteString(quoteAtom(it.Resolve(f.QVar)))
		b.WriteString(", ")
		writeForm(b, f.Body, it)
		b.WriteString(")")
	case logic.FormForAll:
		b.WriteString("forall_(")
		b.WriteString(quoteAtom(it.Resolve(f.QVar)))
		b.WriteString(", ")
		writeForm(b, f.Body, it)
		b.WriteString(")")
	}
}

func writeTermList(b *strings.Builder, args []logic.Term, it *interner.Interner) {
	b.WriteString("[")
	for i, t := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		writeTerm(b, t, it)
	}
	b.WriteString("]")
}

func writeTerm(b *strings.Builder, t logic.Term, it *interner.Interner) {
	switch t.Kind {
	case logic.Variable:
		b.WriteString("var_(")
		b.WriteString(quoteAtom(it.Resolve(t.Handle)))
		b.WriteString(")")
	case logic.Constant:
		b.WriteString("const_(")
		b.WriteString(quoteAtom(it.Resolve(t.Handle)))
		b.WriteString(")")
	case logic.Description:
		b.WriteString("desc_(")
		b.WriteString(quoteAtom(it.Resolve(t.Handle)))
		b.WriteString(")")
	case logic.Unspecified:
		b.WriteString("zoe")
	}
}

// quoteAtom single-quotes s so it always reads back as a Prolog atom, never
// a variable — Lojban words can start with any letter, and handle text like
// "_v3" would otherwise tokenize as a variable.
func quoteAtom(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "\\'") + "'"
}
