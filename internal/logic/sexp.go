package logic

import (
	"strings"

	"github.com/lojban/nesy/internal/interner"
)

// ToSExp renders f in the reasoning bridge's wire grammar, resolving
// interned handles through it. The reasoning engine uses this rendering as
// the dedup key for stored facts; the Prolog term it stores is produced
// separately (internal/reasoning/encode.go). The tree shape it walks
// mirrors the egglog-command builder it was ported from.
//
// String literals are emitted double-quoted with no escaping: a quoted
// literal that itself contains a `"` is written as is and breaks the
// grammar.
func ToSExp(f *Form, it *interner.Interner) string {
	var b strings.Builder
	writeSExp(&b, f, it)
	return b.String()
}

func writeSExp(b *strings.Builder, f *Form, it *interner.Interner) {
	switch f.Kind {
	case FormPredicate:
		b.WriteString(`(Pred "`)
		b.WriteString(it.Resolve(f.Relation))
		b.WriteString(`" `)
		writeTermList(b, f.Args, it)
		b.WriteString(")")
	case FormAnd:
		b.WriteString("(And ")
		writeSExp(b, f.Left, it)
		b.WriteString(" ")
		writeSExp(b, f.Right, it)
		b.WriteString(")")
	case FormOr:
		b.WriteString("(Or ")
		writeSExp(b, f.Left, it)
		b.WriteString(" ")
		writeSExp(b, f.Right, it)
		b.WriteString(")")
	case FormNot:
		b.WriteString("(Not ")
		writeSExp(b, f.Inner, it)
		b.WriteString(")")
	case FormExists:
		b.WriteString(`(Exists "`)
		b.WriteString(it.Resolve(f.QVar))
		b.WriteString(`" `)
		writeSExp(b, f.Body, it)
		b.WriteString(")")
	case FormForAll:
		b.WriteString(`(ForAll "`)
		b.WriteString(it.Resolve(f.QVar))
		b.WriteString(`" `)
		writeSExp(b, f.Body, it)
		b.WriteString(")")
	}
}

func writeTermList(b *strings.Builder, args []Term, it *interner.Interner) {
	if len(args) == 0 {
		b.WriteString("(Nil)")
		return
	}
	b.WriteString("(Cons ")
	writeTerm(b, args[0], it)
	b.WriteString(" ")
	writeTermList(b, args[1:], it)
	b.WriteString(")")
}

func writeTerm(b *strings.Builder, t Term, it *interner.Interner) {
	switch t.Kind {
	case Variable:
		b.WriteString(`(Var "`)
		b.WriteString(it.Resolve(t.Handle))
		b.WriteString(`")`)
	case Constant:
		b.WriteString(`(Const "`)
		b.WriteString(it.Resolve(t.Handle))
		b.WriteString(`")`)
	case Description:
		b.WriteString(`(Desc "`)
		b.WriteString(it.Resolve(t.Handle))
		b.WriteString(`")`)
	case Unspecified:
		b.WriteString("(Zoe)")
	}
}
