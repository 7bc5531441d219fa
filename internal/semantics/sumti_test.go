package semantics

import (
	"testing"

	"github.com/lojban/nesy/internal/ast"
	"github.com/lojban/nesy/internal/interner"
	"github.com/lojban/nesy/internal/logic"
)

func TestResolveSumtiBareVariableIsVariableNotConstant(t *testing.T) {
	c := New(stubDict{})
	buf := &ast.Buffer{Sumtis: []ast.Sumti{{Kind: ast.SumtiProSumti, Word: "da"}}}
	term, quants := c.resolveSumti(buf, 0)
	if term.Kind != logic.Variable {
		t.Fatalf("term.Kind = %v, want Variable for bare da", term.Kind)
	}
	if quants != nil {
		t.Fatalf("quants = %+v, want nil (bare variables contribute no quantifier)", quants)
	}
}

func TestResolveSumtiProSumtiIsConstant(t *testing.T) {
	c := New(stubDict{})
	buf := &ast.Buffer{Sumtis: []ast.Sumti{{Kind: ast.SumtiProSumti, Word: "mi"}}}
	term, _ := c.resolveSumti(buf, 0)
	if term.Kind != logic.Constant {
		t.Fatalf("term.Kind = %v, want Constant for mi", term.Kind)
	}
}

func TestResolveSumtiLoContributesQuantifier(t *testing.T) {
	c := New(stubDict{"zarci": 1})
	buf := &ast.Buffer{
		Selbris: []ast.Selbri{{Kind: ast.SelbriRoot, Word: "zarci"}},
		Sumtis:  []ast.Sumti{{Kind: ast.SumtiDescription, DescGadri: ast.LO, DescID: 0}},
	}
	term, quants := c.resolveSumti(buf, 0)
	if term.Kind != logic.Variable {
		t.Fatalf("term.Kind = %v, want Variable for a lo-description", term.Kind)
	}
	if len(quants) != 1 || quants[0].Var != term.Handle {
		t.Fatalf("quants = %+v, want one entry bound to the resolved variable", quants)
	}
}

func TestResolveSumtiLaIsDescriptionConstantNotQuantified(t *testing.T) {
	c := New(stubDict{})
	buf := &ast.Buffer{
		Selbris: []ast.Selbri{{Kind: ast.SelbriRoot, Word: "bob"}},
		Sumtis:  []ast.Sumti{{Kind: ast.SumtiDescription, DescGadri: ast.LA, DescID: 0}},
	}
	term, quants := c.resolveSumti(buf, 0)
	if term.Kind != logic.Description {
		t.Fatalf("term.Kind = %v, want Description for la", term.Kind)
	}
	if quants != nil {
		t.Fatalf("quants = %+v, want nil (la/le never contribute a quantifier)", quants)
	}
}

func TestResolveSumtiRestrictedAttachesRestrictorToLastQuantifier(t *testing.T) {
	c := New(stubDict{"gerku": 1, "danlu": 1})
	buf := &ast.Buffer{
		Selbris: []ast.Selbri{
			{Kind: ast.SelbriRoot, Word: "gerku"},
			{Kind: ast.SelbriRoot, Word: "danlu"},
		},
		Sumtis: []ast.Sumti{
			{Kind: ast.SumtiDescription, DescGadri: ast.LO, DescID: 1},
			{Kind: ast.SumtiUnspecified},
			{Kind: ast.SumtiRestricted, InnerID: 0, BodySentenceID: 0},
		},
		Sentences: []ast.Sentence{
			{Relation: 0, HeadTerms: []ast.SumtiID{1}},
		},
	}
	_, quants := c.resolveSumti(buf, 2)
	if len(quants) != 1 {
		t.Fatalf("quants = %+v, want exactly one (from the inner lo-description)", quants)
	}
	if quants[0].Restrictor == nil {
		t.Fatal("quants[0].Restrictor = nil, want the poi clause injected")
	}
	if quants[0].Restrictor.Kind != logic.FormPredicate || quants[0].Restrictor.Relation != c.Interner.Intern("gerku") {
		t.Fatalf("Restrictor = %+v, want a gerku predicate", quants[0].Restrictor)
	}
}

func TestResolveSumtiRestrictedOnNonQuantifyingInnerDropsRestrictor(t *testing.T) {
	// "mi poi gerku" has no quantifier for the restrictor to attach to, so
	// it is dropped rather than erroring.
	c := New(stubDict{"gerku": 1})
	buf := &ast.Buffer{
		Selbris: []ast.Selbri{{Kind: ast.SelbriRoot, Word: "gerku"}},
		Sumtis: []ast.Sumti{
			{Kind: ast.SumtiProSumti, Word: "mi"},
			{Kind: ast.SumtiUnspecified},
			{Kind: ast.SumtiRestricted, InnerID: 0, BodySentenceID: 0},
		},
		Sentences: []ast.Sentence{
			{Relation: 0, HeadTerms: []ast.SumtiID{1}},
		},
	}
	term, quants := c.resolveSumti(buf, 2)
	if term.Kind != logic.Constant {
		t.Fatalf("term.Kind = %v, want Constant (mi unaffected)", term.Kind)
	}
	if quants != nil {
		t.Fatalf("quants = %+v, want nil (no quantifier to attach the restrictor to)", quants)
	}
}

func TestInjectVariableFillsFirstUnspecifiedArg(t *testing.T) {
	it := interner.New()
	form := logic.Predicate(it.Intern("gerku"), []logic.Term{logic.Unfilled})
	out := injectVariable(form, it.Intern("_v0"))
	if out.Args[0].Kind != logic.Variable || out.Args[0].Handle != it.Intern("_v0") {
		t.Fatalf("injectVariable() = %+v, want the Unspecified arg replaced with the variable", out)
	}
}

func TestInjectVariableLeavesFilledArgAlone(t *testing.T) {
	it := interner.New()
	form := logic.Predicate(it.Intern("gerku"), []logic.Term{logic.Const(it.Intern("fido"))})
	out := injectVariable(form, it.Intern("_v0"))
	if out.Args[0].Kind != logic.Constant || out.Args[0].Handle != it.Intern("fido") {
		t.Fatalf("injectVariable() mutated an already-filled arg: %+v", out)
	}
}

func TestInjectVariableDoesNotDescendUnderQuantifiers(t *testing.T) {
	it := interner.New()
	inner := logic.Predicate(it.Intern("gerku"), []logic.Term{logic.Unfilled})
	form := logic.Exists(it.Intern("_v1"), inner)
	out := injectVariable(form, it.Intern("_v0"))
	if out.Body.Args[0].Kind != logic.Unspecified {
		t.Fatalf("injectVariable() descended under Exists: %+v", out)
	}
}

func TestInjectVariableDoesNotMutateInput(t *testing.T) {
	it := interner.New()
	form := logic.Predicate(it.Intern("gerku"), []logic.Term{logic.Unfilled})
	injectVariable(form, it.Intern("_v0"))
	if form.Args[0].Kind != logic.Unspecified {
		t.Fatal("injectVariable() mutated the original form in place")
	}
}
