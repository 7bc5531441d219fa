package ast

import "testing"

func TestBuildSimpleBridi(t *testing.T) {
	buf, err := Build("mi klama lo zarci")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(buf.Sentences) != 1 {
		t.Fatalf("len(Sentences) = %d, want 1", len(buf.Sentences))
	}
	s := buf.Sentence(0)
	if len(s.HeadTerms) != 1 || len(s.TailTerms) != 1 {
		t.Fatalf("sentence = %+v, want one head term and one tail term", s)
	}
	if buf.Sumti(s.HeadTerms[0]).Kind != SumtiProSumti {
		t.Fatalf("head term kind = %v, want SumtiProSumti", buf.Sumti(s.HeadTerms[0]).Kind)
	}
	tail := buf.Sumti(s.TailTerms[0])
	if tail.Kind != SumtiDescription || tail.DescGadri != LO {
		t.Fatalf("tail term = %+v, want an LO description", tail)
	}
}

func TestBuildCuSeparatesHeadFromSelbri(t *testing.T) {
	buf, err := Build("la .bob. cu barda")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	s := buf.Sentence(0)
	if len(s.HeadTerms) != 1 {
		t.Fatalf("HeadTerms = %+v, want one name sumti", s.HeadTerms)
	}
	head := buf.Sumti(s.HeadTerms[0])
	if head.Kind != SumtiDescription || head.DescGadri != LA {
		t.Fatalf("head sumti = %+v, want an LA description", head)
	}
	if buf.Selbri(head.DescID).Word != "bob" {
		t.Fatalf("head sumti's name word = %q, want %q", buf.Selbri(head.DescID).Word, "bob")
	}
	if buf.Selbri(s.Relation).Word != "barda" {
		t.Fatalf("relation word = %q, want %q", buf.Selbri(s.Relation).Word, "barda")
	}
}

func TestBuildConnective(t *testing.T) {
	buf, err := Build("la .bob. cu barda je sutra")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	rel := buf.Selbri(buf.Sentence(0).Relation)
	if rel.Kind != SelbriConnected || rel.Conn != JE {
		t.Fatalf("relation = %+v, want a JE-connected selbri", rel)
	}
}

func TestBuildNegation(t *testing.T) {
	buf, err := Build("la .alice. na prami la .bob.")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	s := buf.Sentence(0)
	if !s.Negated {
		t.Fatal("sentence.Negated = false, want true")
	}
	if buf.Selbri(s.Relation).Word != "prami" {
		t.Fatalf("relation word = %q, want %q", buf.Selbri(s.Relation).Word, "prami")
	}
}

func TestBuildSeConversionAndPlaceTags(t *testing.T) {
	buf, err := Build("se klama fa lo zarci fe mi")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	s := buf.Sentence(0)
	rel := buf.Selbri(s.Relation)
	if rel.Kind != SelbriConverted || rel.Tag != SE {
		t.Fatalf("relation = %+v, want an SE-converted selbri", rel)
	}
	if len(s.TailTerms) != 2 {
		t.Fatalf("TailTerms = %+v, want two fa/fe-tagged sumti", s.TailTerms)
	}
	first := buf.Sumti(s.TailTerms[0])
	if first.Kind != SumtiTagged || first.Tag != FA {
		t.Fatalf("first tail term = %+v, want FA-tagged", first)
	}
}

func TestBuildWithArgsBeBei(t *testing.T) {
	buf, err := Build("mi nelci be lo gerku bei lo mlatu")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	s := buf.Sentence(0)
	rel := buf.Selbri(s.Relation)
	if rel.Kind != SelbriWithArgs {
		t.Fatalf("relation = %+v, want a WithArgs selbri", rel)
	}
	if len(rel.BoundSumtiIDs) != 2 {
		t.Fatalf("BoundSumtiIDs = %+v, want two bound sumti", rel.BoundSumtiIDs)
	}
}

func TestBuildPoiRelativeClause(t *testing.T) {
	buf, err := Build("da poi gerku cu danlu")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(buf.TopSentences) != 1 {
		t.Fatalf("len(TopSentences) = %d, want 1 (the poi clause body is not a root)", len(buf.TopSentences))
	}
	s := buf.Sentence(buf.TopSentences[0])
	if buf.Selbri(s.Relation).Word != "danlu" {
		t.Fatalf("top sentence relation = %q, want %q", buf.Selbri(s.Relation).Word, "danlu")
	}
	head := buf.Sumti(s.HeadTerms[0])
	if head.Kind != SumtiRestricted {
		t.Fatalf("head term = %+v, want SumtiRestricted", head)
	}
	clause := buf.Sentence(head.BodySentenceID)
	if buf.Selbri(clause.Relation).Word != "gerku" {
		t.Fatalf("relative clause relation = %q, want %q", buf.Selbri(clause.Relation).Word, "gerku")
	}
}

func TestBuildSelbriNegation(t *testing.T) {
	buf, err := Build("ti na'e barda")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	s := buf.Sentence(buf.TopSentences[0])
	rel := buf.Selbri(s.Relation)
	if rel.Kind != SelbriNegated {
		t.Fatalf("relation = %+v, want SelbriNegated", rel)
	}
	if buf.Selbri(rel.InnerID).Word != "barda" {
		t.Fatalf("inner word = %q, want %q", buf.Selbri(rel.InnerID).Word, "barda")
	}
}

func TestBuildSelbriGrouping(t *testing.T) {
	buf, err := Build("ti ke barda zdani kei")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	s := buf.Sentence(buf.TopSentences[0])
	rel := buf.Selbri(s.Relation)
	if rel.Kind != SelbriGrouped {
		t.Fatalf("relation = %+v, want SelbriGrouped", rel)
	}
	inner := buf.Selbri(rel.InnerID)
	if inner.Kind != SelbriTanru {
		t.Fatalf("inner = %+v, want a Tanru chain", inner)
	}
}

func TestBuildPoiClauseBodyIsNotTopLevel(t *testing.T) {
	buf, err := Build("da poi gerku cu danlu")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(buf.Sentences) != 2 {
		t.Fatalf("len(Sentences) = %d, want 2 (clause body + main bridi)", len(buf.Sentences))
	}
	if len(buf.TopSentences) != 1 {
		t.Fatalf("len(TopSentences) = %d, want 1", len(buf.TopSentences))
	}
}
