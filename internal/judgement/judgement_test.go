package judgement

import (
	"testing"

	"github.com/pwalrus/stoch-coc/internal/term"
)

func TestJudgementToLatexAndWeaker(t *testing.T) {
	stmt1 := Statement{Subject: term.Var{Name: "banana"}, Type: term.Var{Name: "A"}}
	stmt2 := Statement{Subject: term.Var{Name: "orange"}, Type: term.Var{Name: "B"}}
	stmt3 := Statement{Subject: term.Var{Name: "potato"}, Type: term.Var{Name: "C"}}
	judge := Judgement{Context: []Statement{stmt1, stmt2}, Statement: stmt3}
	judge2 := Judgement{Context: []Statement{stmt1}, Statement: stmt3}

	if got := judge.ToLatex(); got != "banana : A, orange : B \\vdash potato : C" {
		t.Errorf("ToLatex() = %q", got)
	}
	if !judge.SameOrWeaker(judge2) {
		t.Error("larger context should be weaker")
	}
	if !judge.SameOrWeaker(judge) {
		t.Error("a judgement is weaker-or-equal to itself")
	}
	if judge2.SameOrWeaker(judge) {
		t.Error("smaller context should not be weaker")
	}
}

func TestJudgementEmptyContext(t *testing.T) {
	jdg := Judgement{Statement: Statement{Subject: term.Star{}, Type: term.Square{}}}
	if got := jdg.ToLatex(); got != "\\vdash \\ast : \\square" {
		t.Errorf("ToLatex() = %q", got)
	}
}

func TestJudgementAlphaEquiv(t *testing.T) {
	stmtA := Statement{Subject: term.Var{Name: "A"}, Type: term.Star{}}
	stmtB := Statement{Subject: term.Var{Name: "B"}, Type: term.Star{}}
	jdg1 := Judgement{Context: []Statement{stmtA}, Statement: stmtA}
	jdg2 := Judgement{Context: []Statement{stmtB}, Statement: stmtB}

	if got := jdg1.ToLatex(); got != "A : \\ast \\vdash A : \\ast" {
		t.Errorf("ToLatex() = %q", got)
	}
	if !jdg1.AlphaEquiv(jdg2) || !jdg2.AlphaEquiv(jdg1) {
		t.Error("judgements differing only in subject names should be alpha-equivalent")
	}

	stmtC := Statement{Subject: term.Var{Name: "B"}, Type: term.Var{Name: "A"}}
	jdg3 := Judgement{Context: []Statement{stmtC}, Statement: stmtC}
	if jdg1.AlphaEquiv(jdg3) {
		t.Error("differently typed contexts are not alpha-equivalent")
	}
}

func TestDefinitionToLatex(t *testing.T) {
	stmt := Statement{Subject: term.Var{Name: "x"}, Type: term.Var{Name: "A"}}
	def := Definition{
		Context: []Statement{stmt},
		Name:    "ex",
		Args:    []string{"x"},
		Body:    stmt,
	}
	want := "x : A \\vartriangleright ex \\langle x \\rangle := x : A"
	if got := def.ToLatex(); got != want {
		t.Errorf("ToLatex() = %q, want %q", got, want)
	}
}

func TestDefinitionTypeList(t *testing.T) {
	aStar := Statement{Subject: term.Var{Name: "A"}, Type: term.Star{}}
	xA := Statement{Subject: term.Var{Name: "x"}, Type: term.Var{Name: "A"}}
	def := Definition{
		Context: []Statement{aStar, xA},
		Name:    "d",
		Args:    []string{"A", "x"},
		Body:    xA,
	}
	types, err := def.TypeList()
	if err != nil {
		t.Fatalf("TypeList() error: %v", err)
	}
	if len(types) != 2 || !term.Equal(types[0], term.Star{}) || !term.Equal(types[1], term.Var{Name: "A"}) {
		t.Errorf("TypeList() = %v", types)
	}

	broken := Definition{Context: []Statement{aStar}, Name: "d", Args: []string{"missing"}, Body: xA}
	if _, err := broken.TypeList(); err == nil {
		t.Error("missing argument binding should fail")
	}

	stmts := def.ArgStatements()
	if len(stmts) != 2 || !stmts[0].Equal(aStar) || !stmts[1].Equal(xA) {
		t.Errorf("ArgStatements() = %v", stmts)
	}
}
