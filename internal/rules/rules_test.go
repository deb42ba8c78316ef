package rules

import (
	"testing"

	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

func stmt(subject, sType term.CCExpression) judgement.Statement {
	return judgement.Statement{Subject: subject, Type: sType}
}

func jdg(ctx []judgement.Statement, s judgement.Statement) judgement.Judgement {
	return judgement.Judgement{Context: ctx, Statement: s}
}

func TestSortRule(t *testing.T) {
	rule := SortRule{}
	if rule.Name() != "sort" || rule.SignatureSize() != 0 {
		t.Fatal("wrong identity")
	}
	out := rule.Apply(nil, nil)
	if out == nil {
		t.Fatal("sort axiom should always apply")
	}
	want := stmt(term.Star{}, term.Square{})
	if !out.Statement.Equal(want) {
		t.Errorf("Apply() = %s", out.ToLatex())
	}
	if !rule.Validate(nil, nil, *out) {
		t.Error("apply output should validate")
	}
	extra := jdg(nil, stmt(term.Var{Name: "A"}, term.Star{}))
	if rule.Apply(&extra, nil) != nil {
		t.Error("sort takes no premises")
	}
}

func TestVarRuleApply(t *testing.T) {
	rule := VarRule{}
	in := jdg(nil, stmt(term.Var{Name: "A"}, term.Star{}))
	out := rule.Apply(&in, nil)
	if out == nil {
		t.Fatal("var should apply to a typed type variable")
	}
	if got := out.ToLatex(); got != "a : A \\vdash a : A" {
		t.Errorf("Apply() = %q", got)
	}
	if !rule.Validate(&in, nil, *out) {
		t.Error("apply output should validate")
	}
}

func TestVarRuleValidateWeakensContext(t *testing.T) {
	rule := VarRule{}
	sA := stmt(term.Var{Name: "A"}, term.Star{})
	sB := stmt(term.Var{Name: "B"}, term.Star{})
	jdg1 := jdg([]judgement.Statement{sA}, sA)
	jdg2 := jdg([]judgement.Statement{sA, sB}, sB)
	if !rule.Validate(&jdg1, nil, jdg2) {
		t.Error("fresh star-typed variable should validate")
	}
	bad := jdg([]judgement.Statement{sA, sB}, stmt(term.Var{Name: "B"}, term.Var{Name: "C"}))
	if rule.Validate(&jdg1, nil, bad) {
		t.Error("unknown type should not validate")
	}
}

func TestWeakRule(t *testing.T) {
	rule := WeakRule{}
	s1 := stmt(term.Var{Name: "A"}, term.Var{Name: "B"})
	s2 := stmt(term.Var{Name: "C"}, term.Star{})
	lhs := jdg(nil, s1)
	rhs := jdg(nil, s2)
	out := rule.Apply(&lhs, &rhs)
	if out == nil {
		t.Fatal("weak should apply")
	}
	if got := out.ToLatex(); got != "a : C \\vdash A : B" {
		t.Errorf("Apply() = %q", got)
	}
	if !out.Statement.Equal(s1) {
		t.Error("weakening must keep the statement")
	}
}

func TestWeakRuleValidate(t *testing.T) {
	rule := WeakRule{}
	sSort := stmt(term.Star{}, term.Square{})
	aA := stmt(term.Var{Name: "a"}, term.Var{Name: "A"})
	cStar := stmt(term.Var{Name: "C"}, term.Star{})
	aStar := stmt(term.Var{Name: "A"}, term.Star{})
	bStar := stmt(term.Var{Name: "B"}, term.Star{})

	jdg1 := jdg([]judgement.Statement{aStar, aA}, aA)
	jdg2 := jdg([]judgement.Statement{aStar, aA, cStar, bStar}, aA)
	jdg3 := jdg(nil, sSort)
	if !rule.Validate(&jdg1, &jdg3, jdg2) {
		t.Error("multi-step weakening should validate")
	}
}

func TestFormRule(t *testing.T) {
	rule := FormRule{}
	judg1 := jdg(nil, stmt(term.Var{Name: "A"}, term.Star{}))
	judg2 := jdg(
		[]judgement.Statement{stmt(term.Var{Name: "x"}, term.Var{Name: "A"})},
		stmt(term.Var{Name: "B"}, term.Star{}),
	)
	out := rule.Apply(&judg1, &judg2)
	if out == nil {
		t.Fatal("form should apply")
	}
	if got := out.ToLatex(); got != "\\vdash A \\to B : \\ast" {
		t.Errorf("Apply() = %q", got)
	}
	if !rule.Validate(&judg1, &judg2, *out) {
		t.Error("apply output should validate")
	}
}

func TestApplRule(t *testing.T) {
	rule := ApplRule{}
	fType := term.TypeAbs{Arg: "x", ArgType: term.Var{Name: "A"}, Body: term.Var{Name: "B"}}
	jdg1 := jdg(nil, stmt(term.Var{Name: "M"}, fType))
	jdg2 := jdg(nil, stmt(term.Var{Name: "N"}, term.Var{Name: "A"}))
	if got := jdg1.ToLatex(); got != "\\vdash M : A \\to B" {
		t.Fatalf("fixture printing changed: %q", got)
	}
	out := rule.Apply(&jdg1, &jdg2)
	if out == nil {
		t.Fatal("appl should apply")
	}
	if got := out.ToLatex(); got != "\\vdash M N : B" {
		t.Errorf("Apply() = %q", got)
	}
	if !rule.Validate(&jdg1, &jdg2, *out) {
		t.Error("apply output should validate")
	}
	mismatched := jdg(nil, stmt(term.Var{Name: "N"}, term.Var{Name: "C"}))
	if rule.Apply(&jdg1, &mismatched) != nil {
		t.Error("domain mismatch must not apply")
	}
}

func TestApplRuleDependent(t *testing.T) {
	rule := ApplRule{}
	// F : Πx:A.P x — the codomain mentions the binder.
	fType := term.TypeAbs{
		Arg:     "x",
		ArgType: term.Var{Name: "A"},
		Body:    term.Appl{Left: term.Var{Name: "P"}, Right: term.Var{Name: "x"}},
	}
	jdg1 := jdg(nil, stmt(term.Var{Name: "F"}, fType))
	jdg2 := jdg(nil, stmt(term.Var{Name: "n"}, term.Var{Name: "A"}))
	out := rule.Apply(&jdg1, &jdg2)
	if out == nil {
		t.Fatal("appl should apply")
	}
	want := term.Appl{Left: term.Var{Name: "P"}, Right: term.Var{Name: "n"}}
	if !term.Equal(out.Statement.Type, want) {
		t.Errorf("codomain not substituted: %s", out.Statement.Type.ToLatex())
	}
}

func TestAbstRule(t *testing.T) {
	rule := AbstRule{}
	jdg1 := jdg(
		[]judgement.Statement{stmt(term.Var{Name: "x"}, term.Var{Name: "A"})},
		stmt(term.Var{Name: "M"}, term.Var{Name: "B"}),
	)
	piType := term.TypeAbs{Arg: "x", ArgType: term.Var{Name: "A"}, Body: term.Var{Name: "B"}}
	jdg2 := jdg(nil, stmt(piType, term.Square{}))
	out := rule.Apply(&jdg1, &jdg2)
	if out == nil {
		t.Fatal("abst should apply")
	}
	if got := out.ToLatex(); got != "\\vdash \\lambda x : A . M : A \\to B" {
		t.Errorf("Apply() = %q", got)
	}
	if !rule.Validate(&jdg1, &jdg2, *out) {
		t.Error("apply output should validate")
	}
}

func TestAbstRuleAlternativeBinding(t *testing.T) {
	rule := AbstRule{}
	a := term.Var{Name: "A"}
	jdg1 := jdg(
		[]judgement.Statement{stmt(term.Var{Name: "A"}, term.Star{}), stmt(term.Var{Name: "a"}, a)},
		stmt(term.Var{Name: "a"}, a),
	)
	piType := term.TypeAbs{Arg: "a", ArgType: a, Body: a}
	jdg2 := jdg([]judgement.Statement{stmt(term.Var{Name: "A"}, term.Star{})}, stmt(piType, term.Star{}))
	claimed := jdg(
		[]judgement.Statement{stmt(term.Var{Name: "A"}, term.Star{})},
		stmt(term.Abs{Arg: "x", ArgType: a, Body: term.Var{Name: "x"}}, piType),
	)
	if !rule.Validate(&jdg1, &jdg2, claimed) {
		t.Error("lambda written with a renamed binder should validate")
	}
}

func TestConvRule(t *testing.T) {
	rule := ConvRule{}
	a := term.Var{Name: "A"}
	t1 := term.TypeAbs{Arg: "x", ArgType: a, Body: term.Var{Name: "x"}}
	t2 := term.TypeAbs{Arg: "y", ArgType: a, Body: term.Var{Name: "y"}}
	jdg1 := jdg(nil, stmt(term.Var{Name: "x"}, t1))
	jdg2 := jdg(nil, stmt(t2, term.Star{}))
	out := rule.Apply(&jdg1, &jdg2)
	if out == nil {
		t.Fatal("conv should apply to alpha-variants")
	}
	if got := out.ToLatex(); got != "\\vdash x : \\prod y : A . y" {
		t.Errorf("Apply() = %q", got)
	}
	same := jdg(nil, stmt(t1, term.Star{}))
	if rule.Apply(&jdg1, &same) != nil {
		t.Error("conv requires the types to differ")
	}
}

func idDefinition() judgement.Definition {
	a := term.Var{Name: "A"}
	return judgement.Definition{
		Context: []judgement.Statement{stmt(term.Var{Name: "A"}, term.Star{})},
		Name:    "id",
		Args:    []string{"A"},
		Body: judgement.Statement{
			Subject: term.Abs{Arg: "x", ArgType: a, Body: term.Var{Name: "x"}},
			Type:    term.TypeAbs{Arg: "x", ArgType: a, Body: a},
		},
	}
}

func TestInstRuleApply(t *testing.T) {
	rule := InstRule{Defs: []judgement.Definition{idDefinition()}}
	iStar := stmt(term.Var{Name: "I"}, term.Star{})
	in := jdg([]judgement.Statement{iStar}, iStar)
	out := rule.Apply(&in, nil)
	if out == nil {
		t.Fatal("inst should apply when the context discharges the arguments")
	}
	if got := out.ToLatex(); got != "I : \\ast \\vdash id \\langle I \\rangle : I \\to I" {
		t.Errorf("Apply() = %q", got)
	}
}

func TestInstRuleValidateMany(t *testing.T) {
	rule := InstRule{Defs: []judgement.Definition{idDefinition()}}
	iStar := stmt(term.Var{Name: "I"}, term.Star{})
	premise := jdg([]judgement.Statement{iStar}, iStar)
	i := term.Var{Name: "I"}
	claimed := jdg(
		[]judgement.Statement{iStar},
		stmt(term.DefAppl{Name: "id", Args: []term.CCExpression{i}},
			term.TypeAbs{Arg: "x", ArgType: i, Body: i}),
	)
	idxs, ok := rule.ValidateMany([]judgement.Judgement{premise}, claimed)
	if !ok || len(idxs) != 1 || idxs[0] != 0 {
		t.Errorf("ValidateMany() = %v, %v", idxs, ok)
	}
	if !rule.Validate(&premise, nil, claimed) {
		t.Error("single-premise validate should succeed")
	}
	wrong := jdg(
		[]judgement.Statement{iStar},
		stmt(term.DefAppl{Name: "id", Args: []term.CCExpression{i}}, term.Star{}),
	)
	if _, ok := rule.ValidateMany([]judgement.Judgement{premise}, wrong); ok {
		t.Error("wrong instantiated type must not validate")
	}
}

func TestRuleOrderAndSoundness(t *testing.T) {
	defs := []judgement.Definition{idDefinition()}
	rules := AllRules(defs)
	wantNames := []string{"sort", "var", "weak", "form", "appl", "abst", "conv", "inst"}
	if len(rules) != len(wantNames) {
		t.Fatalf("rule count = %d", len(rules))
	}
	for i, r := range rules {
		if r.Name() != wantNames[i] {
			t.Errorf("rule %d = %s, want %s", i, r.Name(), wantNames[i])
		}
	}

	// Every successful Apply must pass its own Validate.
	aStar := stmt(term.Var{Name: "A"}, term.Star{})
	premise := jdg(nil, aStar)
	for _, r := range rules {
		var out *judgement.Judgement
		switch r.SignatureSize() {
		case 0:
			out = r.Apply(nil, nil)
		case 1:
			out = r.Apply(&premise, nil)
		case 2:
			out = r.Apply(&premise, &premise)
		}
		if out == nil {
			continue
		}
		var lhs, rhs *judgement.Judgement
		if r.SignatureSize() >= 1 {
			lhs = &premise
		}
		if r.SignatureSize() >= 2 {
			rhs = &premise
		}
		if !r.Validate(lhs, rhs, *out) {
			t.Errorf("rule %s: apply output does not validate", r.Name())
		}
	}
}
