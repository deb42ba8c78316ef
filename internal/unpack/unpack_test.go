package unpack

import (
	"strings"
	"testing"

	"github.com/pwalrus/stoch-coc/internal/check"
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/parser"
	"github.com/pwalrus/stoch-coc/internal/term"
)

func mustJudgement(t *testing.T, src string) judgement.Judgement {
	t.Helper()
	jdg, err := parser.ParseJudgement(src)
	if err != nil {
		t.Fatalf("ParseJudgement(%q): %v", src, err)
	}
	return jdg
}

func latexLines(lines []judgement.Judgement) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.ToLatex()
	}
	return out
}

func assertLines(t *testing.T, got []judgement.Judgement, want []string) {
	t.Helper()
	gotStr := latexLines(got)
	if len(gotStr) != len(want) {
		t.Fatalf("line count = %d, want %d:\n%s", len(gotStr), len(want), strings.Join(gotStr, "\n"))
	}
	for i := range want {
		if gotStr[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, gotStr[i], want[i])
		}
	}
}

func assertChecks(t *testing.T, defs []judgement.Definition, lines []judgement.Judgement) {
	t.Helper()
	refs, err := check.CheckProof(defs, lines)
	if err != nil {
		t.Fatalf("derivation rejected: %v", err)
	}
	if len(refs) != len(lines) {
		t.Fatalf("refs = %d, lines = %d", len(refs), len(lines))
	}
}

func TestUnpackVar(t *testing.T) {
	jdg := mustJudgement(t, "A:\\ast,a:A \\vdash a:A")
	lines, err := UnpackTerm(jdg.Statement.Subject, jdg.Context, nil)
	if err != nil {
		t.Fatalf("UnpackTerm: %v", err)
	}
	assertLines(t, lines, []string{
		"\\vdash \\ast : \\square",
		"A : \\ast \\vdash A : \\ast",
		"A : \\ast, a : A \\vdash a : A",
	})
	assertChecks(t, nil, lines)
}

func TestUnpackTypeAbs(t *testing.T) {
	jdg := mustJudgement(t, "A:\\ast \\vdash \\prod x : A . A : \\ast")
	lines, err := UnpackTerm(jdg.Statement.Subject, jdg.Context, nil)
	if err != nil {
		t.Fatalf("UnpackTerm: %v", err)
	}
	assertLines(t, lines, []string{
		"\\vdash \\ast : \\square",
		"A : \\ast \\vdash A : \\ast",
		"A : \\ast, a : A \\vdash A : \\ast",
		"A : \\ast \\vdash A \\to A : \\ast",
	})
	assertChecks(t, nil, lines)
}

func TestUnpackAbs(t *testing.T) {
	jdg := mustJudgement(t, "A:\\ast \\vdash \\lambda x : A . x : \\ast")
	lines, err := UnpackTerm(jdg.Statement.Subject, jdg.Context, nil)
	if err != nil {
		t.Fatalf("UnpackTerm: %v", err)
	}
	assertLines(t, lines, []string{
		"\\vdash \\ast : \\square",
		"A : \\ast \\vdash A : \\ast",
		"A : \\ast, a : A \\vdash a : A",
		"A : \\ast, a : A \\vdash A : \\ast",
		"A : \\ast \\vdash A \\to A : \\ast",
		"A : \\ast \\vdash \\lambda x : A . x : A \\to A",
	})
	assertChecks(t, nil, lines)
}

func TestUnpackAppl(t *testing.T) {
	jdg := mustJudgement(t, "A:\\ast, y:A \\vdash (\\lambda x : A . x) y : \\ast")
	lines, err := UnpackTerm(jdg.Statement.Subject, jdg.Context, nil)
	if err != nil {
		t.Fatalf("UnpackTerm: %v", err)
	}
	assertLines(t, lines, []string{
		"\\vdash \\ast : \\square",
		"A : \\ast \\vdash A : \\ast",
		"A : \\ast, y : A \\vdash y : A",
		"A : \\ast, y : A \\vdash A : \\ast",
		"A : \\ast, y : A, a : A \\vdash a : A",
		"A : \\ast, y : A, a : A \\vdash A : \\ast",
		"A : \\ast, y : A \\vdash A \\to A : \\ast",
		"A : \\ast, y : A \\vdash \\lambda x : A . x : A \\to A",
		"A : \\ast, y : A \\vdash (\\lambda x : A . x) y : A",
	})
	assertChecks(t, nil, lines)
}

func TestUnpackDefinition(t *testing.T) {
	def, err := parser.ParseDefinition(
		"A : \\ast \\vartriangleright id \\langle A \\rangle := \\lambda x : A . x : \\prod x : A . A")
	if err != nil {
		t.Fatalf("ParseDefinition: %v", err)
	}
	defs := []judgement.Definition{def}
	jdg := mustJudgement(t, "I:\\ast, q:I \\vdash (id \\langle I \\rangle) q : I")
	lines, err := UnpackTerm(jdg.Statement.Subject, jdg.Context, defs)
	if err != nil {
		t.Fatalf("UnpackTerm: %v", err)
	}
	assertLines(t, lines, []string{
		"\\vdash \\ast : \\square",
		"I : \\ast \\vdash I : \\ast",
		"I : \\ast, q : I \\vdash q : I",
		"I : \\ast, q : I \\vdash I : \\ast",
		"I : \\ast, q : I \\vdash id \\langle I \\rangle : I \\to I",
		"I : \\ast, q : I \\vdash id \\langle I \\rangle q : I",
	})
	assertChecks(t, defs, lines)
}

func TestUnpackSquareFails(t *testing.T) {
	_, err := UnpackTerm(term.Square{}, nil, nil)
	if err == nil {
		t.Fatal("square has no type")
	}
	if !strings.Contains(err.Error(), "cannot unpack \\square") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestUnpackWrapsInnerFailures(t *testing.T) {
	lam := term.Abs{Arg: "x", ArgType: term.Var{Name: "A"}, Body: term.Var{Name: "missing"}}
	_, err := UnpackTerm(lam, []judgement.Statement{
		{Subject: term.Var{Name: "A"}, Type: term.Star{}},
	}, nil)
	if err == nil {
		t.Fatal("unbound body variable should fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "While unpacking") || !strings.Contains(msg, "other error") {
		t.Errorf("missing diagnostic wrapping: %q", msg)
	}
	if !strings.Contains(msg, "missing") {
		t.Errorf("inner cause lost: %q", msg)
	}
}
