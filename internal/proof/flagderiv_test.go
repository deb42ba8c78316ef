package proof_test

import (
	"strings"
	"testing"

	"github.com/pwalrus/stoch-coc/internal/check"
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/parser"
	"github.com/pwalrus/stoch-coc/internal/proof"
	"github.com/pwalrus/stoch-coc/internal/unpack"
)

func TestFlagderivIdentityProof(t *testing.T) {
	jdg, err := parser.ParseJudgement("A:\\ast \\vdash \\lambda x : A . x : A \\to A")
	if err != nil {
		t.Fatalf("ParseJudgement: %v", err)
	}
	lines, err := unpack.UnpackTerm(jdg.Statement.Subject, jdg.Context, nil)
	if err != nil {
		t.Fatalf("UnpackTerm: %v", err)
	}
	refs, err := check.CheckProof(nil, lines)
	if err != nil {
		t.Fatalf("CheckProof: %v", err)
	}
	out, err := proof.FlagderivOutput(proof.Proof{Lines: lines, Refs: refs})
	if err != nil {
		t.Fatalf("FlagderivOutput: %v", err)
	}
	var got []string
	for _, line := range strings.Split(out, "\n") {
		got = append(got, strings.TrimSpace(line))
	}
	want := []string{
		"\\begin{flagderiv}",
		"\\step*{$(0)$}{\\ast : \\square}{sort}",
		"\\assume*{}{A : \\ast}{}",
		"\\step*{$(1)$}{A : \\ast}{var 0}",
		"\\assume*{}{a : A}{}",
		"\\step*{$(2)$}{a : A}{var 1}",
		"\\step*{$(3)$}{A : \\ast}{weak 1,1}",
		"\\conclude*[1]{$(4)$}{A \\to A : \\ast}{form 1,3}",
		"\\step*{$(5)$}{\\lambda x : A . x : A \\to A}{abst 2,4}",
		"\\end{flagderiv}",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lines:\n%s", len(got), out)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFlagderivRejectsIncompatibleContexts(t *testing.T) {
	jdg1, err := parser.ParseJudgement("x : A \\vdash x : A")
	if err != nil {
		t.Fatalf("ParseJudgement: %v", err)
	}
	jdg2, err := parser.ParseJudgement("y : B \\vdash y : B")
	if err != nil {
		t.Fatalf("ParseJudgement: %v", err)
	}
	p := proof.Proof{
		Lines: []judgement.Judgement{jdg1, jdg2},
		Refs:  []proof.LineRef{{Rule: "var"}, {Rule: "var"}},
	}
	if _, err := proof.FlagderivOutput(p); err == nil {
		t.Fatal("sibling contexts must be rejected")
	}
}
