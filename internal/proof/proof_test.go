package proof

import (
	"testing"

	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

func TestLineRefToLatex(t *testing.T) {
	tests := []struct {
		name string
		ref  LineRef
		want string
	}{
		{name: "axiom", ref: LineRef{Rule: "sort"}, want: "sort"},
		{name: "one premise", ref: LineRef{Rule: "var", Lines: []int{0}}, want: "var 0"},
		{name: "two premises", ref: LineRef{Rule: "weak", Lines: []int{1, 1}}, want: "weak 1,1"},
		{name: "many premises", ref: LineRef{Rule: "inst", Lines: []int{1, 3}}, want: "inst 1,3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.ToLatex(); got != tt.want {
				t.Errorf("ToLatex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProofToLatexTabular(t *testing.T) {
	stmt1 := judgement.Statement{Subject: term.Star{}, Type: term.Square{}}
	stmt2 := judgement.Statement{Subject: term.Var{Name: "A"}, Type: term.Star{}}
	p := Proof{
		Lines: []judgement.Judgement{
			{Statement: stmt1},
			{Context: []judgement.Statement{stmt2}, Statement: stmt2},
		},
		Refs: []LineRef{
			{Rule: "sort"},
			{Rule: "var", Lines: []int{0}},
		},
	}
	want := "\\begin{tabular}{c c c c c}\n" +
		"0 & $$ & $\\vdash$ & $\\ast : \\square$ & sort\\\\\n" +
		"1 & $A : \\ast$ & $\\vdash$ & $A : \\ast$ & var 0\n" +
		"\\end{tabular}"
	if got := p.ToLatex(); got != want {
		t.Errorf("ToLatex() =\n%s\nwant\n%s", got, want)
	}
}
