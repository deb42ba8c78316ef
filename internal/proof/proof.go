// Package proof holds the engine's output records: a derivation as a
// list of judgements, each annotated with the rule reference that
// justifies it, plus the two LaTeX serialisations.
package proof

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pwalrus/stoch-coc/internal/judgement"
)

// LineRef names the rule justifying one derivation line and the
// indices of the premise lines it consumed.
type LineRef struct {
	Rule  string
	Lines []int
}

func (r LineRef) ToLatex() string {
	if len(r.Lines) == 0 {
		return r.Rule
	}
	parts := make([]string, len(r.Lines))
	for i, l := range r.Lines {
		parts[i] = strconv.Itoa(l)
	}
	return r.Rule + " " + strings.Join(parts, ",")
}

// Proof is a checked derivation: one reference per line.
type Proof struct {
	Lines []judgement.Judgement
	Refs  []LineRef
}

func jTableLatex(jdg judgement.Judgement) string {
	return fmt.Sprintf("$%s$ & $\\vdash$ & $%s$", judgement.CtxString(jdg.Context), jdg.Statement.ToLatex())
}

// ToLatex renders the proof as a LaTeX tabular, one numbered row per
// line.
func (p Proof) ToLatex() string {
	rows := make([]string, len(p.Lines))
	for i := range p.Lines {
		rows[i] = strings.Join([]string{strconv.Itoa(i), jTableLatex(p.Lines[i]), p.Refs[i].ToLatex()}, " & ")
	}
	return strings.TrimSpace(strings.Join([]string{
		"\\begin{tabular}{c c c c c}",
		strings.Join(rows, "\\\\\n"),
		"\\end{tabular}",
	}, "\n"))
}
