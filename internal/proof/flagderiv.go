package proof

import (
	"fmt"
	"strings"

	"github.com/pwalrus/stoch-coc/internal/judgement"
)

// The flagderiv serialisation follows the context through the
// derivation: entering a binding opens a flag (\assume*), leaving one
// or more bindings closes them (\conclude*[n]), everything else is a
// plain \step*.

func validContextChange(lhs, rhs []judgement.Statement) bool {
	n := len(lhs)
	if len(rhs) < n {
		n = len(rhs)
	}
	for i := 0; i < n; i++ {
		if !lhs[i].Equal(rhs[i]) {
			return false
		}
	}
	return true
}

func stepLine(idx int, stmt judgement.Statement, ref LineRef) string {
	return fmt.Sprintf("\t\\step*{$(%d)$}{%s}{%s}", idx, stmt.ToLatex(), ref.ToLatex())
}

func concludeLine(leap, idx int, stmt judgement.Statement, ref LineRef) string {
	return fmt.Sprintf("\t\\conclude*[%d]{$(%d)$}{%s}{%s}", leap, idx, stmt.ToLatex(), ref.ToLatex())
}

func assumeLine(stmt judgement.Statement) string {
	return fmt.Sprintf("\t\\assume*{}{%s}{}", stmt.ToLatex())
}

// FlagderivOutput renders a proof as a flagderiv environment. It fails
// when two consecutive lines have contexts that are not
// prefix-compatible.
func FlagderivOutput(p Proof) (string, error) {
	var currentCtx []judgement.Statement
	out := []string{"\\begin{flagderiv}"}
	for idx := range p.Lines {
		jdg := p.Lines[idx]
		ref := p.Refs[idx]
		if !validContextChange(currentCtx, jdg.Context) {
			return "", fmt.Errorf("invalid context change: [%s] to [%s]",
				judgement.CtxString(currentCtx), judgement.CtxString(jdg.Context))
		}
		if len(currentCtx) < len(jdg.Context) {
			for _, stmt := range jdg.Context[len(currentCtx):] {
				out = append(out, assumeLine(stmt))
			}
		}
		if len(currentCtx) > len(jdg.Context) {
			out = append(out, concludeLine(len(currentCtx)-len(jdg.Context), idx, jdg.Statement, ref))
		} else {
			out = append(out, stepLine(idx, jdg.Statement, ref))
		}
		currentCtx = jdg.Context
	}
	out = append(out, "\\end{flagderiv}")
	return strings.Join(out, "\n"), nil
}
