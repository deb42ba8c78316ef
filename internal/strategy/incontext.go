package strategy

import (
	"fmt"

	"github.com/pwalrus/stoch-coc/internal/goal"
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// InContext discharges a goal whose type appears literally as the type
// of a binding in scope, one Final per matching binding.
type InContext struct{}

func (InContext) SubGoals(ex term.CCExpression,
	context, innerContext []judgement.Statement,
	concs []judgement.Judgement,
	defs []judgement.Definition) ([]goal.Goal, error) {

	full := fullContext(context, innerContext)
	var out []goal.Goal
	for _, stmt := range full {
		if term.Equal(stmt.Type, ex) {
			out = append(out, goal.Final{Lines: []judgement.Judgement{{
				Context:   full,
				Statement: stmt,
			}}})
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("not in context: %s", ex.ToLatex())
	}
	return out, nil
}
