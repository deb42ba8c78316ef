package strategy

import (
	"fmt"

	"github.com/pwalrus/stoch-coc/internal/goal"
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// KnownArrow spots bindings (or conclusions) whose arrow chain ends
// with the goal's arrow chain and applies them to placeholder
// arguments, one Initial subgoal per missing antecedent.
type KnownArrow struct{}

// arrEndsWith reports whether lhs strictly extends rhs on the left.
func arrEndsWith(lhs, rhs []term.CCExpression) bool {
	if len(lhs) <= len(rhs) || len(lhs) == 0 {
		return false
	}
	off := len(lhs) - len(rhs)
	for i, e := range rhs {
		if !term.Equal(lhs[i+off], e) {
			return false
		}
	}
	return true
}

func isArrowMatch(lhs, rhs term.CCExpression) bool {
	return arrEndsWith(term.ArrowChain(lhs), term.ArrowChain(rhs))
}

func makeInitGoals(lhs, rhs term.CCExpression, innerContext []judgement.Statement) []goal.Goal {
	lArr := term.ArrowChain(lhs)
	rArr := term.ArrowChain(rhs)
	var out []goal.Goal
	for _, ex := range lArr[:len(lArr)-len(rArr)] {
		out = append(out, goal.Initial{Ex: ex, LocalCtx: innerContext})
	}
	return out
}

func makeInst(head term.CCExpression, n int) term.CCExpression {
	out := head
	for i := 0; i < n; i++ {
		out = term.Appl{Left: out, Right: term.Var{Name: term.Placeholder(i)}}
	}
	return out
}

func (KnownArrow) SubGoals(ex term.CCExpression,
	context, innerContext []judgement.Statement,
	concs []judgement.Judgement,
	defs []judgement.Definition) ([]goal.Goal, error) {

	full := fullContext(context, innerContext)
	known := append(append([]judgement.Statement{}, full...), usableConc(full, concs)...)

	var out []goal.Goal
	for _, stmt := range known {
		if !isArrowMatch(stmt.Type, ex) {
			continue
		}
		inits := makeInitGoals(stmt.Type, ex, innerContext)
		out = append(out, goal.Unpacked{
			Inst:     makeInst(stmt.Subject, len(inits)),
			Ex:       ex,
			Subs:     inits,
			LocalCtx: innerContext,
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("failed to find arrow matching: %s", ex.ToLatex())
	}
	return out, nil
}
