package strategy

import (
	"fmt"

	"github.com/pwalrus/stoch-coc/internal/goal"
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// UnpackTypeAbs introduces a fresh assumption for a product goal
// Πx:A.B: the schema is λy:A.sub_{0} with one subgoal B[x↦y] under
// the local context extended by y:A.
type UnpackTypeAbs struct{}

func (UnpackTypeAbs) SubGoals(ex term.CCExpression,
	context, innerContext []judgement.Statement,
	concs []judgement.Judgement,
	defs []judgement.Definition) ([]goal.Goal, error) {

	ta, ok := ex.(term.TypeAbs)
	if !ok {
		return nil, fmt.Errorf("not a type abstraction: %s", ex.ToLatex())
	}
	newVar := judgement.NextUnusedVar(fullContext(context, innerContext))
	newStmt := judgement.Statement{Subject: term.Var{Name: newVar}, Type: ta.ArgType}
	subs := []goal.Goal{goal.Initial{
		Ex:       term.Substitute(ta.Body, ta.Arg, newStmt.Subject),
		LocalCtx: append(append([]judgement.Statement{}, innerContext...), newStmt),
	}}
	inst := term.Abs{
		Arg:     newVar,
		ArgType: ta.ArgType,
		Body:    term.Var{Name: term.Placeholder(0)},
	}
	return []goal.Goal{goal.Unpacked{
		Inst:     inst,
		Ex:       ta,
		Subs:     subs,
		LocalCtx: innerContext,
	}}, nil
}
