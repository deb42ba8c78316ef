// Package strategy holds the pluggable goal-refinement heuristics of
// the proof search. A strategy inspects one open goal and proposes
// zero or more refinements, typically an Unpacked schema with
// subgoals, or a Final when the goal is immediately discharged.
package strategy

import (
	"github.com/pwalrus/stoch-coc/internal/goal"
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// ProofStrat proposes refinements for the goal type ex, given the
// ambient context, the goal's local context, the conclusions reached
// so far in the same solution, and the visible definitions. An error
// means the strategy does not apply; it is never fatal.
type ProofStrat interface {
	SubGoals(ex term.CCExpression,
		context, innerContext []judgement.Statement,
		concs []judgement.Judgement,
		defs []judgement.Definition) ([]goal.Goal, error)
}

// StandardStrategy returns the strategies in their contract order.
func StandardStrategy() []ProofStrat {
	return []ProofStrat{
		InContext{},
		UnpackTypeAbs{},
		KnownArrow{},
		ProdElim{},
		DefKnown{},
		NegElim{},
	}
}

func fullContext(context, innerContext []judgement.Statement) []judgement.Statement {
	out := make([]judgement.Statement, 0, len(context)+len(innerContext))
	out = append(out, context...)
	return append(out, innerContext...)
}

// usableConc keeps the conclusions whose contexts the full context
// subsumes, as plain statements.
func usableConc(full []judgement.Statement, concs []judgement.Judgement) []judgement.Statement {
	var out []judgement.Statement
	for _, j := range concs {
		if judgement.WeakerEq(full, j.Context) {
			out = append(out, j.Statement)
		}
	}
	return out
}
