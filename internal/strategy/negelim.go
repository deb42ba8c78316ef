package strategy

import (
	"fmt"

	"github.com/pwalrus/stoch-coc/internal/goal"
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// NegElim proves any goal from a contradiction in scope: with n : ¬A
// and a : A known, the term n a goal inhabits the goal type (¬A is
// A→⊥ and ⊥ is Πx:⋆.x).
type NegElim struct{}

func findNegMatches(known []judgement.Statement) (neg, base judgement.Statement, ok bool) {
	for _, stmtNeg := range known {
		inner, isNeg := term.IsNeg(stmtNeg.Type)
		if !isNeg {
			continue
		}
		for _, stmtBase := range known {
			if term.AlphaEquiv(stmtBase.Type, inner) {
				return stmtNeg, stmtBase, true
			}
		}
	}
	return judgement.Statement{}, judgement.Statement{}, false
}

func (NegElim) SubGoals(ex term.CCExpression,
	context, innerContext []judgement.Statement,
	concs []judgement.Judgement,
	defs []judgement.Definition) ([]goal.Goal, error) {

	full := fullContext(context, innerContext)
	known := append(append([]judgement.Statement{}, full...), usableConc(full, concs)...)

	neg, base, ok := findNegMatches(known)
	if !ok {
		return nil, fmt.Errorf("no appropriate negations to apply")
	}
	subject := term.Appl{
		Left:  term.Appl{Left: neg.Subject, Right: base.Subject},
		Right: ex,
	}
	fin := goal.Final{Lines: []judgement.Judgement{{
		Context:   full,
		Statement: judgement.Statement{Subject: subject, Type: ex},
	}}}
	return []goal.Goal{fin}, nil
}
