package strategy

import (
	"fmt"

	"github.com/pwalrus/stoch-coc/internal/goal"
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// ProdElim eliminates a genuine product in scope: for a binding
// p : Πx:A.B and a binding of type A, it records the application as a
// conclusion and re-poses the original goal with that conclusion
// available.
type ProdElim struct{}

// findProducts keeps the bindings whose type is a product that is not
// an arrow (the binder is actually used).
func findProducts(known []judgement.Statement) []judgement.Statement {
	var out []judgement.Statement
	for _, stmt := range known {
		if _, _, isArrow := term.IsArrow(stmt.Type); isArrow {
			continue
		}
		if _, ok := stmt.Type.(term.TypeAbs); ok {
			out = append(out, stmt)
		}
	}
	return out
}

type prodMatch struct {
	arg     term.CCExpression
	prod    term.CCExpression
	newType term.CCExpression
}

func findProdMatches(prods, known []judgement.Statement) []prodMatch {
	var out []prodMatch
	for _, stmt := range known {
		for _, prod := range prods {
			ta, ok := prod.Type.(term.TypeAbs)
			if !ok {
				continue
			}
			if term.Equal(ta.ArgType, stmt.Type) {
				out = append(out, prodMatch{
					arg:     stmt.Subject,
					prod:    prod.Subject,
					newType: term.Substitute(ta.Body, ta.Arg, stmt.Subject),
				})
			}
		}
	}
	return out
}

func (ProdElim) SubGoals(ex term.CCExpression,
	context, innerContext []judgement.Statement,
	concs []judgement.Judgement,
	defs []judgement.Definition) ([]goal.Goal, error) {

	full := fullContext(context, innerContext)
	known := append(append([]judgement.Statement{}, full...), usableConc(full, concs)...)
	matches := findProdMatches(findProducts(known), known)

	var out []goal.Goal
	for _, m := range matches {
		newStmt := judgement.Statement{
			Subject: term.Appl{Left: m.prod, Right: m.arg},
			Type:    m.newType,
		}
		fin := goal.Final{Lines: []judgement.Judgement{{
			Context:   full,
			Statement: newStmt,
		}}}
		init := goal.Initial{Ex: ex, LocalCtx: innerContext}
		out = append(out, goal.Unpacked{
			Inst:     term.Var{Name: term.Placeholder(1)},
			Ex:       ex,
			Subs:     []goal.Goal{fin, init},
			LocalCtx: innerContext,
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no appropriate products to instantiate")
	}
	return out, nil
}
