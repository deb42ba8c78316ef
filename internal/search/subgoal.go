package search

import (
	"fmt"

	"github.com/pwalrus/stoch-coc/internal/goal"
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/strategy"
)

// subGoalsFor consults every strategy in order and concatenates their
// proposals for one open goal. Individual strategy misses are not
// errors; no proposals at all is.
func subGoalsFor(g goal.Initial, context []judgement.Statement,
	concs []judgement.Judgement, defs []judgement.Definition) ([]goal.Goal, error) {

	var out []goal.Goal
	for _, strat := range strategy.StandardStrategy() {
		goals, err := strat.SubGoals(g.Ex, context, g.LocalCtx, concs, defs)
		if err != nil {
			continue
		}
		out = append(out, goals...)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no strategies returned paths for %s", g.Ex.ToLatex())
	}
	return out, nil
}

// NextSolutions refines a partial solution: every active goal is
// offered to the strategies and each proposal yields one successor
// with that goal replaced.
func NextSolutions(partial goal.PartialSol, defs []judgement.Definition) ([]goal.PartialSol, error) {
	active := partial.Active()
	if len(active) == 0 {
		return nil, fmt.Errorf("sol has no path forward")
	}
	var out []goal.PartialSol
	for _, wc := range active {
		init, ok := wc.Goal.(goal.Initial)
		if !ok {
			continue
		}
		proposals, err := subGoalsFor(init, partial.Context, wc.Conc, defs)
		if err != nil {
			continue
		}
		for _, p := range proposals {
			out = append(out, partial.Replace(wc.Goal, p))
		}
	}
	return out, nil
}
