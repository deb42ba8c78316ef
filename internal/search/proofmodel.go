package search

import (
	"github.com/hashicorp/go-hclog"

	"github.com/pwalrus/stoch-coc/internal/goal"
	"github.com/pwalrus/stoch-coc/internal/judgement"
)

// ProofSearchModel plugs partial solutions into the generic driver.
// The weight prefers low open-goal counts, with Initials penalised
// hardest: 10 − (20i + 10u + f).
type ProofSearchModel struct {
	Defs   []judgement.Definition
	Logger hclog.Logger
}

func (ProofSearchModel) Done(x goal.PartialSol) bool {
	return x.Count().I == 0
}

func (m ProofSearchModel) Next(x goal.PartialSol) []goal.PartialSol {
	out, err := NextSolutions(x, m.Defs)
	if err != nil {
		if m.Logger != nil {
			m.Logger.Debug("dead branch", "reason", err.Error())
		}
		return nil
	}
	return out
}

func (ProofSearchModel) Weight(x goal.PartialSol) int {
	c := x.Count()
	return 10 - (c.I*20 + c.U*10 + c.F)
}

func (m ProofSearchModel) Finalize(x goal.PartialSol) (goal.PartialSol, error) {
	return Finalize(x, m.Defs)
}

func (ProofSearchModel) Key(x goal.PartialSol) string {
	return x.Key()
}

func (ProofSearchModel) Equal(a, b goal.PartialSol) bool {
	return a.Equal(b)
}
