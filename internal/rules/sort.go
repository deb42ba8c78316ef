package rules

import (
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// SortRule is the axiom ⊢ ⋆ : □.
type SortRule struct {
	baseRule
}

func (SortRule) Name() string { return "sort" }

func (SortRule) SignatureSize() int { return 0 }

func (SortRule) Apply(lhs, rhs *judgement.Judgement) *judgement.Judgement {
	if lhs != nil || rhs != nil {
		return nil
	}
	return &judgement.Judgement{
		Statement: judgement.Statement{Subject: term.Star{}, Type: term.Square{}},
	}
}

func (r SortRule) Validate(lhs, rhs *judgement.Judgement, claimed judgement.Judgement) bool {
	j := r.Apply(lhs, rhs)
	return j != nil && len(claimed.Context) == 0 && j.Statement.Equal(claimed.Statement)
}
