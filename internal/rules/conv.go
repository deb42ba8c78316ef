package rules

import (
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// ConvRule converts a judgement to a β-equivalent type: from Γ ⊢ M:A
// and Γ ⊢ B:s with A β-equivalent to B (and A ≠ B) conclude Γ ⊢ M:B.
type ConvRule struct {
	baseRule
}

func (ConvRule) Name() string { return "conv" }

func (ConvRule) SignatureSize() int { return 2 }

func (ConvRule) Apply(lhs, rhs *judgement.Judgement) *judgement.Judgement {
	if lhs == nil || rhs == nil {
		return nil
	}
	if !term.IsSort(rhs.Statement.Type) {
		return nil
	}
	if term.Equal(lhs.Statement.Type, rhs.Statement.Subject) {
		return nil
	}
	if !term.BetaEquiv(lhs.Statement.Type, rhs.Statement.Subject) {
		return nil
	}
	stmt := judgement.Statement{Subject: lhs.Statement.Subject, Type: rhs.Statement.Subject}
	return &judgement.Judgement{Defs: lhs.Defs, Context: lhs.Context, Statement: stmt}
}

func (r ConvRule) Validate(lhs, rhs *judgement.Judgement, claimed judgement.Judgement) bool {
	return applyValidate(r, lhs, rhs, claimed)
}
