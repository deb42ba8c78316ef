package rules

import (
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// WeakRule weakens a judgement with an extra binding: from Γ ⊢ M:A and
// Γ ⊢ B:s conclude Γ, x:B ⊢ M:A for a fresh x.
type WeakRule struct {
	baseRule
}

func (WeakRule) Name() string { return "weak" }

func (WeakRule) SignatureSize() int { return 2 }

func (WeakRule) Apply(lhs, rhs *judgement.Judgement) *judgement.Judgement {
	if lhs == nil || rhs == nil {
		return nil
	}
	if !term.IsSort(rhs.Statement.Type) {
		return nil
	}
	next := judgement.NextUnusedVar(lhs.Context)
	stmt := judgement.Statement{Subject: term.Var{Name: next}, Type: rhs.Statement.Subject}
	return &judgement.Judgement{
		Defs:      lhs.Defs,
		Context:   append(append([]judgement.Statement{}, lhs.Context...), stmt),
		Statement: lhs.Statement,
	}
}

func (WeakRule) Validate(lhs, rhs *judgement.Judgement, claimed judgement.Judgement) bool {
	if lhs == nil || rhs == nil {
		return false
	}
	if !term.IsSort(rhs.Statement.Type) {
		return false
	}
	if !lhs.Statement.Equal(claimed.Statement) {
		return false
	}
	if len(claimed.Context) == 0 {
		return false
	}
	last := claimed.Context[len(claimed.Context)-1]
	if !term.Equal(last.Type, rhs.Statement.Subject) {
		return false
	}
	return judgement.WeakerEq(claimed.Context, lhs.Context)
}
