package rules

import (
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// ApplRule applies a function to an argument: from Γ ⊢ F : Πx:A.B and
// Γ ⊢ N:A conclude Γ ⊢ F N : B[x↦N].
type ApplRule struct {
	baseRule
}

func (ApplRule) Name() string { return "appl" }

func (ApplRule) SignatureSize() int { return 2 }

func (ApplRule) Apply(lhs, rhs *judgement.Judgement) *judgement.Judgement {
	if lhs == nil || rhs == nil {
		return nil
	}
	ta, ok := lhs.Statement.Type.(term.TypeAbs)
	if !ok {
		return nil
	}
	if !term.AlphaEquiv(ta.ArgType, rhs.Statement.Type) {
		return nil
	}
	stmt := judgement.Statement{
		Subject: term.Appl{Left: lhs.Statement.Subject, Right: rhs.Statement.Subject},
		Type:    term.Substitute(ta.Body, ta.Arg, rhs.Statement.Subject),
	}
	return &judgement.Judgement{Defs: lhs.Defs, Context: lhs.Context, Statement: stmt}
}

func (r ApplRule) Validate(lhs, rhs *judgement.Judgement, claimed judgement.Judgement) bool {
	return applyValidate(r, lhs, rhs, claimed)
}
