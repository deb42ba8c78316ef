package rules

import (
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// AbstRule abstracts a derivation over its last assumption: from
// Γ, x:A ⊢ M:B and Γ ⊢ Πx:A.B : s conclude Γ ⊢ λx:A.M : Πx:A.B.
type AbstRule struct {
	baseRule
}

func (AbstRule) Name() string { return "abst" }

func (AbstRule) SignatureSize() int { return 2 }

func (AbstRule) Apply(lhs, rhs *judgement.Judgement) *judgement.Judgement {
	if lhs == nil || rhs == nil {
		return nil
	}
	ta, ok := rhs.Statement.Subject.(term.TypeAbs)
	if !ok {
		return nil
	}
	if !term.Equal(lhs.Statement.Type, ta.Body) {
		return nil
	}
	mStmt, ok := findMatchingStmt(lhs.Context, ta.ArgType)
	if !ok {
		return nil
	}
	name, isVar := term.VarStr(mStmt.Subject)
	if !isVar {
		return nil
	}
	stmt := judgement.Statement{
		Subject: term.Abs{Arg: name, ArgType: mStmt.Type, Body: lhs.Statement.Subject},
		Type:    term.TypeAbs{Arg: ta.Arg, ArgType: ta.ArgType, Body: ta.Body},
	}
	return &judgement.Judgement{
		Defs:      lhs.Defs,
		Context:   removeStmt(lhs.Context, mStmt),
		Statement: stmt,
	}
}

// Validate accepts the canonical conclusion and the alternative
// bindings: a λ may be written with any equivalently-typed binder in
// scope.
func (r AbstRule) Validate(lhs, rhs *judgement.Judgement, claimed judgement.Judgement) bool {
	j := r.Apply(lhs, rhs)
	if j == nil {
		return false
	}
	return j.AlphaEquiv(claimed) || abstAltEquiv(*j, claimed)
}
