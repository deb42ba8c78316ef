package rules

import (
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// FormRule forms a product: from Γ ⊢ A:⋆ and Γ, x:A ⊢ B:s conclude
// Γ ⊢ Πx:A.B : s.
type FormRule struct {
	baseRule
}

func (FormRule) Name() string { return "form" }

func (FormRule) SignatureSize() int { return 2 }

func findMatchingStmt(context []judgement.Statement, subject term.CCExpression) (judgement.Statement, bool) {
	for _, stmt := range context {
		if term.Equal(stmt.Type, subject) {
			return stmt, true
		}
	}
	return judgement.Statement{}, false
}

func removeStmt(context []judgement.Statement, stmt judgement.Statement) []judgement.Statement {
	var out []judgement.Statement
	for _, s := range context {
		if !s.Equal(stmt) {
			out = append(out, s)
		}
	}
	return out
}

func (FormRule) Apply(lhs, rhs *judgement.Judgement) *judgement.Judgement {
	if lhs == nil || rhs == nil {
		return nil
	}
	stmt, ok := findMatchingStmt(rhs.Context, lhs.Statement.Subject)
	if !ok {
		return nil
	}
	name, isVar := term.VarStr(stmt.Subject)
	if !isVar {
		return nil
	}
	newType := term.TypeAbs{Arg: name, ArgType: stmt.Type, Body: rhs.Statement.Subject}
	return &judgement.Judgement{
		Defs:      lhs.Defs,
		Context:   removeStmt(rhs.Context, stmt),
		Statement: judgement.Statement{Subject: newType, Type: rhs.Statement.Type},
	}
}

func (FormRule) Validate(lhs, rhs *judgement.Judgement, claimed judgement.Judgement) bool {
	if lhs == nil || rhs == nil {
		return false
	}
	if !term.IsSort(lhs.Statement.Type) || !term.IsSort(rhs.Statement.Type) {
		return false
	}
	ta, ok := claimed.Statement.Subject.(term.TypeAbs)
	if !ok || !term.IsSort(claimed.Statement.Type) {
		return false
	}
	if !term.Equal(ta.ArgType, lhs.Statement.Subject) {
		return false
	}
	if len(rhs.Context) != len(claimed.Context)+1 {
		return false
	}
	last := rhs.Context[len(rhs.Context)-1]
	if !term.Equal(last.Type, ta.ArgType) {
		return false
	}
	if !term.AlphaEquiv(term.Substitute(ta.Body, ta.Arg, last.Subject), rhs.Statement.Subject) {
		return false
	}
	return judgement.WeakerEq(rhs.Context, claimed.Context)
}
