package rules

import (
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// VarRule extends the context with a fresh variable of a derived type:
// from Γ ⊢ A : s conclude Γ, x:A ⊢ x : A.
type VarRule struct {
	baseRule
}

func (VarRule) Name() string { return "var" }

func (VarRule) SignatureSize() int { return 1 }

func (VarRule) Apply(lhs, rhs *judgement.Judgement) *judgement.Judgement {
	if lhs == nil || rhs != nil {
		return nil
	}
	stmt := lhs.Statement
	if _, isStar := stmt.Type.(term.Star); isStar {
		if _, isVar := stmt.Subject.(term.Var); isVar {
			next := judgement.NextUnusedVar(lhs.Context)
			newStmt := judgement.Statement{Subject: term.Var{Name: next}, Type: stmt.Subject}
			return &judgement.Judgement{
				Defs:      lhs.Defs,
				Context:   append(append([]judgement.Statement{}, lhs.Context...), newStmt),
				Statement: newStmt,
			}
		}
	}
	if _, isStar := stmt.Subject.(term.Star); isStar {
		next := judgement.NextUnusedTypeVar(lhs.Context)
		newStmt := judgement.Statement{Subject: term.Var{Name: next}, Type: term.Star{}}
		return &judgement.Judgement{
			Defs:      lhs.Defs,
			Context:   append(append([]judgement.Statement{}, lhs.Context...), newStmt),
			Statement: newStmt,
		}
	}
	return nil
}

func (VarRule) Validate(lhs, rhs *judgement.Judgement, claimed judgement.Judgement) bool {
	if rhs != nil || lhs == nil {
		return false
	}
	if len(claimed.Context) != len(lhs.Context)+1 {
		return false
	}
	newCtx := append(append([]judgement.Statement{}, lhs.Context...), claimed.Statement)
	hasType := term.AlphaEquiv(lhs.Statement.Subject, claimed.Statement.Type)
	for _, stmt := range lhs.Context {
		if term.AlphaEquiv(stmt.Subject, claimed.Statement.Type) {
			hasType = true
			break
		}
	}
	_, typeIsStar := claimed.Statement.Type.(term.Star)
	if !hasType && !typeIsStar {
		return false
	}
	for i := range claimed.Context {
		if !claimed.Context[i].AlphaEquiv(newCtx[i]) {
			return false
		}
	}
	return true
}
