// Package rules implements the primitive inference rules of the
// calculus. Every rule has a forward mode (Apply builds the conclusion
// from premises, nil when the premises do not fit) and a backward mode
// (Validate re-checks a claimed conclusion, tolerating α-renaming but
// never accepting an underivable line).
package rules

import (
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// DerRule is one primitive derivation rule.
type DerRule interface {
	// Name is the stable tag used in derivation references.
	Name() string
	// SignatureSize is the number of premise judgements.
	SignatureSize() int
	// Apply is the canonical forward application; nil means the
	// premises do not match the rule's shape.
	Apply(lhs, rhs *judgement.Judgement) *judgement.Judgement
	// Validate re-checks a claimed conclusion against premises.
	Validate(lhs, rhs *judgement.Judgement, claimed judgement.Judgement) bool
	// ValidateMany lets a rule consume any number of premises; it
	// returns the indices of the premises used. Only inst implements
	// it.
	ValidateMany(premises []judgement.Judgement, claimed judgement.Judgement) ([]int, bool)
}

// baseRule supplies the default no-op ValidateMany.
type baseRule struct{}

func (baseRule) ValidateMany([]judgement.Judgement, judgement.Judgement) ([]int, bool) {
	return nil, false
}

// applyValidate is the default backward mode: forward-apply and
// compare up to α-equivalence.
func applyValidate(r DerRule, lhs, rhs *judgement.Judgement, claimed judgement.Judgement) bool {
	j := r.Apply(lhs, rhs)
	return j != nil && j.AlphaEquiv(claimed)
}

// altContext rewrites the binding of newVar back to oldVar, leaving
// everything else untouched. Used to enumerate alternative abstraction
// bindings.
func altContext(oldVar, newVar string, vType term.CCExpression, context []judgement.Statement) []judgement.Statement {
	out := make([]judgement.Statement, 0, len(context))
	for _, stmt := range context {
		name, isVar := term.VarStr(stmt.Subject)
		if term.Equal(stmt.Type, vType) && isVar && name == newVar {
			out = append(out, judgement.Statement{Subject: term.Var{Name: oldVar}, Type: stmt.Type})
		} else {
			out = append(out, stmt)
		}
	}
	return out
}

func altVars(vType term.CCExpression, context []judgement.Statement) []string {
	var out []string
	for _, stmt := range context {
		if term.Equal(stmt.Type, vType) {
			if name, ok := term.VarStr(stmt.Subject); ok {
				out = append(out, name)
			}
		}
	}
	return out
}

// abstAlternatives lists the judgements obtained by rewriting an
// abstraction with any equivalently-typed binder currently in scope.
func abstAlternatives(jdg judgement.Judgement) []judgement.Judgement {
	ab, ok := jdg.Statement.Subject.(term.Abs)
	if !ok {
		return nil
	}
	var out []judgement.Judgement
	for _, newVar := range altVars(ab.ArgType, jdg.Context) {
		ctx := altContext(ab.Arg, newVar, ab.ArgType, jdg.Context)
		out = append(out, judgement.Judgement{
			Defs:    jdg.Defs,
			Context: ctx,
			Statement: judgement.Statement{
				Subject: term.Abs{Arg: newVar, ArgType: ab.ArgType, Body: ab.Body},
				Type:    jdg.Statement.Type,
			},
		})
	}
	return out
}

func abstAltEquiv(j1, j2 judgement.Judgement) bool {
	for _, alt := range abstAlternatives(j1) {
		if alt.AlphaEquiv(j2) {
			return true
		}
	}
	return false
}

// DoTypeSub substitutes the chosen argument subjects for a
// definition's parameters inside one of its types.
func DoTypeSub(sType term.CCExpression, def judgement.Definition, argMap []judgement.Statement) term.CCExpression {
	out := sType
	for i, tok := range def.Args {
		if i < len(argMap) {
			out = term.Substitute(out, tok, argMap[i].Subject)
		}
	}
	return out
}
