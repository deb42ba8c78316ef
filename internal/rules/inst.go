package rules

import (
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// InstRule instantiates a named definition: from context-consistent
// bindings discharging the definition's argument types conclude
// Γ ⊢ name⟨a₁..aₙ⟩ : body.type[args].
type InstRule struct {
	Defs []judgement.Definition
}

func (InstRule) Name() string { return "inst" }

func (InstRule) SignatureSize() int { return 1 }

// Apply instantiates the first definition whose argument types can all
// be discharged, in order, by bindings of the premise's context.
func (r InstRule) Apply(lhs, rhs *judgement.Judgement) *judgement.Judgement {
	if lhs == nil || rhs != nil {
		return nil
	}
	for _, def := range r.Defs {
		if jdg := instantiateFromContext(def, *lhs); jdg != nil {
			return jdg
		}
	}
	return nil
}

func instantiateFromContext(def judgement.Definition, premise judgement.Judgement) *judgement.Judgement {
	typeList, err := def.TypeList()
	if err != nil {
		return nil
	}
	chosen := make([]judgement.Statement, 0, len(def.Args))
	for i, expected := range typeList {
		for j := 0; j < i && j < len(chosen); j++ {
			expected = term.Substitute(expected, def.Args[j], chosen[j].Subject)
		}
		found := false
		for _, stmt := range premise.Context {
			if term.AlphaEquiv(stmt.Type, expected) {
				chosen = append(chosen, stmt)
				found = true
				break
			}
		}
		if !found {
			return nil
		}
	}
	args := make([]term.CCExpression, len(chosen))
	for i, stmt := range chosen {
		args[i] = stmt.Subject
	}
	stmt := judgement.Statement{
		Subject: term.DefAppl{Name: def.Name, Args: args},
		Type:    DoTypeSub(def.Body.Type, def, chosen),
	}
	return &judgement.Judgement{Defs: premise.Defs, Context: premise.Context, Statement: stmt}
}

// Validate treats the single premise as the discharge of every
// argument; multi-argument instantiations are handled by ValidateMany.
func (r InstRule) Validate(lhs, rhs *judgement.Judgement, claimed judgement.Judgement) bool {
	if rhs != nil {
		return false
	}
	var premises []judgement.Judgement
	if lhs != nil {
		premises = []judgement.Judgement{*lhs}
	}
	_, ok := r.ValidateMany(premises, claimed)
	return ok
}

// ValidateMany checks that the claimed line instantiates a known
// definition and that every argument is discharged by some premise
// whose context the claimed context subsumes. It returns the premise
// index used for each argument in order.
func (r InstRule) ValidateMany(premises []judgement.Judgement, claimed judgement.Judgement) ([]int, bool) {
	da, ok := claimed.Statement.Subject.(term.DefAppl)
	if !ok {
		return nil, false
	}
	for _, def := range r.Defs {
		if def.Name != da.Name || len(def.Args) != len(da.Args) {
			continue
		}
		typeList, err := def.TypeList()
		if err != nil {
			continue
		}
		idxs := make([]int, 0, len(da.Args))
		matched := true
		for i, argEx := range da.Args {
			expected := typeList[i]
			for j := 0; j < i; j++ {
				expected = term.Substitute(expected, def.Args[j], da.Args[j])
			}
			found := -1
			for k, p := range premises {
				if !judgement.WeakerEq(claimed.Context, p.Context) {
					continue
				}
				if term.AlphaEquiv(p.Statement.Subject, argEx) && term.AlphaEquiv(p.Statement.Type, expected) {
					found = k
					break
				}
			}
			if found < 0 {
				matched = false
				break
			}
			idxs = append(idxs, found)
		}
		if !matched {
			continue
		}
		want := def.Body.Type
		for j := range def.Args {
			want = term.Substitute(want, def.Args[j], da.Args[j])
		}
		if term.AlphaEquiv(claimed.Statement.Type, want) {
			return idxs, true
		}
	}
	return nil, false
}
