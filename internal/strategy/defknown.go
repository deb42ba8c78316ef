package strategy

import (
	"fmt"

	"github.com/pwalrus/stoch-coc/internal/goal"
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// DefKnown instantiates a definition whose argument context can be
// satisfied by the known bindings, provided the instantiated type is
// not already known, and re-poses the original goal with the new
// conclusion available.
type DefKnown struct{}

// matchingArgs enumerates all ways of discharging the undecided
// argument bindings from the known statements, substituting each
// choice into the remaining argument types.
func matchingArgs(known, decided, undecided []judgement.Statement) [][]judgement.Statement {
	if len(undecided) == 0 {
		return [][]judgement.Statement{append([]judgement.Statement{}, decided...)}
	}
	var out [][]judgement.Statement
	for _, stmt := range known {
		if !term.Equal(stmt.Type, undecided[0].Type) {
			continue
		}
		name, ok := term.VarStr(undecided[0].Subject)
		if !ok {
			continue
		}
		newDecided := append(append([]judgement.Statement{}, decided...), stmt)
		newUndecided := make([]judgement.Statement, 0, len(undecided)-1)
		for _, u := range undecided[1:] {
			newUndecided = append(newUndecided, judgement.Statement{
				Subject: u.Subject,
				Type:    term.Substitute(u.Type, name, stmt.Subject),
			})
		}
		out = append(out, matchingArgs(known, newDecided, newUndecided)...)
	}
	return out
}

type defMatch struct {
	def  judgement.Definition
	subs []judgement.Statement
}

func findDefMatches(defs []judgement.Definition, known []judgement.Statement) []defMatch {
	var out []defMatch
	for _, def := range defs {
		for _, subs := range matchingArgs(known, nil, def.ArgStatements()) {
			out = append(out, defMatch{def: def, subs: subs})
		}
	}
	return out
}

func makeNewType(def judgement.Definition, subs []judgement.Statement) term.CCExpression {
	out := def.Body.Type
	for i, arg := range def.Args {
		if i < len(subs) {
			out = term.Substitute(out, arg, subs[i].Subject)
		}
	}
	return out
}

func typeAlreadyKnown(newType term.CCExpression, known []judgement.Statement) bool {
	for _, stmt := range known {
		if term.AlphaEquiv(stmt.Type, newType) {
			return true
		}
	}
	return false
}

func (DefKnown) SubGoals(ex term.CCExpression,
	context, innerContext []judgement.Statement,
	concs []judgement.Judgement,
	defs []judgement.Definition) ([]goal.Goal, error) {

	full := fullContext(context, innerContext)
	known := append(append([]judgement.Statement{}, full...), usableConc(full, concs)...)

	var out []goal.Goal
	for _, m := range findDefMatches(defs, known) {
		newType := makeNewType(m.def, m.subs)
		if typeAlreadyKnown(newType, known) {
			continue
		}
		args := make([]term.CCExpression, len(m.subs))
		for i, s := range m.subs {
			args[i] = s.Subject
		}
		newStmt := judgement.Statement{
			Subject: term.DefAppl{Name: m.def.Name, Args: args},
			Type:    newType,
		}
		fin := goal.Final{Lines: []judgement.Judgement{{
			Context:   full,
			Statement: newStmt,
		}}}
		init := goal.Initial{Ex: ex, LocalCtx: innerContext}
		out = append(out, goal.Unpacked{
			Inst:     term.Var{Name: term.Placeholder(1)},
			Ex:       ex,
			Subs:     []goal.Goal{fin, init},
			LocalCtx: innerContext,
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no satisfiable definitions to instantiate")
	}
	return out, nil
}
