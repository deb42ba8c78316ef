package search

import (
	"fmt"

	"github.com/pwalrus/stoch-coc/internal/goal"
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// Finalize turns a closed partial solution into one whose goals are
// all Final: every Unpacked schema is collapsed by substituting the
// proved subterms for its sub_{i} placeholders and appending the
// concluding judgement.
func Finalize(partial goal.PartialSol, defs []judgement.Definition) (goal.PartialSol, error) {
	goals := make([]goal.Goal, len(partial.Goals))
	for i, g := range partial.Goals {
		fin, err := finalizeGoal(g, partial.Context, defs)
		if err != nil {
			return goal.PartialSol{}, err
		}
		goals[i] = fin
	}
	return goal.PartialSol{Context: partial.Context, Goals: goals}, nil
}

func finalizeGoal(g goal.Goal, ambient []judgement.Statement, defs []judgement.Definition) (goal.Goal, error) {
	switch x := g.(type) {
	case goal.Final:
		return x, nil
	case goal.Initial:
		return nil, fmt.Errorf("cannot finalize initial: %s", x.ToLatex())
	case goal.Unpacked:
		witness := x.Inst
		var lines []judgement.Judgement
		for i, sub := range x.Subs {
			fin, err := finalizeGoal(sub, ambient, defs)
			if err != nil {
				return nil, err
			}
			f, ok := fin.(goal.Final)
			if !ok || len(f.Lines) == 0 {
				return nil, fmt.Errorf("subgoal %d of %s did not finalize", i, x.Ex.ToLatex())
			}
			last := f.Lines[len(f.Lines)-1]
			witness = fillPlaceholder(witness, term.Placeholder(i), last.Statement.Subject)
			lines = append(lines, f.Lines...)
		}
		conclusion := judgement.Judgement{
			Context:   append(append([]judgement.Statement{}, ambient...), x.LocalCtx...),
			Statement: judgement.Statement{Subject: witness, Type: x.Ex},
		}
		return goal.Final{Lines: dedupLines(append(lines, conclusion))}, nil
	}
	return nil, fmt.Errorf("unknown goal kind")
}

func dedupLines(lines []judgement.Judgement) []judgement.Judgement {
	var out []judgement.Judgement
	for _, l := range lines {
		seen := false
		for _, s := range out {
			if s.Equal(l) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, l)
		}
	}
	return out
}

func fillPlaceholder(e term.CCExpression, name string, repl term.CCExpression) term.CCExpression {
	switch x := e.(type) {
	case term.Var:
		if x.Name == name {
			return repl
		}
	case term.Appl:
		return term.Appl{Left: fillPlaceholder(x.Left, name, repl), Right: fillPlaceholder(x.Right, name, repl)}
	case term.Abs:
		return term.Abs{Arg: x.Arg, ArgType: fillPlaceholder(x.ArgType, name, repl), Body: fillPlaceholder(x.Body, name, repl)}
	case term.TypeAbs:
		return term.TypeAbs{Arg: x.Arg, ArgType: fillPlaceholder(x.ArgType, name, repl), Body: fillPlaceholder(x.Body, name, repl)}
	}
	return e
}
