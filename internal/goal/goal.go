// Package goal models the search tree of one proof attempt: open and
// closed goals, goal counting, and immutable partial solutions.
package goal

import (
	"strings"

	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// GoalCount is the additive triple of Initial, Unpacked and Final
// goals in a tree.
type GoalCount struct {
	I int
	U int
	F int
}

func (c GoalCount) Add(o GoalCount) GoalCount {
	return GoalCount{I: c.I + o.I, U: c.U + o.U, F: c.F + o.F}
}

// Goal is one node of the search tree.
type Goal interface {
	goalNode()
	ToLatex() string
	Count() GoalCount
	Equal(Goal) bool
	// Replace substitutes one sub-goal by another, matching by
	// structural equality, preserving everything else.
	Replace(old, repl Goal) Goal
	active(concs []judgement.Judgement) []WithConc
}

// Initial is an unexpanded goal: prove Ex under the ambient context
// extended by LocalCtx.
type Initial struct {
	Ex       term.CCExpression
	LocalCtx []judgement.Statement
}

// Unpacked is a goal a strategy has committed to a schema for: Inst is
// a term template containing placeholder variables sub_{0}, sub_{1},
// …, and Subs are the ordered subgoals whose solutions replace them.
type Unpacked struct {
	Inst     term.CCExpression
	Ex       term.CCExpression
	Subs     []Goal
	LocalCtx []judgement.Statement
}

// Final is a closed goal holding the partial derivation that proves
// it; the last line is the statement the goal asserts.
type Final struct {
	Lines []judgement.Judgement
}

// WithConc pairs a still-open goal with the judgements concluded
// earlier in the same Unpacked parents.
type WithConc struct {
	Conc []judgement.Judgement
	Goal Goal
}

func (Initial) goalNode()  {}
func (Unpacked) goalNode() {}
func (Final) goalNode()    {}

func (g Initial) ToLatex() string {
	return "?? : " + g.Ex.ToLatex()
}

func (g Unpacked) ToLatex() string {
	parts := make([]string, 0, len(g.Subs)+1)
	for _, s := range g.Subs {
		parts = append(parts, s.ToLatex())
	}
	parts = append(parts, "?? : "+g.Ex.ToLatex())
	return strings.Join(parts, "\n")
}

func (g Final) ToLatex() string {
	parts := make([]string, len(g.Lines))
	for i, l := range g.Lines {
		parts[i] = l.ToLatex()
	}
	return strings.Join(parts, "\n")
}

func (Initial) Count() GoalCount { return GoalCount{I: 1} }

func (g Unpacked) Count() GoalCount {
	out := GoalCount{U: 1}
	for _, s := range g.Subs {
		out = out.Add(s.Count())
	}
	return out
}

func (Final) Count() GoalCount { return GoalCount{F: 1} }

func (g Initial) Equal(o Goal) bool {
	other, ok := o.(Initial)
	return ok && term.Equal(g.Ex, other.Ex) && ctxEqual(g.LocalCtx, other.LocalCtx)
}

func (g Unpacked) Equal(o Goal) bool {
	other, ok := o.(Unpacked)
	if !ok || !term.Equal(g.Inst, other.Inst) || !term.Equal(g.Ex, other.Ex) {
		return false
	}
	if !ctxEqual(g.LocalCtx, other.LocalCtx) || len(g.Subs) != len(other.Subs) {
		return false
	}
	for i := range g.Subs {
		if !g.Subs[i].Equal(other.Subs[i]) {
			return false
		}
	}
	return true
}

func (g Final) Equal(o Goal) bool {
	other, ok := o.(Final)
	if !ok || len(g.Lines) != len(other.Lines) {
		return false
	}
	for i := range g.Lines {
		if !g.Lines[i].Equal(other.Lines[i]) {
			return false
		}
	}
	return true
}

func ctxEqual(a, b []judgement.Statement) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func (g Initial) Replace(old, repl Goal) Goal { return g }

func (g Unpacked) Replace(old, repl Goal) Goal {
	subs := make([]Goal, len(g.Subs))
	for i, s := range g.Subs {
		if s.Equal(old) {
			subs[i] = repl
		} else {
			subs[i] = s.Replace(old, repl)
		}
	}
	return Unpacked{Inst: g.Inst, Ex: g.Ex, Subs: subs, LocalCtx: g.LocalCtx}
}

func (g Final) Replace(old, repl Goal) Goal { return g }

func (g Initial) active(concs []judgement.Judgement) []WithConc {
	return []WithConc{{Conc: concs, Goal: g}}
}

// active on an Unpacked first gathers the conclusions of its Final
// children, then reports every Initial below with that inherited list.
func (g Unpacked) active(concs []judgement.Judgement) []WithConc {
	inherited := append([]judgement.Judgement{}, concs...)
	for _, s := range g.Subs {
		if f, ok := s.(Final); ok && len(f.Lines) > 0 {
			inherited = append(inherited, f.Lines[len(f.Lines)-1])
		}
	}
	var out []WithConc
	for _, s := range g.Subs {
		out = append(out, s.active(inherited)...)
	}
	return out
}

func (Final) active([]judgement.Judgement) []WithConc { return nil }

// PartialSol is a snapshot of one proof attempt: the ambient context
// plus the goal forest. It is immutable; Replace returns a successor.
type PartialSol struct {
	Context []judgement.Statement
	Goals   []Goal
}

func (p PartialSol) ToLatex() string {
	parts := make([]string, 0, len(p.Goals)+1)
	parts = append(parts, judgement.CtxString(p.Context))
	for _, g := range p.Goals {
		parts = append(parts, g.ToLatex())
	}
	return strings.Join(parts, "\n")
}

func (p PartialSol) Count() GoalCount {
	out := GoalCount{}
	for _, g := range p.Goals {
		out = out.Add(g.Count())
	}
	return out
}

func (p PartialSol) Replace(old, repl Goal) PartialSol {
	goals := make([]Goal, len(p.Goals))
	for i, g := range p.Goals {
		if g.Equal(old) {
			goals[i] = repl
		} else {
			goals[i] = g.Replace(old, repl)
		}
	}
	return PartialSol{Context: p.Context, Goals: goals}
}

// Active lists the still-open Initial goals paired with the
// conclusions available to them.
func (p PartialSol) Active() []WithConc {
	var out []WithConc
	for _, g := range p.Goals {
		out = append(out, g.active(nil)...)
	}
	return out
}

// Key is the de-duplication hash of a queued partial solution: the
// printed form of its last goal.
func (p PartialSol) Key() string {
	if len(p.Goals) == 0 {
		return ""
	}
	return p.Goals[len(p.Goals)-1].ToLatex()
}

func (p PartialSol) Equal(o PartialSol) bool {
	if len(p.Goals) != len(o.Goals) || !ctxEqual(p.Context, o.Context) {
		return false
	}
	for i := range p.Goals {
		if !p.Goals[i].Equal(o.Goals[i]) {
			return false
		}
	}
	return true
}
