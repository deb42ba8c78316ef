// Package term implements the expression model of the calculus of
// constructions: variables, the two sorts, the opaque primitive,
// applications, λ- and Π-abstractions, and named-definition
// invocations. Expressions are immutable value trees; every operation
// returns a new tree.
package term

import "strings"

// CCExpression is the interface implemented by all expression variants.
type CCExpression interface {
	expressionNode()
	// ToLatex renders the expression in the surface syntax, applying
	// the sugared forms (arrow, negation, conjunction, disjunction,
	// contradiction) and minimal-bracket conventions. The output is
	// deterministic and doubles as the search-queue hash.
	ToLatex() string
}

// Var is an identifier.
type Var struct {
	Name string
}

// Star is the sort of types.
type Star struct{}

// Square is the sort of kinds.
type Square struct{}

// Prim is the opaque placeholder standing for a yet-unknown primitive.
// It is never type-checked as itself, only via a definition
// instantiating it.
type Prim struct{}

// Appl is an application of Left to Right.
type Appl struct {
	Left  CCExpression
	Right CCExpression
}

// Abs is a term abstraction λArg:ArgType.Body.
type Abs struct {
	Arg     string
	ArgType CCExpression
	Body    CCExpression
}

// TypeAbs is a dependent product ΠArg:ArgType.Body.
type TypeAbs struct {
	Arg     string
	ArgType CCExpression
	Body    CCExpression
}

// DefAppl is an invocation of a named definition with argument
// expressions, written name⟨a₁, …, aₙ⟩.
type DefAppl struct {
	Name string
	Args []CCExpression
}

func (Var) expressionNode()     {}
func (Star) expressionNode()    {}
func (Square) expressionNode()  {}
func (Prim) expressionNode()    {}
func (Appl) expressionNode()    {}
func (Abs) expressionNode()     {}
func (TypeAbs) expressionNode() {}
func (DefAppl) expressionNode() {}

func (e Var) ToLatex() string     { return print(e, precTop) }
func (e Star) ToLatex() string    { return print(e, precTop) }
func (e Square) ToLatex() string  { return print(e, precTop) }
func (e Prim) ToLatex() string    { return print(e, precTop) }
func (e Appl) ToLatex() string    { return print(e, precTop) }
func (e Abs) ToLatex() string     { return print(e, precTop) }
func (e TypeAbs) ToLatex() string { return print(e, precTop) }
func (e DefAppl) ToLatex() string { return print(e, precTop) }

// Printing precedence contexts, loosest to tightest. A subexpression is
// parenthesised when its own level is looser than what the position
// admits.
const (
	precTop      = iota // statement position, binder body, parenthesised group
	precConnRhs         // right operand of →, ∨, ∧
	precConnLhs         // left operand of →, ∨, ∧
	precApplLeft        // head of an application
	precApplRight       // argument of an application, operand of ¬
)

type exprKind int

const (
	kindAtom exprKind = iota
	kindNeg
	kindAnd
	kindOr
	kindArrow
	kindBinder
	kindAppl
)

// kindOf classifies an expression for the printer. Detection order
// matters: ⊥, ∧ and ∨ are Π-patterns that must win over the raw
// binder case, and ¬ is an arrow to ⊥ that must win over the plain
// arrow case.
func kindOf(e CCExpression) exprKind {
	if IsContradiction(e) {
		return kindAtom
	}
	if _, _, ok := IsAnd(e); ok {
		return kindAnd
	}
	if _, _, ok := IsOr(e); ok {
		return kindOr
	}
	if _, ok := IsNeg(e); ok {
		return kindNeg
	}
	if _, _, ok := IsArrow(e); ok {
		return kindArrow
	}
	switch e.(type) {
	case Abs, TypeAbs:
		return kindBinder
	case Appl:
		return kindAppl
	}
	return kindAtom
}

func print(e CCExpression, prec int) string {
	switch kindOf(e) {
	case kindAtom:
		return printAtom(e)
	case kindNeg:
		// ¬ binds the shortest following expression, so it never needs
		// its own parentheses; only a compound operand does.
		inner, _ := IsNeg(e)
		return "\\neg " + print(inner, precApplRight)
	case kindAnd:
		l, r, _ := IsAnd(e)
		return printConn(l, r, "\\wedge", kindAnd, prec)
	case kindOr:
		l, r, _ := IsOr(e)
		return printConn(l, r, "\\vee", kindOr, prec)
	case kindArrow:
		l, r, _ := IsArrow(e)
		return printConn(l, r, "\\to", kindArrow, prec)
	case kindBinder:
		var head, arg string
		var argType, body CCExpression
		switch x := e.(type) {
		case Abs:
			head, arg, argType, body = "\\lambda", x.Arg, x.ArgType, x.Body
		case TypeAbs:
			head, arg, argType, body = "\\prod", x.Arg, x.ArgType, x.Body
		}
		s := head + " " + arg + " : " + print(argType, precTop) + " . " + print(body, precTop)
		if prec >= precConnRhs {
			return "(" + s + ")"
		}
		return s
	case kindAppl:
		x := e.(Appl)
		s := print(x.Left, precApplLeft) + " " + print(x.Right, precApplRight)
		if prec >= precApplRight {
			return "(" + s + ")"
		}
		return s
	}
	return ""
}

// printConn renders a binary connective. The right operand stays bare
// only for the same connective (all three are right-associative); a
// different connective is parenthesised so the printed form re-parses
// to the same term.
func printConn(l, r CCExpression, op string, kind exprKind, prec int) string {
	ls := print(l, precConnLhs)
	var rs string
	if rk := kindOf(r); (rk == kindAnd || rk == kindOr || rk == kindArrow) && rk != kind {
		rs = "(" + print(r, precTop) + ")"
	} else {
		rs = print(r, precConnRhs)
	}
	s := ls + " " + op + " " + rs
	if prec >= precConnLhs {
		return "(" + s + ")"
	}
	return s
}

func printAtom(e CCExpression) string {
	if IsContradiction(e) {
		return "\\perp"
	}
	switch x := e.(type) {
	case Var:
		return x.Name
	case Star:
		return "\\ast"
	case Square:
		return "\\square"
	case Prim:
		return "\\independent"
	case DefAppl:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = print(a, precTop)
		}
		return x.Name + " \\langle " + strings.Join(args, ", ") + " \\rangle"
	}
	return ""
}
