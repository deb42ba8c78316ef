// Package judgement holds the typed-binding layer of the engine:
// statements, ordered contexts, judgements and named definitions.
package judgement

import (
	"strings"

	"github.com/pwalrus/stoch-coc/internal/term"
)

// Statement is a typed binding: subject : type. A context is an
// ordered slice of statements; order matters for dependent types.
type Statement struct {
	Subject term.CCExpression
	Type    term.CCExpression
}

func (s Statement) ToLatex() string {
	return s.Subject.ToLatex() + " : " + s.Type.ToLatex()
}

func (s Statement) Equal(o Statement) bool {
	return term.Equal(s.Subject, o.Subject) && term.Equal(s.Type, o.Type)
}

func (s Statement) AlphaEquiv(o Statement) bool {
	return term.AlphaEquiv(s.Subject, o.Subject) && term.AlphaEquiv(s.Type, o.Type)
}

// IsPrimitive reports whether the statement's subject is the opaque
// primitive placeholder.
func (s Statement) IsPrimitive() bool {
	_, ok := s.Subject.(term.Prim)
	return ok
}

// SubjectInContext reports whether ex appears (up to α-equivalence) as
// the subject of a binding.
func SubjectInContext(ex term.CCExpression, context []Statement) bool {
	for _, stmt := range context {
		if term.AlphaEquiv(stmt.Subject, ex) {
			return true
		}
	}
	return false
}

// ContextContains reports whether the context holds a structurally
// equal statement.
func ContextContains(context []Statement, stmt Statement) bool {
	for _, s := range context {
		if s.Equal(stmt) {
			return true
		}
	}
	return false
}

// WeakerEq reports whether every statement of rhs is present in lhs,
// i.e. lhs is the same context or a weakening of rhs.
func WeakerEq(lhs, rhs []Statement) bool {
	for _, stmt := range rhs {
		if !ContextContains(lhs, stmt) {
			return false
		}
	}
	return true
}

// CtxString renders a context as a comma-separated list.
func CtxString(context []Statement) string {
	parts := make([]string, len(context))
	for i, stmt := range context {
		parts[i] = stmt.ToLatex()
	}
	return strings.Join(parts, ", ")
}

// NextUnusedVar returns a term-level name fresh for the context's
// subjects.
func NextUnusedVar(context []Statement) string {
	return term.NextUnusedVar(subjectNames(context))
}

// NextUnusedTypeVar returns a type-level name fresh for the context's
// subjects and subject types.
func NextUnusedTypeVar(context []Statement) string {
	used := subjectNames(context)
	for _, stmt := range context {
		if name, ok := term.VarStr(stmt.Type); ok {
			used = append(used, name)
		}
	}
	return term.NextUnusedTypeVar(used)
}

func subjectNames(context []Statement) []string {
	var used []string
	for _, stmt := range context {
		if name, ok := term.VarStr(stmt.Subject); ok {
			used = append(used, name)
		}
	}
	return used
}

// Abstractions collects the binder bindings occurring anywhere inside
// an expression, in traversal order.
func Abstractions(ex term.CCExpression) []Statement {
	switch x := ex.(type) {
	case term.Appl:
		return append(Abstractions(x.Left), Abstractions(x.Right)...)
	case term.Abs:
		out := []Statement{{Subject: term.Var{Name: x.Arg}, Type: x.ArgType}}
		out = append(out, Abstractions(x.ArgType)...)
		return append(out, Abstractions(x.Body)...)
	case term.TypeAbs:
		out := []Statement{{Subject: term.Var{Name: x.Arg}, Type: x.ArgType}}
		out = append(out, Abstractions(x.ArgType)...)
		return append(out, Abstractions(x.Body)...)
	}
	return nil
}
