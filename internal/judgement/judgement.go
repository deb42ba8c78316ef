package judgement

import "github.com/pwalrus/stoch-coc/internal/term"

// Judgement asserts Γ ⊢ subject : type under a set of visible
// definitions.
type Judgement struct {
	Defs      []Definition
	Context   []Statement
	Statement Statement
}

func (j Judgement) ToLatex() string {
	stmt := "\\vdash " + j.Statement.ToLatex()
	if len(j.Context) == 0 {
		return stmt
	}
	return CtxString(j.Context) + " " + stmt
}

func (j Judgement) Equal(o Judgement) bool {
	if len(j.Defs) != len(o.Defs) || len(j.Context) != len(o.Context) {
		return false
	}
	for i := range j.Defs {
		if !j.Defs[i].Equal(o.Defs[i]) {
			return false
		}
	}
	for i := range j.Context {
		if !j.Context[i].Equal(o.Context[i]) {
			return false
		}
	}
	return j.Statement.Equal(o.Statement)
}

// SameOrWeaker reports whether this judgement has the same statement
// as rhs and a context containing every statement of rhs's context.
func (j Judgement) SameOrWeaker(rhs Judgement) bool {
	if !j.Statement.Equal(rhs.Statement) {
		return false
	}
	return WeakerEq(j.Context, rhs.Context)
}

// contextMap pairs up two contexts of equal length and equal types,
// recording how subjects were renamed. Nil is returned when the
// contexts cannot be aligned.
func contextMap(lhs, rhs []Statement) (map[string]string, bool) {
	if len(lhs) != len(rhs) {
		return nil, false
	}
	out := map[string]string{}
	for i := range lhs {
		if !term.Equal(lhs[i].Type, rhs[i].Type) {
			return nil, false
		}
		if !term.Equal(lhs[i].Subject, rhs[i].Subject) {
			out[lhs[i].Subject.ToLatex()] = rhs[i].Subject.ToLatex()
		}
	}
	return out, true
}

// AlphaEquiv reports equality of two judgements up to a consistent
// renaming of their context subjects and of bound variables.
func (j Judgement) AlphaEquiv(rhs Judgement) bool {
	cmap, ok := contextMap(j.Context, rhs.Context)
	if !ok {
		return false
	}
	subject := rhs.Statement.Subject
	sType := rhs.Statement.Type
	for k, v := range cmap {
		repl := term.Var{Name: k}
		subject = term.Substitute(subject, v, repl)
		sType = term.Substitute(sType, v, repl)
	}
	return j.Statement.AlphaEquiv(Statement{Subject: subject, Type: sType})
}
