package judgement

import (
	"fmt"
	"strings"

	"github.com/pwalrus/stoch-coc/internal/term"
)

// Definition is a named, parameterised abbreviation for a typed term.
// Every argument name appears as a subject in the definition's
// context; the body states the definition's value and its type.
type Definition struct {
	Context []Statement
	Name    string
	Args    []string
	Body    Statement
}

func (d Definition) ToLatex() string {
	return fmt.Sprintf("%s \\vartriangleright %s \\langle %s \\rangle := %s",
		CtxString(d.Context), d.Name, strings.Join(d.Args, ", "), d.Body.ToLatex())
}

func (d Definition) Equal(o Definition) bool {
	if d.Name != o.Name || len(d.Args) != len(o.Args) || len(d.Context) != len(o.Context) {
		return false
	}
	for i := range d.Args {
		if d.Args[i] != o.Args[i] {
			return false
		}
	}
	for i := range d.Context {
		if !d.Context[i].Equal(o.Context[i]) {
			return false
		}
	}
	return d.Body.Equal(o.Body)
}

// TypeList returns the argument types in declared order. It fails when
// an argument has no matching context entry.
func (d Definition) TypeList() ([]term.CCExpression, error) {
	out := make([]term.CCExpression, 0, len(d.Args))
	for _, arg := range d.Args {
		found := false
		for _, stmt := range d.Context {
			if name, ok := term.VarStr(stmt.Subject); ok && name == arg {
				out = append(out, stmt.Type)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("definition %s: argument %s has no context entry", d.Name, arg)
		}
	}
	return out, nil
}

// ArgStatements returns the context bindings for the arguments, in
// declared argument order.
func (d Definition) ArgStatements() []Statement {
	var out []Statement
	for _, arg := range d.Args {
		for _, stmt := range d.Context {
			if name, ok := term.VarStr(stmt.Subject); ok && name == arg {
				out = append(out, stmt)
				break
			}
		}
	}
	return out
}
