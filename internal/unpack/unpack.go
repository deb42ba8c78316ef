// Package unpack expands a fully-formed typed term into the complete
// list of intermediate judgements a line-by-line checker accepts.
package unpack

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/rules"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// UnpackTerm derives Γ ⊢ ex : type(ex) by structural recursion,
// producing every intermediate judgement with duplicates removed
// (first occurrence wins). Failures carry the chain of subterms being
// unpacked.
func UnpackTerm(ex term.CCExpression, context []judgement.Statement, defs []judgement.Definition) ([]judgement.Judgement, error) {
	lines, err := unpack(ex, context, defs)
	if err != nil {
		return nil, errors.Wrapf(err, "While unpacking %s, other error", ex.ToLatex())
	}
	return lines, nil
}

func unpack(ex term.CCExpression, context []judgement.Statement, defs []judgement.Definition) ([]judgement.Judgement, error) {
	switch x := ex.(type) {
	case term.Star:
		return unpackStar(), nil
	case term.Var:
		return unpackVar(x.Name, context, defs)
	case term.TypeAbs:
		return unpackTypeAbs(x, context, defs)
	case term.Abs:
		return unpackAbs(x, context, defs)
	case term.Appl:
		return unpackAppl(x, context, defs)
	case term.DefAppl:
		return unpackDef(x, context, defs)
	}
	return nil, fmt.Errorf("cannot unpack %s", ex.ToLatex())
}

func recur(ex term.CCExpression, context []judgement.Statement, defs []judgement.Definition) ([]judgement.Judgement, error) {
	lines, err := unpack(ex, context, defs)
	if err != nil {
		return nil, errors.Wrapf(err, "While unpacking %s, other error", ex.ToLatex())
	}
	return lines, nil
}

func unpackStar() []judgement.Judgement {
	return []judgement.Judgement{{
		Statement: judgement.Statement{Subject: term.Star{}, Type: term.Square{}},
	}}
}

// unpackVar looks the variable up, derives its type in the context
// with the variable's own (last) binding removed, and concludes with
// the lookup line under the full context.
func unpackVar(name string, context []judgement.Statement, defs []judgement.Definition) ([]judgement.Judgement, error) {
	var vType term.CCExpression
	lastIdx := -1
	for i, stmt := range context {
		if n, ok := term.VarStr(stmt.Subject); ok && n == name {
			vType = stmt.Type
			lastIdx = i
		}
	}
	if lastIdx < 0 {
		return nil, fmt.Errorf("variable %s not found in context", name)
	}
	reduced := make([]judgement.Statement, 0, len(context)-1)
	reduced = append(reduced, context[:lastIdx]...)
	reduced = append(reduced, context[lastIdx+1:]...)

	typeLines, err := recur(vType, reduced, defs)
	if err != nil {
		return nil, err
	}
	last := judgement.Judgement{
		Context:   context,
		Statement: judgement.Statement{Subject: term.Var{Name: name}, Type: vType},
	}
	return removeDup(append(typeLines, last)), nil
}

// unpackTypeAbs derives a product. The binder is renamed to the
// canonical fresh name for the ambient context before recursion, so
// nested derivations agree on binder choices.
func unpackTypeAbs(x term.TypeAbs, context []judgement.Statement, defs []judgement.Definition) ([]judgement.Judgement, error) {
	fresh := judgement.NextUnusedVar(context)
	body := x.Body
	if fresh != x.Arg {
		body = term.Substitute(x.Body, x.Arg, term.Var{Name: fresh})
	}
	p1, err := recur(x.ArgType, context, defs)
	if err != nil {
		return nil, err
	}
	extended := append(append([]judgement.Statement{}, context...),
		judgement.Statement{Subject: term.Var{Name: fresh}, Type: x.ArgType})
	p2, err := recur(body, extended, defs)
	if err != nil {
		return nil, err
	}
	last := judgement.Judgement{
		Context: context,
		Statement: judgement.Statement{
			Subject: term.TypeAbs{Arg: fresh, ArgType: x.ArgType, Body: body},
			Type:    p2[len(p2)-1].Statement.Type,
		},
	}
	return removeDup(append(append(p1, p2...), last)), nil
}

// unpackAbs derives an abstraction: the body is unpacked under a fresh
// binder, the matching product is derived, and the original λ is
// concluded at that product type.
func unpackAbs(x term.Abs, context []judgement.Statement, defs []judgement.Definition) ([]judgement.Judgement, error) {
	fresh := judgement.NextUnusedVar(context)
	body := x.Body
	if fresh != x.Arg {
		body = term.Substitute(x.Body, x.Arg, term.Var{Name: fresh})
	}
	extended := append(append([]judgement.Statement{}, context...),
		judgement.Statement{Subject: term.Var{Name: fresh}, Type: x.ArgType})
	p1, err := recur(body, extended, defs)
	if err != nil {
		return nil, err
	}
	newType := term.TypeAbs{Arg: fresh, ArgType: x.ArgType, Body: p1[len(p1)-1].Statement.Type}
	p2, err := recur(newType, context, defs)
	if err != nil {
		return nil, err
	}
	last := judgement.Judgement{
		Context: context,
		Statement: judgement.Statement{
			Subject: term.Abs{Arg: x.Arg, ArgType: x.ArgType, Body: x.Body},
			Type:    newType,
		},
	}
	return removeDup(append(append(p1, p2...), last)), nil
}

func unpackAppl(x term.Appl, context []judgement.Statement, defs []judgement.Definition) ([]judgement.Judgement, error) {
	p1, err := recur(x.Left, context, defs)
	if err != nil {
		return nil, err
	}
	p2, err := recur(x.Right, context, defs)
	if err != nil {
		return nil, err
	}
	fType, ok := p1[len(p1)-1].Statement.Type.(term.TypeAbs)
	if !ok {
		return nil, fmt.Errorf("application head %s does not have a product type", x.Left.ToLatex())
	}
	last := judgement.Judgement{
		Context: context,
		Statement: judgement.Statement{
			Subject: term.Appl{Left: x.Left, Right: x.Right},
			Type:    term.Substitute(fType.Body, fType.Arg, x.Right),
		},
	}
	return removeDup(append(append(p2, p1...), last)), nil
}

func unpackDef(x term.DefAppl, context []judgement.Statement, defs []judgement.Definition) ([]judgement.Judgement, error) {
	argLines := make([][]judgement.Judgement, len(x.Args))
	for i, arg := range x.Args {
		lines, err := recur(arg, context, defs)
		if err != nil {
			return nil, err
		}
		argLines[i] = lines
	}
	def, ok := findMatchingDef(x, argLines, defs)
	if !ok {
		return nil, fmt.Errorf("no definition matches %s", x.ToLatex())
	}
	known := make([]judgement.Statement, len(argLines))
	var out []judgement.Judgement
	for i, lines := range argLines {
		known[i] = lines[len(lines)-1].Statement
		out = append(out, lines...)
	}
	last := judgement.Judgement{
		Context: context,
		Statement: judgement.Statement{
			Subject: term.DefAppl{Name: x.Name, Args: x.Args},
			Type:    rules.DoTypeSub(def.Body.Type, def, known),
		},
	}
	return removeDup(append(out, last)), nil
}

func findMatchingDef(x term.DefAppl, argLines [][]judgement.Judgement, defs []judgement.Definition) (judgement.Definition, bool) {
	for _, def := range defs {
		if def.Name != x.Name || len(def.Args) != len(x.Args) {
			continue
		}
		typeList, err := def.TypeList()
		if err != nil {
			continue
		}
		matched := true
		for i, lines := range argLines {
			expected := typeList[i]
			for j := 0; j < i; j++ {
				expected = term.Substitute(expected, def.Args[j], x.Args[j])
			}
			if !term.AlphaEquiv(lines[len(lines)-1].Statement.Type, expected) {
				matched = false
				break
			}
		}
		if matched {
			return def, true
		}
	}
	return judgement.Definition{}, false
}

func removeDup(lines []judgement.Judgement) []judgement.Judgement {
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
