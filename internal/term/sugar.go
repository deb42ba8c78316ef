package term

import "fmt"

// The sugared sub-forms are structural patterns over Π, never new
// variants: an arrow is a product whose binder does not occur in the
// body, ⊥ is Πx:⋆.x, ¬A is A→⊥, and ∧/∨ are the Church encodings over
// a fresh propositional variable.

// IsArrow matches A→B: a product whose binder is not free in the body.
func IsArrow(e CCExpression) (lhs, rhs CCExpression, ok bool) {
	ta, isTA := e.(TypeAbs)
	if !isTA || containsStr(FreeVar(ta.Body), ta.Arg) {
		return nil, nil, false
	}
	return ta.ArgType, ta.Body, true
}

// IsContradiction matches ⊥ = Πx:⋆.x.
func IsContradiction(e CCExpression) bool {
	ta, ok := e.(TypeAbs)
	if !ok {
		return false
	}
	if _, isStar := ta.ArgType.(Star); !isStar {
		return false
	}
	v, isVar := ta.Body.(Var)
	return isVar && v.Name == ta.Arg
}

// IsNeg matches ¬A = A→⊥ and returns A.
func IsNeg(e CCExpression) (CCExpression, bool) {
	lhs, rhs, ok := IsArrow(e)
	if !ok || !IsContradiction(rhs) {
		return nil, false
	}
	return lhs, true
}

// IsAnd matches the Church conjunction ΠC:⋆.(A→B→C)→C.
func IsAnd(e CCExpression) (lhs, rhs CCExpression, ok bool) {
	ta, isTA := e.(TypeAbs)
	if !isTA {
		return nil, nil, false
	}
	if _, isStar := ta.ArgType.(Star); !isStar {
		return nil, nil, false
	}
	c := ta.Arg
	first, outerR, ok := IsArrow(ta.Body)
	if !ok || !isVarNamed(outerR, c) {
		return nil, nil, false
	}
	a, second, ok := IsArrow(first)
	if !ok {
		return nil, nil, false
	}
	b, innerR, ok := IsArrow(second)
	if !ok || !isVarNamed(innerR, c) {
		return nil, nil, false
	}
	if containsStr(FreeVar(a), c) || containsStr(FreeVar(b), c) {
		return nil, nil, false
	}
	return a, b, true
}

// IsOr matches the Church disjunction ΠC:⋆.(A→C)→(B→C)→C.
func IsOr(e CCExpression) (lhs, rhs CCExpression, ok bool) {
	ta, isTA := e.(TypeAbs)
	if !isTA {
		return nil, nil, false
	}
	if _, isStar := ta.ArgType.(Star); !isStar {
		return nil, nil, false
	}
	c := ta.Arg
	first, mid, ok := IsArrow(ta.Body)
	if !ok {
		return nil, nil, false
	}
	a, firstR, ok := IsArrow(first)
	if !ok || !isVarNamed(firstR, c) {
		return nil, nil, false
	}
	second, midR, ok := IsArrow(mid)
	if !ok || !isVarNamed(midR, c) {
		return nil, nil, false
	}
	b, secondR, ok := IsArrow(second)
	if !ok || !isVarNamed(secondR, c) {
		return nil, nil, false
	}
	if containsStr(FreeVar(a), c) || containsStr(FreeVar(b), c) {
		return nil, nil, false
	}
	return a, b, true
}

func isVarNamed(e CCExpression, name string) bool {
	v, ok := e.(Var)
	return ok && v.Name == name
}

// ArrowChain flattens a right-nested arrow into its antecedents
// followed by the final consequent. A non-arrow is its own chain.
func ArrowChain(e CCExpression) []CCExpression {
	if lhs, rhs, ok := IsArrow(e); ok {
		return append([]CCExpression{lhs}, ArrowChain(rhs)...)
	}
	return []CCExpression{e}
}

// Arrow builds A→B with a binder fresh for the body (free and bound
// names both avoided, so printing stays unambiguous).
func Arrow(lhs, rhs CCExpression) CCExpression {
	used := unionStr(FreeVar(rhs), BinderNames(rhs))
	return TypeAbs{Arg: NextUnusedVar(used), ArgType: lhs, Body: rhs}
}

// Contradiction builds ⊥ = Πx:⋆.x.
func Contradiction() CCExpression {
	return TypeAbs{Arg: "x", ArgType: Star{}, Body: Var{Name: "x"}}
}

// Neg builds ¬A = A→⊥.
func Neg(a CCExpression) CCExpression {
	return Arrow(a, Contradiction())
}

// And builds the Church conjunction ΠC:⋆.(A→B→C)→C.
func And(a, b CCExpression) CCExpression {
	c := NextUnusedTypeVar(unionStr(FreeVar(a), FreeVar(b)))
	cv := Var{Name: c}
	second := Arrow(b, cv)
	first := Arrow(a, second)
	return TypeAbs{Arg: c, ArgType: Star{}, Body: Arrow(first, cv)}
}

// Or builds the Church disjunction ΠC:⋆.(A→C)→(B→C)→C.
func Or(a, b CCExpression) CCExpression {
	c := NextUnusedTypeVar(unionStr(FreeVar(a), FreeVar(b)))
	cv := Var{Name: c}
	first := Arrow(a, cv)
	second := Arrow(b, cv)
	mid := Arrow(second, cv)
	return TypeAbs{Arg: c, ArgType: Star{}, Body: Arrow(first, mid)}
}

// Equality builds the Leibniz encoding of x =_{A} y:
// ΠP:A→⋆.(P x)→(P y) with P fresh for all three operands.
func Equality(lhs, eType, rhs CCExpression) CCExpression {
	used := unionStr(FreeVar(lhs), unionStr(FreeVar(eType), FreeVar(rhs)))
	used = unionStr(used, unionStr(BinderNames(lhs), unionStr(BinderNames(eType), BinderNames(rhs))))
	p := NextUnusedTypeVar(used)
	pv := Var{Name: p}
	propType := Arrow(eType, Star{})
	lProp := Appl{Left: pv, Right: lhs}
	rProp := Appl{Left: pv, Right: rhs}
	return TypeAbs{Arg: p, ArgType: propType, Body: Arrow(lProp, rProp)}
}

// NextUnusedVar returns the first lowercase letter in 'a'..'y' absent
// from used, falling back to "x".
func NextUnusedVar(used []string) string {
	for ch := 'a'; ch < 'z'; ch++ {
		s := string(ch)
		if !containsStr(used, s) {
			return s
		}
	}
	return "x"
}

// NextUnusedTypeVar is NextUnusedVar over 'A'..'Y'.
func NextUnusedTypeVar(used []string) string {
	for ch := 'A'; ch < 'Z'; ch++ {
		s := string(ch)
		if !containsStr(used, s) {
			return s
		}
	}
	return "x"
}

// Placeholder returns the name of the i-th substitution placeholder
// used in goal templates.
func Placeholder(i int) string {
	return fmt.Sprintf("sub_{%d}", i)
}
