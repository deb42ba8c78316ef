package term

// Equal reports structural equality of two expressions, binder names
// included. Use AlphaEquiv for equality up to renaming.
func Equal(a, b CCExpression) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x.Name == y.Name
	case Star:
		_, ok := b.(Star)
		return ok
	case Square:
		_, ok := b.(Square)
		return ok
	case Prim:
		_, ok := b.(Prim)
		return ok
	case Appl:
		y, ok := b.(Appl)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case Abs:
		y, ok := b.(Abs)
		return ok && x.Arg == y.Arg && Equal(x.ArgType, y.ArgType) && Equal(x.Body, y.Body)
	case TypeAbs:
		y, ok := b.(TypeAbs)
		return ok && x.Arg == y.Arg && Equal(x.ArgType, y.ArgType) && Equal(x.Body, y.Body)
	case DefAppl:
		y, ok := b.(DefAppl)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Substitute replaces every free occurrence of token by repl. A binder
// with the same name shadows: neither its type nor its body is
// touched. When the binder would capture a free variable of repl, the
// binder is α-renamed to a fresh name before descending.
func Substitute(e CCExpression, token string, repl CCExpression) CCExpression {
	switch x := e.(type) {
	case Var:
		if x.Name == token {
			return repl
		}
		return x
	case Appl:
		return Appl{Left: Substitute(x.Left, token, repl), Right: Substitute(x.Right, token, repl)}
	case Abs:
		if x.Arg == token {
			return x
		}
		arg, body := avoidCapture(x.Arg, x.Body, token, repl)
		return Abs{Arg: arg, ArgType: Substitute(x.ArgType, token, repl), Body: Substitute(body, token, repl)}
	case TypeAbs:
		if x.Arg == token {
			return x
		}
		arg, body := avoidCapture(x.Arg, x.Body, token, repl)
		return TypeAbs{Arg: arg, ArgType: Substitute(x.ArgType, token, repl), Body: Substitute(body, token, repl)}
	case DefAppl:
		args := make([]CCExpression, len(x.Args))
		for i, a := range x.Args {
			args[i] = Substitute(a, token, repl)
		}
		return DefAppl{Name: x.Name, Args: args}
	}
	return e
}

// avoidCapture renames a binder when the substitution would capture a
// free variable of the replacement inside the body.
func avoidCapture(arg string, body CCExpression, token string, repl CCExpression) (string, CCExpression) {
	if !containsStr(FreeVar(repl), arg) || !containsStr(FreeVar(body), token) {
		return arg, body
	}
	used := append(FreeVar(body), FreeVar(repl)...)
	used = append(used, arg, token)
	fresh := NextUnusedVar(used)
	return fresh, Substitute(body, arg, Var{Name: fresh})
}

// AlphaEquiv reports equality up to consistent renaming of bound
// variables in Abs and Pi binders.
func AlphaEquiv(a, b CCExpression) bool {
	switch x := a.(type) {
	case Appl:
		y, ok := b.(Appl)
		return ok && AlphaEquiv(x.Left, y.Left) && AlphaEquiv(x.Right, y.Right)
	case Abs:
		y, ok := b.(Abs)
		if !ok {
			return false
		}
		return alphaBinder(x.Arg, x.ArgType, x.Body, y.Arg, y.ArgType, y.Body)
	case TypeAbs:
		y, ok := b.(TypeAbs)
		if !ok {
			return false
		}
		return alphaBinder(x.Arg, x.ArgType, x.Body, y.Arg, y.ArgType, y.Body)
	case DefAppl:
		y, ok := b.(DefAppl)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !AlphaEquiv(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	}
	return Equal(a, b)
}

func alphaBinder(xArg string, xType, xBody CCExpression, yArg string, yType, yBody CCExpression) bool {
	if xArg == yArg {
		return AlphaEquiv(xType, yType) && AlphaEquiv(xBody, yBody)
	}
	if containsStr(FreeVar(yBody), xArg) {
		return false
	}
	renamedType := Substitute(yType, yArg, Var{Name: xArg})
	renamedBody := Substitute(yBody, yArg, Var{Name: xArg})
	return AlphaEquiv(xType, renamedType) && AlphaEquiv(xBody, renamedBody)
}

// BetaReduce performs one non-recursive head normalisation pass: every
// application whose reduced head is an abstraction is contracted once.
func BetaReduce(e CCExpression) CCExpression {
	switch x := e.(type) {
	case Appl:
		left := BetaReduce(x.Left)
		right := BetaReduce(x.Right)
		if ab, ok := left.(Abs); ok {
			return Substitute(ab.Body, ab.Arg, right)
		}
		return Appl{Left: left, Right: right}
	case Abs:
		return Abs{Arg: x.Arg, ArgType: BetaReduce(x.ArgType), Body: BetaReduce(x.Body)}
	case TypeAbs:
		return TypeAbs{Arg: x.Arg, ArgType: BetaReduce(x.ArgType), Body: BetaReduce(x.Body)}
	case DefAppl:
		args := make([]CCExpression, len(x.Args))
		for i, a := range x.Args {
			args[i] = BetaReduce(a)
		}
		return DefAppl{Name: x.Name, Args: args}
	}
	return e
}

// BetaEquiv reports α-equivalence of the single-pass β-normal forms.
func BetaEquiv(a, b CCExpression) bool {
	return AlphaEquiv(BetaReduce(a), BetaReduce(b))
}

// FreeVar returns the free variables in first-occurrence order,
// de-duplicated. A binder removes its own name from the body's free
// set but contributes the free variables of its type.
func FreeVar(e CCExpression) []string {
	switch x := e.(type) {
	case Var:
		return []string{x.Name}
	case Appl:
		return unionStr(FreeVar(x.Left), FreeVar(x.Right))
	case Abs:
		return unionStr(FreeVar(x.ArgType), minusStr(FreeVar(x.Body), x.Arg))
	case TypeAbs:
		return unionStr(FreeVar(x.ArgType), minusStr(FreeVar(x.Body), x.Arg))
	case DefAppl:
		var out []string
		for _, a := range x.Args {
			out = unionStr(out, FreeVar(a))
		}
		return out
	}
	return nil
}

// BinderNames returns the names bound anywhere inside the expression.
func BinderNames(e CCExpression) []string {
	switch x := e.(type) {
	case Appl:
		return unionStr(BinderNames(x.Left), BinderNames(x.Right))
	case Abs:
		return unionStr([]string{x.Arg}, unionStr(BinderNames(x.ArgType), BinderNames(x.Body)))
	case TypeAbs:
		return unionStr([]string{x.Arg}, unionStr(BinderNames(x.ArgType), BinderNames(x.Body)))
	case DefAppl:
		var out []string
		for _, a := range x.Args {
			out = unionStr(out, BinderNames(a))
		}
		return out
	}
	return nil
}

// VarStr returns the identifier when the expression is a bare variable.
func VarStr(e CCExpression) (string, bool) {
	if v, ok := e.(Var); ok {
		return v.Name, true
	}
	return "", false
}

// IsSort reports whether the expression is ⋆ or □.
func IsSort(e CCExpression) bool {
	switch e.(type) {
	case Star, Square:
		return true
	}
	return false
}

func containsStr(lst []string, s string) bool {
	for _, x := range lst {
		if x == s {
			return true
		}
	}
	return false
}

func unionStr(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	for _, x := range a {
		if !containsStr(out, x) {
			out = append(out, x)
		}
	}
	for _, x := range b {
		if !containsStr(out, x) {
			out = append(out, x)
		}
	}
	return out
}

func minusStr(lst []string, s string) []string {
	var out []string
	for _, x := range lst {
		if x != s {
			out = append(out, x)
		}
	}
	return out
}
