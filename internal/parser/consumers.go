package parser

import "github.com/pwalrus/stoch-coc/internal/term"

// A consumer recognises one expression form at the head of the token
// list, returning the parsed expression and the unconsumed tail, or
// nil when the form does not match.
type consumed struct {
	expr   term.CCExpression
	remain []string
}

type tokenConsumer interface {
	consume(tokens []string) *consumed
}

type varConsumer struct{}

func (varConsumer) consume(tokens []string) *consumed {
	if len(tokens) == 0 || !allAlphaNum(tokens[:1]) {
		return nil
	}
	return &consumed{expr: term.Var{Name: tokens[0]}, remain: tokens[1:]}
}

type parenConsumer struct{}

func (parenConsumer) consume(tokens []string) *consumed {
	if len(tokens) == 0 || tokens[0] != "(" {
		return nil
	}
	for idx, t := range tokens {
		if t == ")" && isBalanced(tokens[:idx+1]) {
			if inner := findExpression(tokens[1:idx]); inner != nil {
				return &consumed{expr: inner, remain: tokens[idx+1:]}
			}
		}
	}
	return nil
}

type starConsumer struct{}

func (starConsumer) consume(tokens []string) *consumed {
	if len(tokens) == 0 || tokens[0] != "\\ast" {
		return nil
	}
	return &consumed{expr: term.Star{}, remain: tokens[1:]}
}

type sqConsumer struct{}

func (sqConsumer) consume(tokens []string) *consumed {
	if len(tokens) == 0 || tokens[0] != "\\square" {
		return nil
	}
	return &consumed{expr: term.Square{}, remain: tokens[1:]}
}

type primConsumer struct{}

func (primConsumer) consume(tokens []string) *consumed {
	if len(tokens) == 0 || tokens[0] != "\\independent" {
		return nil
	}
	return &consumed{expr: term.Prim{}, remain: tokens[1:]}
}

type defConsumer struct{}

func (defConsumer) consume(tokens []string) *consumed {
	if len(tokens) <= 2 || tokens[1] != "\\langle" {
		return nil
	}
	for _, section := range sectionMultiDelim(tokens, []string{"\\langle", "\\rangle"}) {
		if len(section) < 2 || len(section[0]) == 0 {
			continue
		}
		args := commaDelimExpressions(section[1])
		if args == nil {
			return nil
		}
		var remain []string
		if len(section) > 2 {
			remain = section[2]
		}
		return &consumed{expr: term.DefAppl{Name: section[0][0], Args: args}, remain: remain}
	}
	return nil
}

type perpConsumer struct{}

func (perpConsumer) consume(tokens []string) *consumed {
	if len(tokens) == 0 || tokens[0] != "\\perp" {
		return nil
	}
	return &consumed{expr: term.Contradiction(), remain: tokens[1:]}
}

type negConsumer struct{}

func (negConsumer) consume(tokens []string) *consumed {
	if len(tokens) == 0 || tokens[0] != "\\neg" {
		return nil
	}
	for idx := 1; idx < len(tokens); idx++ {
		if arg := findExpression(tokens[1 : idx+1]); arg != nil {
			return &consumed{expr: term.Neg(arg), remain: tokens[idx+1:]}
		}
	}
	return nil
}

type veeWedgeConsumer struct{}

func (veeWedgeConsumer) consume(tokens []string) *consumed {
	if len(tokens) <= 2 {
		return nil
	}
	for _, delim := range []string{"\\vee", "\\wedge"} {
		for _, section := range sectionMultiDelim(tokens, []string{delim}) {
			if len(section) != 2 {
				continue
			}
			lhs := findExpression(section[0])
			rhs := findExpression(section[1])
			if lhs == nil || rhs == nil {
				continue
			}
			if delim == "\\vee" {
				return &consumed{expr: term.Or(lhs, rhs)}
			}
			return &consumed{expr: term.And(lhs, rhs)}
		}
	}
	return nil
}

type absConsumer struct{}

func (absConsumer) consume(tokens []string) *consumed {
	if len(tokens) < 4 || (tokens[0] != "\\lambda" && tokens[0] != "\\prod") {
		return nil
	}
	for idx1, t1 := range tokens {
		if t1 != ":" || !allAlphaNum(tokens[1:idx1]) {
			continue
		}
		for idx2 := idx1 + 2; idx2 < len(tokens); idx2++ {
			if tokens[idx2] != "." {
				continue
			}
			argType := findExpression(tokens[idx1+1 : idx2])
			body := findExpression(tokens[idx2+1:])
			if argType == nil || body == nil {
				continue
			}
			if tokens[0] == "\\lambda" {
				return &consumed{expr: term.Abs{Arg: tokens[1], ArgType: argType, Body: body}}
			}
			return &consumed{expr: term.TypeAbs{Arg: tokens[1], ArgType: argType, Body: body}}
		}
	}
	return nil
}

type toConsumer struct{}

func (toConsumer) consume(tokens []string) *consumed {
	if len(tokens) <= 2 {
		return nil
	}
	for idx, t := range tokens {
		if t != "\\to" {
			continue
		}
		ante := findExpression(tokens[:idx])
		cnsq := findExpression(tokens[idx+1:])
		if ante != nil && cnsq != nil {
			return &consumed{expr: term.Arrow(ante, cnsq)}
		}
	}
	return nil
}

type equalsConsumer struct{}

func (equalsConsumer) consume(tokens []string) *consumed {
	for _, section := range sectionMultiDelim(tokens, []string{"=_{", "}"}) {
		if len(section) != 3 {
			continue
		}
		lhs := findExpression(section[0])
		eType := findExpression(section[1])
		rhs := findExpression(section[2])
		if lhs != nil && eType != nil && rhs != nil {
			return &consumed{expr: term.Equality(lhs, eType, rhs)}
		}
	}
	return nil
}
