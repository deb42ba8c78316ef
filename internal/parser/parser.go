package parser

import (
	"fmt"
	"strings"

	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/term"
)

// consumers in recognition order; the first consumer whose match
// leaves a parseable tail wins.
var consumers = []tokenConsumer{
	varConsumer{},
	parenConsumer{},
	starConsumer{},
	sqConsumer{},
	primConsumer{},
	defConsumer{},
	perpConsumer{},
	negConsumer{},
	veeWedgeConsumer{},
	absConsumer{},
	toConsumer{},
	equalsConsumer{},
}

func consumeExpressions(tokens []string) []term.CCExpression {
	if len(tokens) == 0 {
		return nil
	}
	for _, c := range consumers {
		x := c.consume(tokens)
		if x == nil {
			continue
		}
		if len(x.remain) == 0 {
			return []term.CCExpression{x.expr}
		}
		if remain := consumeExpressions(x.remain); len(remain) > 0 {
			return append([]term.CCExpression{x.expr}, remain...)
		}
	}
	return nil
}

// findExpression parses a token list into a single expression, folding
// juxtaposition into left-associated application. Nil when the tokens
// do not form an expression.
func findExpression(tokens []string) term.CCExpression {
	exprs := consumeExpressions(tokens)
	if len(exprs) == 0 {
		return nil
	}
	out := exprs[0]
	for _, e := range exprs[1:] {
		out = term.Appl{Left: out, Right: e}
	}
	return out
}

func commaDelimExpressions(tokens []string) []term.CCExpression {
	var out []term.CCExpression
	last := 0
	for idx, t := range tokens {
		if idx >= last && t == "," {
			if expr := findExpression(tokens[last:idx]); expr != nil {
				out = append(out, expr)
				last = idx + 1
			}
		} else if idx >= last && idx == len(tokens)-1 {
			if expr := findExpression(tokens[last:]); expr != nil {
				return append(out, expr)
			}
		}
	}
	return nil
}

func findStatement(tokens []string) *judgement.Statement {
	for idx, t := range tokens {
		if t != ":" {
			continue
		}
		subject := findExpression(tokens[:idx])
		sType := findExpression(tokens[idx+1:])
		if subject != nil && sType != nil {
			return &judgement.Statement{Subject: subject, Type: sType}
		}
	}
	return nil
}

func findContext(tokens []string) []judgement.Statement {
	var out []judgement.Statement
	last := 0
	for idx, t := range tokens {
		if t == "," {
			if stmt := findStatement(tokens[last:idx]); stmt != nil {
				out = append(out, *stmt)
				last = idx + 1
			}
		}
	}
	if stmt := findStatement(tokens[last:]); stmt != nil {
		return append(out, *stmt)
	}
	return nil
}

func findDefName(tokens []string) (string, []string, bool) {
	if !isBalanced(tokens) {
		return "", nil, false
	}
	if len(tokens) <= 2 || (tokens[1] != "(" && tokens[1] != "\\langle") {
		return "", nil, false
	}
	name := tokens[0]
	var args []string
	last := 2
	for idx := 2; idx < len(tokens); idx++ {
		t := tokens[idx]
		switch {
		case idx >= last && t == ",":
			args = append(args, strings.Join(tokens[last:idx], " "))
			last = idx + 1
		case idx >= last && (t == ")" || t == "\\rangle"):
			args = append(args, strings.Join(tokens[last:idx], " "))
			last = len(tokens)
		case idx >= last:
			if !allAlphaNum(tokens[idx : idx+1]) {
				return "", nil, false
			}
		}
	}
	return name, args, true
}

func findDefinition(tokens []string) *judgement.Definition {
	for idx1, t1 := range tokens {
		if t1 != "\\vartriangleright" {
			continue
		}
		ctx := findContext(tokens[:idx1])
		if ctx == nil {
			continue
		}
		for idx2, t2 := range tokens {
			if t2 != ":=" || idx2 <= idx1 {
				continue
			}
			name, args, ok := findDefName(tokens[idx1+1 : idx2])
			if !ok {
				continue
			}
			body := findStatement(tokens[idx2+1:])
			if body == nil {
				continue
			}
			return &judgement.Definition{Context: ctx, Name: name, Args: args, Body: *body}
		}
	}
	return nil
}

// Parse reads one expression.
func Parse(expr string) (term.CCExpression, error) {
	out := findExpression(tokenize(expr))
	if out == nil {
		return nil, fmt.Errorf("cannot parse expression: %s", expr)
	}
	return out, nil
}

// ParseStatement reads a subject : type pair.
func ParseStatement(expr string) (judgement.Statement, error) {
	stmt := findStatement(tokenize(expr))
	if stmt == nil {
		return judgement.Statement{}, fmt.Errorf("cannot parse statement: %s", expr)
	}
	return *stmt, nil
}

// ParseJudgement reads a context ⊢ statement line; the context may be
// empty.
func ParseJudgement(expr string) (judgement.Judgement, error) {
	tokens := tokenize(expr)
	for idx, t := range tokens {
		if t != "\\vdash" {
			continue
		}
		stmt := findStatement(tokens[idx+1:])
		if stmt == nil {
			continue
		}
		if ctx := findContext(tokens[:idx]); ctx != nil {
			return judgement.Judgement{Context: ctx, Statement: *stmt}, nil
		}
		if idx == 0 {
			return judgement.Judgement{Statement: *stmt}, nil
		}
	}
	return judgement.Judgement{}, fmt.Errorf("cannot parse judgement: %s", expr)
}

// ParseDefinition reads a context ▷ name⟨args⟩ := body line.
func ParseDefinition(expr string) (judgement.Definition, error) {
	def := findDefinition(tokenize(expr))
	if def == nil {
		return judgement.Definition{}, fmt.Errorf("cannot parse definition: %s", expr)
	}
	return *def, nil
}
