// Package parser reads the LaTeX-like surface syntax into expressions,
// statements, judgements and definitions. The grammar is driven by an
// ordered list of token consumers; juxtaposed expressions fold into
// left-associated applications.
package parser

import "strings"

var metaTokens = []string{
	",", "\\vdash", ".", ":", "(", ")", "{", "}",
	"\\lambda", "\\ast", "\\square", "\\independent", "\\to",
	"\\langle", "\\rangle", "\\perp", "\\neg", "\\vee", "\\wedge",
	"\\prod", "\\vartriangleright",
}

func allAlphaNum(tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	for _, t := range tokens {
		for _, m := range metaTokens {
			if t == m {
				return false
			}
		}
	}
	return true
}

func isBalanced(tokens []string) bool {
	return isBalancedCustom(tokens, []string{"(", "\\langle"}, []string{")", "\\rangle"})
}

func isBalancedCustom(tokens, left, right []string) bool {
	balance := 0
	for _, t := range tokens {
		switch {
		case containsToken(left, t):
			balance++
		case containsToken(right, t):
			balance--
		}
	}
	return balance == 0
}

func containsToken(lst []string, t string) bool {
	for _, x := range lst {
		if x == t {
			return true
		}
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// tokenize splits the surface syntax on whitespace, punctuation and
// backslash commands. The := operator and the =_{T} equality opener
// are recognised as units; the equality's type argument is tokenized
// recursively up to the matching closing brace.
func tokenize(expr string) []string {
	var out []string
	start, found := 0, false
	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == ':' && i+1 < len(expr) && expr[i+1] == '=':
			if found {
				out = append(out, expr[start:i])
				found = false
			}
			out = append(out, ":=")
			i += 2
			continue
		case strings.HasPrefix(expr[i:], "=_{"):
			if found {
				out = append(out, expr[start:i])
				found = false
			}
			out = append(out, "=_{")
			depth := 0
			j := i + 3
			for ; j < len(expr); j++ {
				if expr[j] == '{' {
					depth++
				} else if expr[j] == '}' {
					if depth == 0 {
						break
					}
					depth--
				}
			}
			out = append(out, tokenize(expr[i+3:j])...)
			out = append(out, "}")
			i = j + 1
			continue
		case c == '.' || c == ':' || c == '(' || c == ')' || c == ',':
			if found {
				out = append(out, expr[start:i])
				found = false
			}
			out = append(out, string(c))
		case c == '\\':
			if found {
				out = append(out, expr[start:i])
			}
			found = true
			start = i
		case !found && !isSpace(c):
			found = true
			start = i
		case found && isSpace(c):
			out = append(out, expr[start:i])
			found = false
		}
		i++
	}
	if found {
		out = append(out, expr[start:])
	}
	return out
}

// sectionMultiDelim splits the token list at every combination of the
// delimiters in order, returning the candidate sectionings.
func sectionMultiDelim(tokens, delims []string) [][][]string {
	if len(delims) == 0 {
		return [][][]string{{tokens}}
	}
	var out [][][]string
	for idx, t := range tokens {
		if t != delims[0] {
			continue
		}
		for _, sub := range sectionMultiDelim(tokens[idx+1:], delims[1:]) {
			row := append([][]string{tokens[:idx]}, sub...)
			out = append(out, row)
		}
	}
	return out
}
