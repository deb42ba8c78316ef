// Package check verifies a derivation line by line against the
// primitive rule system.
package check

import (
	"fmt"

	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/proof"
	"github.com/pwalrus/stoch-coc/internal/rules"
)

// NoRuleError reports the first derivation line no rule validates.
type NoRuleError struct {
	Line  int
	Latex string
}

func (e *NoRuleError) Error() string {
	return fmt.Sprintf("No rule applies on line %d: %s", e.Line, e.Latex)
}

// CheckProof validates each line of a derivation in order. For line i
// it consults the rules grouped by arity — zero-premise, one-premise,
// two-premise, then inst's multi-premise mode — over all tuples of
// earlier lines, and returns one reference per line, or the first
// failure.
func CheckProof(defs []judgement.Definition, lines []judgement.Judgement) ([]proof.LineRef, error) {
	ruleSet := rules.AllRules(defs)
	var zero, one, two []rules.DerRule
	for _, r := range ruleSet {
		switch r.SignatureSize() {
		case 0:
			zero = append(zero, r)
		case 1:
			one = append(one, r)
		case 2:
			two = append(two, r)
		}
	}
	inst := rules.InstRule{Defs: defs}

	out := make([]proof.LineRef, 0, len(lines))
	for idx := range lines {
		ref, ok := findRef(lines[idx], lines[:idx], zero, one, two, inst)
		if !ok {
			return nil, &NoRuleError{Line: idx, Latex: lines[idx].ToLatex()}
		}
		out = append(out, ref)
	}
	return out, nil
}

func findRef(jdg judgement.Judgement, earlier []judgement.Judgement,
	zero, one, two []rules.DerRule, inst rules.InstRule) (proof.LineRef, bool) {

	for _, r := range zero {
		if r.Validate(nil, nil, jdg) {
			return proof.LineRef{Rule: r.Name()}, true
		}
	}
	for _, r := range one {
		for i := range earlier {
			if r.Validate(&earlier[i], nil, jdg) {
				return proof.LineRef{Rule: r.Name(), Lines: []int{i}}, true
			}
		}
	}
	for _, r := range two {
		for i := range earlier {
			for j := range earlier {
				if r.Validate(&earlier[i], &earlier[j], jdg) {
					return proof.LineRef{Rule: r.Name(), Lines: []int{i, j}}, true
				}
			}
		}
	}
	if idxs, ok := inst.ValidateMany(earlier, jdg); ok {
		return proof.LineRef{Rule: inst.Name(), Lines: idxs}, true
	}
	return proof.LineRef{}, false
}
