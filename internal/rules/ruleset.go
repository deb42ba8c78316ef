package rules

import "github.com/pwalrus/stoch-coc/internal/judgement"

// AllRules returns the primitive rules in the fixed contract order the
// checker consults them in.
func AllRules(defs []judgement.Definition) []DerRule {
	return []DerRule{
		SortRule{},
		VarRule{},
		WeakRule{},
		FormRule{},
		ApplRule{},
		AbstRule{},
		ConvRule{},
		InstRule{Defs: defs},
	}
}
