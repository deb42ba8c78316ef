package search

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/pwalrus/stoch-coc/internal/check"
	"github.com/pwalrus/stoch-coc/internal/goal"
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/proof"
	"github.com/pwalrus/stoch-coc/internal/term"
	"github.com/pwalrus/stoch-coc/internal/unpack"
)

// FindTerm searches for a term inhabiting sType under the context and
// definitions, unpacks the witness into a complete derivation and
// checks it, returning the annotated proof.
func FindTerm(sType term.CCExpression, context []judgement.Statement,
	defs []judgement.Definition, logger hclog.Logger) (*proof.Proof, error) {

	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	start := goal.PartialSol{
		Context: context,
		Goals:   []goal.Goal{goal.Initial{Ex: sType}},
	}
	control := SearchControl[goal.PartialSol]{
		Model:  ProofSearchModel{Defs: defs, Logger: logger},
		Logger: logger,
	}
	solved, err := control.Search(start)
	if err != nil {
		return nil, err
	}

	lastGoal := solved.Goals[len(solved.Goals)-1]
	fin, ok := lastGoal.(goal.Final)
	if !ok || len(fin.Lines) == 0 {
		return nil, fmt.Errorf("returned goal not final: %s", lastGoal.ToLatex())
	}
	witness := fin.Lines[len(fin.Lines)-1].Statement.Subject
	logger.Debug("witness found", "term", witness.ToLatex())

	lines, err := unpack.UnpackTerm(witness, context, defs)
	if err != nil {
		return nil, err
	}
	refs, err := check.CheckProof(defs, lines)
	if err != nil {
		return nil, errors.Wrap(err, "derivation rejected")
	}
	return &proof.Proof{Lines: lines, Refs: refs}, nil
}
