// Package deflib loads a definitions library from a YAML file whose
// entries are definitions in the surface syntax, e.g.
//
//	definitions:
//	  - "A : \\ast \\vartriangleright lem \\langle A \\rangle := \\independent : \\neg A \\vee A"
package deflib

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/parser"
)

// File is the top-level structure of a definitions-library file.
type File struct {
	Definitions []string `yaml:"definitions"`
}

// Parse decodes the YAML payload and parses every definition.
func Parse(data []byte) ([]judgement.Definition, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "invalid definitions file")
	}
	out := make([]judgement.Definition, 0, len(file.Definitions))
	for _, src := range file.Definitions {
		def, err := parser.ParseDefinition(src)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid definition %q", src)
		}
		out = append(out, def)
	}
	return out, nil
}

// Load reads and parses a definitions-library file.
func Load(path string) ([]judgement.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read definitions file %s", path)
	}
	return Parse(data)
}
