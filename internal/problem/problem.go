// Package problem loads named minimization problems from YAML.
package problem

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/pborges/logicloom/internal/input"
	"github.com/pborges/logicloom/internal/qm"
)

//go:embed demo.yaml
var demo []byte

// Problem is one function to minimize.
type Problem struct {
	Name      string   `yaml:"name"`
	Variables []string `yaml:"variables"`
	Minterms  []int    `yaml:"minterms"`
}

// Simplifier returns a simplifier for p.
func (p Problem) Simplifier(opts ...qm.Option) (*qm.Simplifier, error) {
	s, err := qm.New(p.Minterms, p.Variables, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "problem %q", p.Name)
	}
	return s, nil
}

type file struct {
	Problems []Problem `yaml:"problems"`
}

// Load decodes a problem set. Unknown fields are rejected, as are variable
// names that are not ASCII letters. Problems without a name are named by
// their position.
func Load(r io.Reader) ([]Problem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading problems")
	}
	var f file
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, errors.Wrap(err, "decoding problems")
	}
	if len(f.Problems) == 0 {
		return nil, errors.New("no problems defined")
	}
	for i := range f.Problems {
		if f.Problems[i].Name == "" {
			f.Problems[i].Name = "problem " + strconv.Itoa(i+1)
		}
		for _, v := range f.Problems[i].Variables {
			if !input.ValidName(v) {
				return nil, errors.Wrapf(input.ErrInvalid, "problem %q: variable %q must be ASCII letters", f.Problems[i].Name, v)
			}
		}
	}
	return f.Problems, nil
}

// LoadFile loads the problem set at path.
func LoadFile(path string) ([]Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ps, err := Load(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return ps, nil
}

// Demo returns the bundled demonstration problems.
func Demo() []Problem {
	ps, err := Load(bytes.NewReader(demo))
	if err != nil {
		panic(err)
	}
	return ps
}
