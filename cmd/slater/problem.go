// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/slater/matrix"
	"github.com/katalvlaran/slater/occupation"
	"gopkg.in/yaml.v3"
)

// errProblem marks a problem file that parses but does not describe a valid run.
var errProblem = errors.New("slater: invalid problem")

// Amplitude is a complex number spelled as two YAML fields.
type Amplitude struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

func (a Amplitude) complex() complex128 { return complex(a.Re, a.Im) }

// OneBodyTerm is one sparse entry h[p,q] of a one-body operator.
type OneBodyTerm struct {
	P         int `yaml:"p"`
	Q         int `yaml:"q"`
	Amplitude `yaml:",inline"`
}

// TwoBodyTerm is one sparse entry u[p,q,r,s] of a two-body operator.
type TwoBodyTerm struct {
	P         int `yaml:"p"`
	Q         int `yaml:"q"`
	R         int `yaml:"r"`
	S         int `yaml:"s"`
	Amplitude `yaml:",inline"`
}

// Problem describes one operator application over a determinant basis.
// Repeated entries accumulate. Without coefficients the input is the rank-0
// determinant.
type Problem struct {
	Particles    int           `yaml:"particles"`
	Orbitals     int           `yaml:"orbitals"`
	OneBody      []OneBodyTerm `yaml:"one_body"`
	TwoBody      []TwoBodyTerm `yaml:"two_body"`
	Coefficients []Amplitude   `yaml:"coefficients"`
}

// LoadProblem reads and parses a YAML problem file.
func LoadProblem(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problem %q: %w", path, err)
	}
	p, err := ParseProblem(data)
	if err != nil {
		return nil, fmt.Errorf("problem %q: %w", path, err)
	}

	return p, nil
}

// ParseProblem decodes a YAML problem and rejects unknown fields.
func ParseProblem(data []byte) (*Problem, error) {
	var p Problem
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(p.OneBody) == 0 && len(p.TwoBody) == 0 {
		return nil, fmt.Errorf("no one_body or two_body terms: %w", errProblem)
	}

	return &p, nil
}

// Space builds the determinant basis of the problem.
func (p *Problem) Space() (*occupation.Space, error) {
	return occupation.NewSpace(p.Particles, p.Orbitals)
}

// OneBodyMatrix assembles h; nil when the problem has no one-body terms.
func (p *Problem) OneBodyMatrix() (*matrix.Dense, error) {
	if len(p.OneBody) == 0 {
		return nil, nil
	}
	h, err := matrix.NewDense(p.Orbitals, p.Orbitals)
	if err != nil {
		return nil, err
	}
	for i, t := range p.OneBody {
		cur, err := h.At(t.P, t.Q)
		if err != nil {
			return nil, fmt.Errorf("one_body[%d]: %w", i, err)
		}
		if err = h.Set(t.P, t.Q, cur+t.complex()); err != nil {
			return nil, fmt.Errorf("one_body[%d]: %w", i, err)
		}
	}

	return h, nil
}

// TwoBodyTensor assembles u; nil when the problem has no two-body terms.
func (p *Problem) TwoBodyTensor() (*matrix.Tensor4, error) {
	if len(p.TwoBody) == 0 {
		return nil, nil
	}
	u, err := matrix.NewTensor4(p.Orbitals)
	if err != nil {
		return nil, err
	}
	for i, t := range p.TwoBody {
		cur, err := u.At(t.P, t.Q, t.R, t.S)
		if err != nil {
			return nil, fmt.Errorf("two_body[%d]: %w", i, err)
		}
		if err = u.Set(t.P, t.Q, t.R, t.S, cur+t.complex()); err != nil {
			return nil, fmt.Errorf("two_body[%d]: %w", i, err)
		}
	}

	return u, nil
}

// Vector returns the input coefficients for a basis of the given size.
func (p *Problem) Vector(size int) (*matrix.Vector, error) {
	if len(p.Coefficients) == 0 {
		return matrix.Unit(size, 0)
	}
	if len(p.Coefficients) != size {
		return nil, fmt.Errorf("%d coefficients for %d determinants: %w",
			len(p.Coefficients), size, errProblem)
	}
	vals := make([]complex128, size)
	for i, a := range p.Coefficients {
		vals[i] = a.complex()
	}

	return matrix.NewVectorFrom(vals)
}
