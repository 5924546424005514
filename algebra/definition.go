// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Definition is the on-disk form of a Table.
type Definition struct {
	// Name is a free-form display name.
	Name string `yaml:"name,omitempty" validate:"max=128"`

	// Cardinality is the number of elements.
	Cardinality int `yaml:"cardinality" validate:"required,min=1,max=4096"`

	// Elements optionally labels the elements, one per element.
	Elements []string `yaml:"elements,omitempty,flow" validate:"omitempty,dive,required"`

	// Operations lists the basic operations.
	Operations []OperationDefinition `yaml:"operations,omitempty" validate:"dive"`
}

// OperationDefinition is the on-disk form of an Operation.
type OperationDefinition struct {
	Symbol string `yaml:"symbol" validate:"required,max=32"`
	Arity  int    `yaml:"arity" validate:"min=0,max=8"`
	Table  []int  `yaml:"table,flow" validate:"required,min=1,dive,min=0"`
}

// definitionValidate is shared by every decode; validator caches struct
// metadata per type.
var definitionValidate = validator.New()

// Validate checks the structural constraints carried in struct tags. Table
// contents are checked later by New.
func (d *Definition) Validate() error {
	if err := definitionValidate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	if d.Elements != nil && len(d.Elements) != d.Cardinality {
		return fmt.Errorf("%w: %d elements for cardinality %d", ErrInvalidDefinition, len(d.Elements), d.Cardinality)
	}

	return nil
}

// Build validates d and constructs the Table it describes.
func (d *Definition) Build() (*Table, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("algebra: Build(%q): %w", d.Name, err)
	}
	ops := make([]Operation, len(d.Operations))
	for i, od := range d.Operations {
		ops[i] = Operation{Symbol: od.Symbol, Arity: od.Arity, Table: od.Table}
	}
	opts := []Option{WithName(d.Name)}
	if d.Elements != nil {
		opts = append(opts, WithLabels(d.Elements...))
	}

	return New(d.Cardinality, ops, opts...)
}

// DefinitionOf returns the Definition describing t.
func DefinitionOf(t *Table) *Definition {
	d := &Definition{
		Name:        t.name,
		Cardinality: t.n,
		Elements:    t.Labels(),
	}
	for _, op := range t.ops {
		d.Operations = append(d.Operations, OperationDefinition{
			Symbol: op.Symbol,
			Arity:  op.Arity,
			Table:  append([]int(nil), op.Table...),
		})
	}

	return d
}

// Decode reads one YAML definition from r and builds its Table. Unknown
// keys are rejected.
func Decode(r io.Reader) (*Table, error) {
	var d Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("algebra: Decode: %w: %v", ErrInvalidDefinition, err)
	}

	return d.Build()
}

// LoadFile decodes the YAML definition stored at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("algebra: LoadFile: %w", err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("algebra: LoadFile(%s): %w", path, err)
	}

	return t, nil
}

// Encode writes t to w as a YAML definition readable by Decode.
func Encode(w io.Writer, t *Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(DefinitionOf(t)); err != nil {
		return fmt.Errorf("algebra: Encode: %w", err)
	}

	return enc.Close()
}
