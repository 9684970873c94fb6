package models

import (
	"math"
	"sort"

	"github.com/spf13/cast"
)

// HyperparametersKey is the wrapper key of nested hyperparameter documents.
const HyperparametersKey = "hyperparameters"

// Hyperparameters is a flat mapping of hyperparameter name to scalar value.
type Hyperparameters map[string]any

// Float returns the numeric value of name. Missing and non-numeric values,
// NaN included, report ok == false.
func (h Hyperparameters) Float(name string) (float64, bool) {
	v, ok := h[name]
	if !ok || v == nil {
		return 0, false
	}
	if _, isBool := v.(bool); isBool {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// Names returns the hyperparameter names in ascending order.
func (h Hyperparameters) Names() []string {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type DocumentKind int

const (
	DocumentFlat DocumentKind = iota
	DocumentNested
)

func (k DocumentKind) String() string {
	if k == DocumentNested {
		return "nested"
	}
	return "flat"
}

// HyperparametersDocument is a decoded hyperparameter file. Nested documents
// keep the rest of the file in Extra.
type HyperparametersDocument struct {
	Kind   DocumentKind
	Params Hyperparameters
	Extra  map[string]any
}

// Range bounds a hyperparameter. A nil side is unconstrained.
type Range struct {
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// Contains reports whether v lies within the range, bounds inclusive.
func (r Range) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

func (r Range) Unbounded() bool {
	return r.Min == nil && r.Max == nil
}

// FilterSpec maps hyperparameter names to their allowed range.
type FilterSpec map[string]Range

type FilterMode int

const (
	// FilterPermissive lets records without a constrained value pass.
	FilterPermissive FilterMode = iota
	// FilterStrict rejects records without a constrained value.
	FilterStrict
)
