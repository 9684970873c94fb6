package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/imishinist/rlboard/internal/models"
)

// ParseFilterSpec parses range filters in name=min:max format. Either bound
// may be left empty: "alpha=0.1:" has no maximum, "alpha=:0.5" no minimum.
func ParseFilterSpec(filters []string) (models.FilterSpec, error) {
	spec := make(models.FilterSpec, len(filters))
	for _, filter := range filters {
		name, bounds, ok := strings.Cut(filter, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid filter format: %s (expected name=min:max)", filter)
		}
		if _, dup := spec[name]; dup {
			return nil, fmt.Errorf("duplicate filter for %s", name)
		}

		lo, hi, ok := strings.Cut(bounds, ":")
		if !ok {
			return nil, fmt.Errorf("invalid filter format: %s (expected name=min:max)", filter)
		}

		var r models.Range
		var err error
		if r.Min, err = parseBound(lo); err != nil {
			return nil, fmt.Errorf("invalid minimum for %s: %w", name, err)
		}
		if r.Max, err = parseBound(hi); err != nil {
			return nil, fmt.Errorf("invalid maximum for %s: %w", name, err)
		}
		if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
			return nil, fmt.Errorf("invalid range for %s: minimum %g exceeds maximum %g", name, *r.Min, *r.Max)
		}

		spec[name] = r
	}
	return spec, nil
}

func parseBound(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
