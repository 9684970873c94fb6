package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/imishinist/rlboard/internal/models"
)

// HyperparametersExtensions lists the supported hyperparameter file
// extensions in lookup order.
var HyperparametersExtensions = []string{".csv", ".json", ".yaml", ".yml"}

// ParseHyperparameters picks a decoder by the file extension of path.
func ParseHyperparameters(path string, reader io.Reader) (*models.HyperparametersDocument, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".csv":
		return ParseCSVHyperparameters(reader)
	case ".json":
		return ParseJSONHyperparameters(reader)
	case ".yaml", ".yml":
		return ParseYAMLHyperparameters(reader)
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .csv, .json, .yaml, .yml)", ext)
	}
}

// resolveDocument decides between the flat and nested shapes. A document is
// nested when its top-level "hyperparameters" key holds a mapping.
func resolveDocument(data map[string]any) *models.HyperparametersDocument {
	if inner, ok := asMapping(data[models.HyperparametersKey]); ok {
		extra := make(map[string]any, len(data)-1)
		for k, v := range data {
			if k != models.HyperparametersKey {
				extra[k] = v
			}
		}
		params, rest := splitScalars(inner)
		for k, v := range rest {
			extra[models.HyperparametersKey+"."+k] = v
		}
		return &models.HyperparametersDocument{Kind: models.DocumentNested, Params: params, Extra: extra}
	}

	params, rest := splitScalars(data)
	doc := &models.HyperparametersDocument{Kind: models.DocumentFlat, Params: params}
	if len(rest) > 0 {
		doc.Extra = rest
	}
	return doc
}

// splitScalars separates scalar values from composite ones.
func splitScalars(m map[string]any) (models.Hyperparameters, map[string]any) {
	params := make(models.Hyperparameters, len(m))
	var rest map[string]any
	for k, v := range m {
		switch v.(type) {
		case map[string]any, map[any]any, []any:
			if rest == nil {
				rest = make(map[string]any)
			}
			rest[k] = v
		default:
			params[k] = v
		}
	}
	return params, rest
}

func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}
