package parser

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/imishinist/rlboard/internal/models"
)

func ParseYAMLHyperparameters(reader io.Reader) (*models.HyperparametersDocument, error) {
	var data map[string]any
	decoder := yaml.NewDecoder(reader)

	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse YAML hyperparameters: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("failed to parse YAML hyperparameters: document is empty")
	}

	return resolveDocument(data), nil
}
