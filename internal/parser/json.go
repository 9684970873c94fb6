package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/imishinist/rlboard/internal/models"
)

func ParseJSONHyperparameters(reader io.Reader) (*models.HyperparametersDocument, error) {
	var data map[string]any
	decoder := json.NewDecoder(reader)

	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON hyperparameters: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("failed to parse JSON hyperparameters: document is null")
	}

	return resolveDocument(data), nil
}
