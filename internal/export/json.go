// Package export writes the generated atlas and its placement
// metadata to the supported output formats.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/SpritePack/internal/model"
)

// WriteJSON writes the placement metadata as tab-indented JSON:
// atlas width, height, texture count, then the entries in final
// packing order. Creates parent directories if needed.
func WriteJSON(path string, meta model.AtlasMeta) error {
	data, err := json.MarshalIndent(meta, "", "\t")
	if err != nil {
		return fmt.Errorf("failed to marshal atlas metadata: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadJSON loads placement metadata back from a JSON file.
func ReadJSON(path string) (model.AtlasMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.AtlasMeta{}, err
	}
	var meta model.AtlasMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return model.AtlasMeta{}, fmt.Errorf("failed to parse atlas metadata: %w", err)
	}
	return meta, nil
}
