// Package seed loads template definitions from YAML.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/dmitrijs2005/runaudit/internal/server/models"
	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var defaultTemplates []byte

// Load reads templates from path, or the built-in set when path is empty.
func Load(path string) ([]*models.Template, error) {
	if path == "" {
		return Parse(defaultTemplates)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML list of templates. Every entry needs a unique name.
func Parse(data []byte) ([]*models.Template, error) {
	var items []*models.Template
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("invalid template file: %w", err)
	}

	seen := make(map[string]struct{}, len(items))
	for i, t := range items {
		if t == nil || t.Name == "" {
			return nil, fmt.Errorf("template #%d has no name", i+1)
		}
		if _, ok := seen[t.Name]; ok {
			return nil, fmt.Errorf("duplicate template name %q", t.Name)
		}
		seen[t.Name] = struct{}{}
		if t.Columns == nil {
			t.Columns = []string{}
		}
	}

	return items, nil
}
