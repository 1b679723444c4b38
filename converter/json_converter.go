package converter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/notaneet/rasp03/model"
)

// JSONConverter весь Export одним документом
type JSONConverter struct {
	Pretty bool
}

func (j JSONConverter) Write(node model.Export, out string) error {
	if out == "" {
		return errEmptyOutput
	}

	marshal := json.Marshal
	if j.Pretty {
		marshal = func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }
	}

	ret, err := marshal(node)
	if err != nil {
		return fmt.Errorf("failed to serialize schedule: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return err
	}
	return os.WriteFile(out, ret, 0644)
}
