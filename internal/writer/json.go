package writer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/guide-transcriber/internal/model"
)

// writeJSON writes result with two-space indentation and without escaping
// non-ASCII or HTML characters.
func writeJSON(path string, result *model.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}
