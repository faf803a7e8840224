package steps

import (
	"fmt"
	"strings"
)

// Render formats steps as "STEP <n>: <TITLE>" blocks followed by their content.
// It returns an empty string when there is nothing to render.
func Render(steps []Step) string {
	if len(steps) == 0 {
		return ""
	}

	var b strings.Builder
	for i, s := range steps {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "STEP %d: %s\n", s.Number, strings.ToUpper(s.Title))
		if s.Content != "" {
			b.WriteString(s.Content)
			b.WriteString("\n")
		}
	}
	return b.String()
}
