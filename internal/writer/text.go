package writer

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/guide-transcriber/internal/model"
	"github.com/nguyentantai21042004/guide-transcriber/internal/steps"
)

const (
	reportTitle       = "YOUTUBE VIDEO TRANSCRIPT"
	sectionKeyPoints  = "KEY POINTS & SUMMARY"
	sectionGuide      = "PRACTICAL GUIDE"
	sectionTranscript = "FULL TRANSCRIPT"
	dateLayout        = "2006-01-02 15:04:05"
)

var rule = strings.Repeat("=", 80)

// renderText builds the human-readable report. The PRACTICAL GUIDE section
// only appears when steps were found.
func renderText(result *model.Result) string {
	var b strings.Builder

	b.WriteString(reportTitle + "\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Title: %s\n", result.Title)
	fmt.Fprintf(&b, "URL: %s\n", result.URL)
	fmt.Fprintf(&b, "Date: %s\n", result.CreatedAt.Format(dateLayout))
	if result.Language != "" {
		fmt.Fprintf(&b, "Language: %s\n", result.Language)
	}

	writeSection(&b, sectionKeyPoints, result.KeyPoints)

	if guide := steps.Render(result.Steps); guide != "" {
		writeSection(&b, sectionGuide, strings.TrimRight(guide, "\n"))
	}

	writeSection(&b, sectionTranscript, result.Transcript)
	return b.String()
}

func writeSection(b *strings.Builder, heading, body string) {
	b.WriteString("\n" + rule + "\n")
	b.WriteString(heading + "\n")
	b.WriteString(rule + "\n\n")
	b.WriteString(body)
	b.WriteString("\n")
}
