package writer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/guide-transcriber/internal/model"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var (
	reHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

// writeDocx renders the same sections as the text report into a styled docx.
func writeDocx(result *model.Result, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), result.Title, true, 16)
	addStyledRun(doc.AddParagraph(""), "URL: "+result.URL, false, fontSize)
	addStyledRun(doc.AddParagraph(""), "Date: "+result.CreatedAt.Format(dateLayout), false, fontSize)

	addStyledRun(doc.AddParagraph(""), sectionKeyPoints, true, 15)
	addMarkdown(doc, result.KeyPoints)

	if len(result.Steps) > 0 {
		addStyledRun(doc.AddParagraph(""), sectionGuide, true, 15)
		for _, s := range result.Steps {
			addStyledRun(doc.AddParagraph(""), fmt.Sprintf("STEP %d: %s", s.Number, strings.ToUpper(s.Title)), true, 14)
			if s.Content != "" {
				addStyledRun(doc.AddParagraph(""), s.Content, false, fontSize)
			}
		}
	}

	addStyledRun(doc.AddParagraph(""), sectionTranscript, true, 15)
	addStyledRun(doc.AddParagraph(""), result.Transcript, false, fontSize)

	return doc.SaveTo(outputPath)
}

// addMarkdown renders model output that may use headings, bullets and bold.
func addMarkdown(doc *docx.RootDoc, markdown string) {
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			addStyledRun(doc.AddParagraph(""), m[2], true, headingSize(len(m[1])))
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRichText(doc.AddParagraph(""), "• "+m[1])
			continue
		}

		addRichText(doc.AddParagraph(""), trimmed)
	}
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
