package steps

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// MaxContentLength is the rune limit for a step body before truncation.
	MaxContentLength = 700
	// TailWindow bounds the body of the last heading, counted from the end of the heading.
	TailWindow = 1000
	// Ellipsis marks a truncated body.
	Ellipsis = "..."
)

var (
	// "rule" and "role" are both accepted because speech recognizers confuse them.
	reHeading = regexp.MustCompile(`(?i)(?:rule|role)\s+number\s+(\w+)(?:\s+(?:is|are)\b)?[,.]?\s+([^.!?]+[.!?]?)`)
	reCopula  = regexp.MustCompile(`(?i)^(?:is|are)\s+`)
	reFiller  = regexp.MustCompile(`(?i)^our\s+(?:rule|role)\s+number\s+\S+\s+(?:is|are)\s+`)
)

var numerals = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
	"ten":   10,
}

// Step is one numbered rule spoken in a transcript.
type Step struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// match is a heading occurrence located by byte offsets in the transcript.
type match struct {
	start   int
	end     int
	numeral string
	title   string
}

// Extract finds every "rule/role number N [is|are] <title>" heading in text
// and returns the steps sorted by number, one per number. A transcript with
// no headings yields an empty slice.
func Extract(text string) []Step {
	matches := findMatches(text)
	if len(matches) == 0 {
		return []Step{}
	}

	candidates := make([]Step, 0, len(matches))
	for i, m := range matches {
		stop := tailEnd(text, m.end)
		if i+1 < len(matches) {
			stop = matches[i+1].start
		}

		candidates = append(candidates, Step{
			Number:  resolveNumber(m.numeral, i),
			Title:   cleanTitle(m.title),
			Content: truncate(collapse(text[m.end:stop]), MaxContentLength),
		})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Number < candidates[b].Number
	})

	seen := make(map[int]bool, len(candidates))
	result := make([]Step, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.Number] {
			continue
		}
		seen[c.Number] = true
		result = append(result, c)
	}

	return result
}

func findMatches(text string) []match {
	locs := reHeading.FindAllStringSubmatchIndex(text, -1)
	matches := make([]match, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, match{
			start:   loc[0],
			end:     loc[1],
			numeral: text[loc[2]:loc[3]],
			title:   text[loc[4]:loc[5]],
		})
	}
	return matches
}

// resolveNumber maps a spoken numeral to its value, falling back to the
// 1-based detection position when the token is not recognized.
func resolveNumber(numeral string, index int) int {
	if n, ok := numerals[strings.ToLower(numeral)]; ok {
		return n
	}
	return index + 1
}

func cleanTitle(raw string) string {
	title := strings.TrimSpace(raw)
	title = strings.TrimRight(title, ".,!?")
	title = reCopula.ReplaceAllString(title, "")
	title = reFiller.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}

// tailEnd returns the byte offset TailWindow runes after start, capped at len(text).
func tailEnd(text string, start int) int {
	pos := start
	for n := 0; n < TailWindow && pos < len(text); n++ {
		_, size := utf8.DecodeRuneInString(text[pos:])
		pos += size
	}
	return pos
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts s to at most limit runes on a word boundary and appends Ellipsis.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	cut := limit
	if runes[limit] != ' ' {
		for i := limit - 1; i > 0; i-- {
			if runes[i] == ' ' {
				cut = i
				break
			}
		}
	}

	return strings.TrimSpace(string(runes[:cut])) + Ellipsis
}
