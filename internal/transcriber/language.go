package transcriber

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// detectSampleRunes bounds the text handed to the detector.
const detectSampleRunes = 2000

type languageDetector interface {
	detect(text string) (code, name string)
}

// linguaDetector builds its lingua model lazily; building loads language models.
type linguaDetector struct {
	codes    []lingua.IsoCode639_1
	once     sync.Once
	detector lingua.LanguageDetector
}

// newLinguaDetector restricts detection to the given ISO 639-1 codes, or all
// languages when fewer than two valid codes are given.
func newLinguaDetector(codes []string) *linguaDetector {
	d := &linguaDetector{}
	for _, c := range codes {
		iso := lingua.GetIsoCode639_1FromValue(strings.ToLower(strings.TrimSpace(c)))
		if iso != lingua.UnknownIsoCode639_1 {
			d.codes = append(d.codes, iso)
		}
	}
	return d
}

func (d *linguaDetector) build() {
	builder := lingua.NewLanguageDetectorBuilder()
	if len(d.codes) >= 2 {
		d.detector = builder.FromIsoCodes639_1(d.codes...).Build()
		return
	}
	d.detector = builder.FromAllLanguages().Build()
}

func (d *linguaDetector) detect(text string) (string, string) {
	d.once.Do(d.build)

	if runes := []rune(text); len(runes) > detectSampleRunes {
		text = string(runes[:detectSampleRunes])
	}

	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", ""
	}
	return strings.ToLower(language.IsoCode639_1().String()), language.String()
}
