// Package detector identifies the language of fetched text.
package detector

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// sampleSize bounds how much text is handed to lingua; full books make
// detection needlessly slow without improving the answer.
const sampleSize = 4096

type Detector struct {
	detector lingua.LanguageDetector
}

// Result is a detected language with lingua's confidence for it.
type Result struct {
	Language   string
	Confidence float64
}

// NewDetector builds a detector over the languages the tool is likely to
// see in public-domain text archives.
func NewDetector() *Detector {
	languages := []lingua.Language{
		lingua.English,
		lingua.French,
		lingua.German,
		lingua.Spanish,
		lingua.Italian,
		lingua.Portuguese,
		lingua.Dutch,
		lingua.Latin,
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the most likely language of text. The second return is
// false when no language can be determined (for example, empty input).
func (d *Detector) Detect(text string) (Result, bool) {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return Result{}, false
	}
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}

	language, exists := d.detector.DetectLanguageOf(sample)
	if !exists {
		return Result{}, false
	}

	return Result{
		Language:   language.String(),
		Confidence: d.detector.ComputeLanguageConfidence(sample, language),
	}, true
}
