package analysis

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

type LanguageDetector struct {
	detector lingua.LanguageDetector
}

func NewLanguageDetector() *LanguageDetector {
	return &LanguageDetector{
		detector: lingua.NewLanguageDetectorBuilder().FromAllLanguages().Build(),
	}
}

// DetectLanguage names the dominant language of the corpus. The second return
// is false when the corpus is empty or no language is confident enough.
func (d *LanguageDetector) DetectLanguage(corpus string) (string, bool) {
	if strings.TrimSpace(corpus) == "" {
		return "", false
	}

	language, ok := d.detector.DetectLanguageOf(corpus)
	if !ok {
		return "", false
	}
	return language.String(), true
}
