package report

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/adityav-123/reddit-persona-generator/models"
)

//go:embed templates/persona.txt
var reportTemplates embed.FS

var personaTemplate = template.Must(template.New("persona").ParseFS(reportTemplates, "templates/*.txt"))

const excerptLimit = 300

// WriteError marks filesystem failures while persisting the report. Unlike
// fetch failures these are fatal to the process.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return "write persona report: " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

type personaData struct {
	Username  string
	Bio       string
	Tone      string
	Score     float64
	Language  string
	Interests []models.SubredditCount
	Citation  *citation
}

type citation struct {
	Subreddit string
	Permalink string
	Excerpt   string
}

// Render produces the persona document. The bio is the summarizer's output
// (real or placeholder); language may be empty, which drops its line.
func Render(snapshot models.AccountSnapshot, aggregates models.AggregateResult, bio, language string) ([]byte, error) {
	data := personaData{
		Username:  snapshot.Username,
		Bio:       bio,
		Tone:      classifyTone(aggregates.AverageSentiment),
		Score:     aggregates.AverageSentiment,
		Language:  language,
		Interests: aggregates.TopSubreddits,
		Citation:  findCitation(snapshot, aggregates),
	}

	var buf bytes.Buffer
	if err := personaTemplate.ExecuteTemplate(&buf, "persona.txt", data); err != nil {
		return nil, errors.Wrap(err, "render persona template")
	}
	return buf.Bytes(), nil
}

// Write renders the report and persists it as <username>_persona.txt inside
// dir, overwriting any previous run's file.
func Write(dir string, snapshot models.AccountSnapshot, aggregates models.AggregateResult, bio, language string) (string, error) {
	content, err := Render(snapshot, aggregates, bio, language)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_persona.txt", snapshot.Username))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", &WriteError{Err: err}
	}
	return path, nil
}

func classifyTone(score float64) string {
	switch {
	case score > 0.05:
		return "Positive"
	case score < -0.05:
		return "Negative"
	default:
		return "Neutral"
	}
}

// findCitation picks the first comment in fetch order posted in the
// top-ranked subreddit. First match wins even if a later comment would be
// more illustrative; that quirk is part of the report's contract.
func findCitation(snapshot models.AccountSnapshot, aggregates models.AggregateResult) *citation {
	if len(aggregates.TopSubreddits) == 0 {
		return nil
	}

	top := aggregates.TopSubreddits[0].Name
	for _, comment := range snapshot.Comments {
		if comment.Subreddit != top {
			continue
		}
		// Character-based, not byte-based: a multibyte rune on the
		// boundary must not be split into invalid UTF-8.
		excerpt := comment.Body
		if utf8.RuneCountInString(excerpt) > excerptLimit {
			excerpt = string([]rune(excerpt)[:excerptLimit])
		}
		return &citation{
			Subreddit: top,
			Permalink: comment.Permalink,
			Excerpt:   excerpt + "...",
		}
	}
	return nil
}
