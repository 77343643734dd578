package analysis

import (
	"sort"
	"strings"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"

	"github.com/adityav-123/reddit-persona-generator/models"
)

const topSubredditLimit = 5

// Scorer produces a compound polarity score in [-1, 1] for a piece of text.
type Scorer interface {
	Compound(text string) float64
}

// VaderScorer scores text against the VADER lexicon.
type VaderScorer struct{}

func (VaderScorer) Compound(text string) float64 {
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	return sentitext.PolarityScore(parsed).Compound
}

type Analyzer struct {
	scorer Scorer
}

func NewAnalyzer(scorer Scorer) *Analyzer {
	if scorer == nil {
		scorer = VaderScorer{}
	}
	return &Analyzer{scorer: scorer}
}

// Aggregate reduces a snapshot to subreddit counts, mean comment sentiment,
// and the concatenated corpus. Pure; an empty snapshot yields zero values.
//
// Both comments and posts count toward subreddit activity, but only comments
// feed the sentiment average. The corpus keeps fetch order, comments first.
func (a *Analyzer) Aggregate(snapshot models.AccountSnapshot) models.AggregateResult {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	texts := make([]string, 0, len(snapshot.Comments)+len(snapshot.Posts))

	var sentimentSum float64
	for _, comment := range snapshot.Comments {
		tally(counts, firstSeen, comment.Subreddit)
		texts = append(texts, comment.Body)
		sentimentSum += a.scorer.Compound(comment.Body)
	}

	for _, post := range snapshot.Posts {
		tally(counts, firstSeen, post.Subreddit)
		if post.Selftext != "" {
			texts = append(texts, post.Title+" "+post.Selftext)
		} else {
			texts = append(texts, post.Title)
		}
	}

	average := 0.0
	if len(snapshot.Comments) > 0 {
		average = sentimentSum / float64(len(snapshot.Comments))
	}

	return models.AggregateResult{
		TopSubreddits:    topSubreddits(counts, firstSeen, topSubredditLimit),
		AverageSentiment: average,
		Corpus:           strings.Join(texts, "\n"),
	}
}

func tally(counts, firstSeen map[string]int, subreddit string) {
	if _, seen := counts[subreddit]; !seen {
		firstSeen[subreddit] = len(firstSeen)
	}
	counts[subreddit]++
}

// topSubreddits ranks by descending count, ties broken by first appearance.
func topSubreddits(counts, firstSeen map[string]int, limit int) []models.SubredditCount {
	ranked := make([]models.SubredditCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, models.SubredditCount{Name: name, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Name] < firstSeen[ranked[j].Name]
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
