package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityav-123/reddit-persona-generator/models"
)

type stubScorer struct {
	scores map[string]float64
}

func (s stubScorer) Compound(text string) float64 {
	return s.scores[text]
}

func comment(body, subreddit string) models.Comment {
	return models.Comment{Body: body, Subreddit: subreddit}
}

func TestAggregate_TopSubredditsRankedAndCapped(t *testing.T) {
	snapshot := models.AccountSnapshot{
		Comments: []models.Comment{
			comment("a", "one"),
			comment("b", "two"), comment("c", "two"),
			comment("d", "three"), comment("e", "three"), comment("f", "three"),
			comment("g", "four"),
			comment("h", "five"), comment("i", "five"),
			comment("j", "six"),
			comment("k", "seven"),
		},
		Posts: []models.Post{
			{Title: "p", Subreddit: "four"},
			{Title: "q", Subreddit: "four"},
			{Title: "r", Subreddit: "four"},
		},
	}

	result := NewAnalyzer(stubScorer{}).Aggregate(snapshot)

	require.Len(t, result.TopSubreddits, 5)
	assert.Equal(t, models.SubredditCount{Name: "four", Count: 4}, result.TopSubreddits[0])
	assert.Equal(t, models.SubredditCount{Name: "three", Count: 3}, result.TopSubreddits[1])
	assert.Equal(t, models.SubredditCount{Name: "two", Count: 2}, result.TopSubreddits[2])
	for i := 1; i < len(result.TopSubreddits); i++ {
		assert.GreaterOrEqual(t, result.TopSubreddits[i-1].Count, result.TopSubreddits[i].Count)
	}
}

func TestAggregate_TiesBrokenByFirstSeen(t *testing.T) {
	snapshot := models.AccountSnapshot{
		Comments: []models.Comment{
			comment("a", "later"),
			comment("b", "earlier"),
			comment("c", "earlier"),
			comment("d", "later"),
		},
	}

	result := NewAnalyzer(stubScorer{}).Aggregate(snapshot)

	require.Len(t, result.TopSubreddits, 2)
	assert.Equal(t, "later", result.TopSubreddits[0].Name, "first-seen subreddit wins the tie")
	assert.Equal(t, "earlier", result.TopSubreddits[1].Name)
	assert.Equal(t, 2, result.TopSubreddits[0].Count)
	assert.Equal(t, 2, result.TopSubreddits[1].Count)
}

func TestAggregate_CorpusOrder(t *testing.T) {
	snapshot := models.AccountSnapshot{
		Comments: []models.Comment{
			comment("c1", "sub"),
			comment("c2", "sub"),
		},
		Posts: []models.Post{
			{Title: "p1.title", Selftext: "p1.body", Subreddit: "sub"},
		},
	}

	result := NewAnalyzer(stubScorer{}).Aggregate(snapshot)

	assert.Equal(t, "c1\nc2\np1.title p1.body", result.Corpus)
}

func TestAggregate_PostWithoutBodyUsesTitleAlone(t *testing.T) {
	snapshot := models.AccountSnapshot{
		Posts: []models.Post{
			{Title: "just a title", Subreddit: "sub"},
		},
	}

	result := NewAnalyzer(stubScorer{}).Aggregate(snapshot)

	assert.Equal(t, "just a title", result.Corpus)
}

func TestAggregate_SentimentZeroWithoutComments(t *testing.T) {
	snapshot := models.AccountSnapshot{
		Posts: []models.Post{
			{Title: "what a wonderful day", Subreddit: "sub"},
		},
	}

	result := NewAnalyzer(nil).Aggregate(snapshot)

	assert.Equal(t, 0.0, result.AverageSentiment, "posts never feed sentiment")
}

func TestAggregate_SentimentIsMeanOfCommentScores(t *testing.T) {
	scorer := stubScorer{scores: map[string]float64{
		"good": 0.8,
		"bad":  -0.4,
		"meh":  0.0,
	}}
	snapshot := models.AccountSnapshot{
		Comments: []models.Comment{
			comment("good", "sub"),
			comment("bad", "sub"),
			comment("meh", "sub"),
		},
	}

	result := NewAnalyzer(scorer).Aggregate(snapshot)

	assert.InDelta(t, (0.8-0.4+0.0)/3, result.AverageSentiment, 1e-9)
}

func TestAggregate_EmptySnapshot(t *testing.T) {
	result := NewAnalyzer(stubScorer{}).Aggregate(models.AccountSnapshot{Username: "spez"})

	assert.Empty(t, result.TopSubreddits)
	assert.Equal(t, 0.0, result.AverageSentiment)
	assert.Equal(t, "", result.Corpus)
}

func TestVaderScorer_KnownPolarity(t *testing.T) {
	scorer := VaderScorer{}

	assert.Greater(t, scorer.Compound("I love this, it is absolutely wonderful and great!"), 0.05)
	assert.Less(t, scorer.Compound("I hate this, it is terrible and awful."), -0.05)
}
