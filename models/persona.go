package models

type Comment struct {
	Body      string
	Subreddit string
	Permalink string
}

type Post struct {
	Title     string
	Selftext  string
	Subreddit string
	Permalink string
}

// AccountSnapshot holds one user's recent history, newest first as the
// provider returned it. It is built once per run and never mutated after.
type AccountSnapshot struct {
	Username string
	Comments []Comment
	Posts    []Post
}

type SubredditCount struct {
	Name  string
	Count int
}

// AggregateResult is the reduction of a snapshot: the top subreddits by
// activity, the mean comment sentiment in [-1, 1], and the concatenated text
// of everything the user wrote.
type AggregateResult struct {
	TopSubreddits    []SubredditCount
	AverageSentiment float64
	Corpus           string
}
