package models

// RedditListing is the shape the Reddit JSON API wraps user history in.
// Comment children carry kind "t1", post children kind "t3".
type RedditListing struct {
	Data struct {
		Children []struct {
			Kind string     `json:"kind"`
			Data RedditItem `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type RedditItem struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Selftext   string  `json:"selftext"`
	Body       string  `json:"body"`
	Subreddit  string  `json:"subreddit"`
	Permalink  string  `json:"permalink"`
	CreatedUTC float64 `json:"created_utc"`
}
