package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	neturl "net/url"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/adityav-123/reddit-persona-generator/config"
	"github.com/adityav-123/reddit-persona-generator/models"
)

const (
	defaultBaseURL  = "https://oauth.reddit.com"
	defaultTokenURL = "https://www.reddit.com/api/v1/access_token"

	kindComment = "t1"
	kindPost    = "t3"
)

// ErrAccountNotFound is returned when the username does not resolve. Every
// other provider failure is wrapped as a generic error.
var ErrAccountNotFound = errors.New("reddit account not found")

type RedditClient struct {
	logger    *slog.Logger
	userAgent string
	baseURL   string
	tokenURL  string
	base      *http.Client
	tokens    oauth2.TokenSource
	client    *http.Client
}

type Option func(*RedditClient)

func WithBaseURL(url string) Option {
	return func(c *RedditClient) {
		c.baseURL = url
	}
}

func WithTokenURL(url string) Option {
	return func(c *RedditClient) {
		c.tokenURL = url
	}
}

func NewRedditClient(logger *slog.Logger, httpClient *http.Client, cfg config.AppConfig, opts ...Option) *RedditClient {
	c := &RedditClient{
		logger:    logger,
		userAgent: cfg.RedditUserAgent,
		baseURL:   defaultBaseURL,
		tokenURL:  defaultTokenURL,
		base:      httpClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	conf := &clientcredentials.Config{
		ClientID:     cfg.RedditClientID,
		ClientSecret: cfg.RedditClientSecret,
		TokenURL:     c.tokenURL,
	}
	authCtx := context.WithValue(context.Background(), oauth2.HTTPClient, c.base)
	c.tokens = conf.TokenSource(authCtx)
	c.client = oauth2.NewClient(authCtx, c.tokens)

	return c
}

// Connect obtains an access token eagerly so bad credentials surface before
// any user data is requested. The token source is the same one backing the
// fetch client, so the token is fetched once and reused.
func (c *RedditClient) Connect(ctx context.Context) error {
	if _, err := c.tokens.Token(); err != nil {
		return errors.Wrap(err, "reddit auth")
	}
	c.logger.Info("connected to reddit")
	return nil
}

// FetchSnapshot returns up to limit most recent comments and up to limit most
// recent posts for the given username, in provider order (newest first).
func (c *RedditClient) FetchSnapshot(ctx context.Context, username string, limit int) (models.AccountSnapshot, error) {
	snapshot := models.AccountSnapshot{Username: username}

	comments, err := c.fetchListing(ctx, username, "comments", limit)
	if err != nil {
		return models.AccountSnapshot{}, err
	}
	for _, child := range comments.Data.Children {
		if child.Kind != kindComment {
			continue
		}
		snapshot.Comments = append(snapshot.Comments, models.Comment{
			Body:      child.Data.Body,
			Subreddit: child.Data.Subreddit,
			Permalink: child.Data.Permalink,
		})
	}

	submitted, err := c.fetchListing(ctx, username, "submitted", limit)
	if err != nil {
		return models.AccountSnapshot{}, err
	}
	for _, child := range submitted.Data.Children {
		if child.Kind != kindPost {
			continue
		}
		snapshot.Posts = append(snapshot.Posts, models.Post{
			Title:     child.Data.Title,
			Selftext:  child.Data.Selftext,
			Subreddit: child.Data.Subreddit,
			Permalink: child.Data.Permalink,
		})
	}

	c.logger.Info("fetched user data",
		"username", username,
		"comments", len(snapshot.Comments),
		"posts", len(snapshot.Posts))
	return snapshot, nil
}

func (c *RedditClient) fetchListing(ctx context.Context, username, feed string, limit int) (*models.RedditListing, error) {
	url := fmt.Sprintf("%s/user/%s/%s?sort=new&limit=%d", c.baseURL, neturl.PathEscape(username), feed, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s request", feed)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", feed)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.Wrapf(ErrAccountNotFound, "u/%s", username)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("reddit returned status %d: %s", resp.StatusCode, truncate(string(body), 300))
	}

	var listing models.RedditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, errors.Wrapf(err, "decode %s listing", feed)
	}

	return &listing, nil
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
