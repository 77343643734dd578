package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"github.com/pkg/errors"
	"golang.org/x/net/proxy"

	"github.com/adityav-123/reddit-persona-generator/analysis"
	"github.com/adityav-123/reddit-persona-generator/config"
	"github.com/adityav-123/reddit-persona-generator/report"
	"github.com/adityav-123/reddit-persona-generator/sources"
	"github.com/adityav-123/reddit-persona-generator/summarizer"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s <username>\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Builds <username>_persona.txt from the account's recent comments and posts.")
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	username := flag.Arg(0)

	config.LoadConfig()

	opts := slog.HandlerOptions{Level: config.Config.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &opts)).With("run_id", uuid.New().String())
	slog.SetDefault(logger)

	client, err := httpClient(config.Config.ProxyURL)
	if err != nil {
		slog.Error("failed to create http client", "error", err)
		os.Exit(1)
	}

	reddit := sources.NewRedditClient(logger, client, config.Config)
	analyzer := analysis.NewAnalyzer(nil)
	detector := analysis.NewLanguageDetector()
	summ := summarizer.NewSummarizer(logger, config.Config.GeminiAPIKey)

	runner := NewRunner(logger, config.Config, reddit, analyzer, detector, summ, ".")

	err = runner.Run(context.Background(), username)
	if err == nil {
		return
	}

	var writeErr *report.WriteError
	if errors.As(err, &writeErr) {
		slog.Error("failed to write report", "error", err)
		os.Exit(1)
	}

	if errors.Is(err, sources.ErrAccountNotFound) {
		slog.Error("no reddit account with that username", "username", username)
		return
	}
	slog.Error("no report produced", "error", err)
}

// httpClient builds the outbound client, routed through a SOCKS5 proxy when
// PROXY_URL is set. Non-SOCKS5 proxy URLs are ignored.
func httpClient(proxyURL string) (*http.Client, error) {
	client := &http.Client{Timeout: 15 * time.Second}

	if proxyURL == "" {
		return client, nil
	}

	parsedURL, err := url.Parse(proxyURL)
	if err != nil {
		return nil, err
	}
	if parsedURL.Scheme != "socks5" {
		return client, nil
	}

	var auth *proxy.Auth
	if parsedURL.User != nil {
		password, _ := parsedURL.User.Password()
		auth = &proxy.Auth{
			User:     parsedURL.User.Username(),
			Password: password,
		}
	}

	dialer, err := proxy.SOCKS5("tcp", parsedURL.Host, auth, proxy.Direct)
	if err != nil {
		return nil, err
	}

	client.Transport = &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return dialer.Dial(network, addr)
		},
	}
	slog.Info("using SOCKS5 proxy", "proxy", parsedURL.Host)

	return client, nil
}
