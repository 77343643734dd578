package main

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/adityav-123/reddit-persona-generator/analysis"
	"github.com/adityav-123/reddit-persona-generator/config"
	"github.com/adityav-123/reddit-persona-generator/enums"
	"github.com/adityav-123/reddit-persona-generator/report"
	"github.com/adityav-123/reddit-persona-generator/sources"
	"github.com/adityav-123/reddit-persona-generator/summarizer"
)

// Runner executes the persona pipeline for one account: connect, fetch,
// aggregate, summarize, render. Connect and fetch failures abort the run with
// no report written; summarizer failures only degrade the bio section.
type Runner struct {
	logger     *slog.Logger
	cfg        config.AppConfig
	reddit     *sources.RedditClient
	analyzer   *analysis.Analyzer
	detector   *analysis.LanguageDetector
	summarizer *summarizer.Summarizer
	outputDir  string
}

func NewRunner(
	logger *slog.Logger,
	cfg config.AppConfig,
	reddit *sources.RedditClient,
	analyzer *analysis.Analyzer,
	detector *analysis.LanguageDetector,
	summ *summarizer.Summarizer,
	outputDir string,
) *Runner {
	return &Runner{
		logger:     logger,
		cfg:        cfg,
		reddit:     reddit,
		analyzer:   analyzer,
		detector:   detector,
		summarizer: summ,
		outputDir:  outputDir,
	}
}

func (r *Runner) Run(ctx context.Context, username string) error {
	r.logger.Info("connecting to reddit")
	if err := r.reddit.Connect(ctx); err != nil {
		return errors.Wrap(err, "connect")
	}

	r.logger.Info("fetching user data", "username", username, "limit", r.cfg.DataLimit)
	snapshot, err := r.reddit.FetchSnapshot(ctx, username, r.cfg.DataLimit)
	if err != nil {
		return errors.Wrap(err, "fetch")
	}

	r.logger.Info("aggregating activity", "comments", len(snapshot.Comments), "posts", len(snapshot.Posts))
	aggregates := r.analyzer.Aggregate(snapshot)
	language, _ := r.detector.DetectLanguage(aggregates.Corpus)

	r.logger.Info("requesting ai summary")
	outcome := r.summarizer.Summarize(ctx, aggregates.Corpus)
	if outcome.Reason == enums.DegradationNone {
		r.logger.Info("ai summary received")
	}

	path, err := report.Write(r.outputDir, snapshot, aggregates, outcome.Text, language)
	if err != nil {
		return err
	}

	r.logger.Info("persona report written", "path", path)
	return nil
}
