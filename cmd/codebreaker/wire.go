package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"svw.info/codebreaker/internal/config"
	"svw.info/codebreaker/internal/generator"
	"svw.info/codebreaker/internal/infrastructure/storage"
	"svw.info/codebreaker/internal/ports"
	"svw.info/codebreaker/internal/wordsource"
)

// newWordSource returns nil when answers should always come from the
// dictionary.
func newWordSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.WordSource, error) {
	switch cfg.WordSource.Provider {
	case "static":
		return wordsource.NewStatic(cfg.WordSource.Word), nil
	case "none":
		return nil, nil
	}
	if cfg.WordSource.APIKey == "" {
		logger.Warn("no Gemini API key configured, answers come from the dictionary")
		return nil, nil
	}
	src, err := wordsource.NewGenAI(ctx, wordsource.GenAIConfig{
		APIKey: cfg.WordSource.APIKey,
		Model:  cfg.WordSource.Model,
	})
	if err != nil {
		return nil, err
	}
	return src, nil
}

func newGenerator(cfg *config.Config, src ports.WordSource, logger *slog.Logger, extra ...generator.Option) (*generator.Daily, error) {
	timeout, err := cfg.WordTimeout()
	if err != nil {
		return nil, err
	}
	opts := append([]generator.Option{
		generator.WithLocale(cfg.Puzzle.Locale),
		generator.WithWordTimeout(timeout),
		generator.WithLogger(logger),
	}, extra...)
	return generator.NewDaily(src, opts...), nil
}

// newStore picks Redis when a URL is configured, otherwise JSON files
// under the data directory. The returned func releases the store.
func newStore(ctx context.Context, cfg *config.Config) (ports.ProgressStore, func(), error) {
	if cfg.Storage.RedisURL != "" {
		client, err := storage.DialRedis(ctx, cfg.Storage.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedis(client), func() { _ = client.Close() }, nil
	}
	if err := os.MkdirAll(cfg.Storage.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	return storage.NewFS(cfg.Storage.Dir), func() {}, nil
}
