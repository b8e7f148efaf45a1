package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/ortelius/userdir-backend/model"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// ProfileSource defines the interface for fetching raw profiles from the data source.
type ProfileSource interface {
	FetchProfiles(ctx context.Context) ([]model.RawProfile, error)
}

// ProfileSourceFunc adapts a function to ProfileSource
type ProfileSourceFunc func(ctx context.Context) ([]model.RawProfile, error)

// FetchProfiles calls f(ctx)
func (f ProfileSourceFunc) FetchProfiles(ctx context.Context) ([]model.RawProfile, error) {
	return f(ctx)
}

// LoadListener is notified once the store has been populated.
type LoadListener interface {
	DirectoryLoaded(ctx context.Context, result LoadResult) error
}

// LoaderConfig controls the retry policy and collation of the initial load
type LoaderConfig struct {
	Locale          language.Tag
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// LoadResult describes a finished load
type LoadResult struct {
	Fetched  int
	Loaded   int
	Skipped  int
	Attempts int
	Elapsed  time.Duration
}

// Loader fetches, normalizes and stores the directory contents
type Loader struct {
	source    ProfileSource
	cfg       LoaderConfig
	logger    *zap.Logger
	listeners []LoadListener
}

// NewLoader creates a loader reading from source
func NewLoader(source ProfileSource, cfg LoaderConfig, logger *zap.Logger, listeners ...LoadListener) *Loader {
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = 500 * time.Millisecond
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		source:    source,
		cfg:       cfg,
		logger:    logger,
		listeners: listeners,
	}
}

// Load fetches the profiles, retrying ErrSourceUnavailable with exponential backoff,
// and populates store with the normalized records.
func (l *Loader) Load(ctx context.Context, store *Store) (LoadResult, error) {
	start := time.Now()
	result := LoadResult{}

	if store.Loaded() {
		return result, ErrAlreadyPopulated
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = l.cfg.InitialInterval
	bo.MaxInterval = l.cfg.MaxInterval
	bo.MaxElapsedTime = 0

	// WithMaxRetries treats 0 as unlimited, so a zero budget stops after the first attempt
	var policy backoff.BackOff = &backoff.StopBackOff{}
	if l.cfg.MaxRetries > 0 {
		policy = backoff.WithMaxRetries(bo, l.cfg.MaxRetries)
	}

	var raws []model.RawProfile
	err := backoff.RetryNotify(func() error {
		result.Attempts++

		fetched, err := l.source.FetchProfiles(ctx)
		if err == nil {
			raws = fetched
			return nil
		}
		if ctx.Err() != nil || !errors.Is(err, ErrSourceUnavailable) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(policy, ctx), func(err error, wait time.Duration) {
		l.logger.Warn("Retrying profile fetch",
			zap.Int("attempt", result.Attempts),
			zap.Duration("wait", wait),
			zap.Error(err))
	})
	if err != nil {
		result.Elapsed = time.Since(start)
		return result, fmt.Errorf("fetch profiles: %w", err)
	}

	records, skipped := Normalize(raws, l.cfg.Locale)
	for _, skipErr := range multierr.Errors(skipped) {
		l.logger.Warn("Skipping malformed profile", zap.Error(skipErr))
	}

	if err := store.Populate(records); err != nil {
		result.Elapsed = time.Since(start)
		return result, err
	}

	result.Fetched = len(raws)
	result.Loaded = len(records)
	result.Skipped = result.Fetched - result.Loaded
	result.Elapsed = time.Since(start)

	l.logger.Info("Directory loaded",
		zap.Int("records", result.Loaded),
		zap.Int("skipped", result.Skipped),
		zap.Int("attempts", result.Attempts),
		zap.Duration("elapsed", result.Elapsed))

	for _, listener := range l.listeners {
		if err := listener.DirectoryLoaded(ctx, result); err != nil {
			l.logger.Warn("Load listener failed", zap.Error(err))
		}
	}

	return result, nil
}
