package main

import (
	"context"
	"fmt"
	"time"

	"github.com/ortelius/userdir-backend/config"
	"github.com/ortelius/userdir-backend/database"
	"github.com/ortelius/userdir-backend/directory"
	events "github.com/ortelius/userdir-backend/events/modules/directory"
	"github.com/ortelius/userdir-backend/internal/kafka"
	"github.com/ortelius/userdir-backend/internal/services"
	"github.com/ortelius/userdir-backend/util"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const (
	brokerAttempts = 3
	brokerPause    = 2 * time.Second
)

// session bundles what one run of the directory needs; it is built once per command
type session struct {
	tag     language.Tag
	store   *directory.Store
	loader  *directory.Loader
	options directory.Options
	closers []func() error
}

func newSession(ctx context.Context, cfg config.Config, logger *zap.Logger) (*session, error) {
	tag, err := util.ParseLocale(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", cfg.Locale, err)
	}

	source, err := buildSource(cfg, logger)
	if err != nil {
		return nil, err
	}

	s := &session{
		tag:   tag,
		store: directory.NewStore(),
		options: directory.Options{
			MinQueryLength: cfg.MinQueryLength,
			SettleDelay:    cfg.SettleDelay,
			Formatter:      util.NewNumberFormatter(tag),
		},
	}

	var listeners []directory.LoadListener
	if producer := newLoadProducer(ctx, cfg, tag, logger); producer != nil {
		listeners = append(listeners, producer)
		s.closers = append(s.closers, producer.Close)
	}

	s.loader = directory.NewLoader(source, directory.LoaderConfig{
		Locale:     tag,
		MaxRetries: cfg.Source.MaxRetries,
	}, logger, listeners...)

	return s, nil
}

// newLoadProducer returns nil when Kafka is not configured or not reachable;
// load events are optional and never block the directory
func newLoadProducer(ctx context.Context, cfg config.Config, tag language.Tag, logger *zap.Logger) *events.LoadProducer {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil
	}

	creds := kafka.Credentials{Username: cfg.Kafka.APIKey, Password: cfg.Kafka.APISecret}
	if err := kafka.WaitForBroker(ctx, kafka.NewDialer(creds).DialContext, cfg.Kafka.Brokers, brokerAttempts, brokerPause, logger); err != nil {
		logger.Warn("Kafka unreachable, load events disabled", zap.Error(err))
		return nil
	}

	logger.Info("Publishing load events",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.Kafka.Topic),
		zap.Bool("sasl", creds.Enabled()))
	return events.NewLoadProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Source.Kind, tag.String(), kafka.NewTransport(creds))
}

func (s *session) controller(view directory.View, logger *zap.Logger) *directory.Controller {
	return directory.NewController(s.store, view, s.options, logger)
}

func (s *session) Close() {
	for _, closeFn := range s.closers {
		_ = closeFn()
	}
}

func buildSource(cfg config.Config, logger *zap.Logger) (directory.ProfileSource, error) {
	switch cfg.Source.Kind {
	case config.SourceHTTP:
		logger.Info("Using HTTP profile source", zap.String("url", cfg.Source.URL))
		return services.NewHTTPProfileFetcher(cfg.Source.URL, cfg.Source.Timeout), nil
	case config.SourceFile:
		logger.Info("Using file profile source", zap.String("path", cfg.Source.Path))
		return &services.FileProfileFetcher{Path: cfg.Source.Path}, nil
	case config.SourceArango:
		logger.Info("Using ArangoDB profile source",
			zap.String("url", cfg.Arango.URL),
			zap.String("collection", cfg.Arango.Collection))
		return database.NewArangoProfileFetcher(database.Config{
			URL:        cfg.Arango.URL,
			User:       cfg.Arango.User,
			Pass:       cfg.Arango.Pass,
			Database:   cfg.Arango.Database,
			Collection: cfg.Arango.Collection,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
}
