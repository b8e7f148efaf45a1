package directory

import (
	"context"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/ortelius/userdir-backend/model"
	"github.com/ortelius/userdir-backend/util"
	"go.uber.org/zap"
)

// EventKind identifies a user input signal
type EventKind int

const (
	// EventKeyUp is a key released in the search input
	EventKeyUp EventKind = iota
	// EventSubmit is the explicit search action
	EventSubmit
)

// EnterKey is the key that triggers a search from the input
const EnterKey = "Enter"

// Event is one user input signal with the current input text
type Event struct {
	Kind EventKind
	Key  string
	Text string
}

// Options configure a session controller
type Options struct {
	MinQueryLength int
	SettleDelay    time.Duration
	Formatter      *util.NumberFormatter
}

// SearchResult is the filtered list with its statistics
type SearchResult struct {
	Query     string
	Users     []model.UserRecord
	Stats     model.Statistics
	Formatted model.FormattedStatistics
}

type eventAction func(c *Controller, ev Event) (SearchResult, bool, error)

// eventActions maps every input signal to its handler. Both paths end in Search.
var eventActions = map[EventKind]eventAction{
	EventKeyUp:  (*Controller).onKeyUp,
	EventSubmit: (*Controller).onSubmit,
}

// Controller owns the state of one directory session: the store, the view and the readiness flag.
type Controller struct {
	store  *Store
	view   View
	opts   Options
	logger *zap.Logger
	ready  *atomic.Bool
}

// NewController creates the session controller. It is built once at startup.
func NewController(store *Store, view View, opts Options, logger *zap.Logger) *Controller {
	if opts.MinQueryLength < 0 {
		opts.MinQueryLength = 0
	}
	if opts.Formatter == nil {
		opts.Formatter = util.NewNumberFormatter(util.DefaultLocale)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		store:  store,
		view:   view,
		opts:   opts,
		logger: logger,
		ready:  &atomic.Bool{},
	}
}

// WithView returns a controller sharing this session's state that renders to view
func (c *Controller) WithView(view View) *Controller {
	clone := *c
	clone.view = view
	return &clone
}

// Start runs the initial load, waits the settle delay and enables the search controls
func (c *Controller) Start(ctx context.Context, loader *Loader) (LoadResult, error) {
	c.view.SetBusy(true)
	c.view.SetSearchEnabled(false)
	c.view.SetTriggerEnabled(false)

	result, err := loader.Load(ctx, c.store)
	if err != nil {
		c.view.SetBusy(false)
		c.view.ShowError(err)
		return result, err
	}

	if c.opts.SettleDelay > 0 {
		timer := time.NewTimer(c.opts.SettleDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			c.view.SetBusy(false)
			return result, ctx.Err()
		case <-timer.C:
		}
	}

	c.ready.Store(true)
	c.view.SetSearchEnabled(true)
	c.view.SetBusy(false)
	c.view.ShowNoUsers()
	c.view.ShowNoStatistics()
	return result, nil
}

// Ready reports whether the load finished and the controls are enabled
func (c *Controller) Ready() bool {
	return c.ready.Load()
}

// Total returns the number of records in the directory
func (c *Controller) Total() int {
	return c.store.Len()
}

// Formatter returns the session's number formatter
func (c *Controller) Formatter() *util.NumberFormatter {
	return c.opts.Formatter
}

// Locale returns the locale used for collation and number formatting
func (c *Controller) Locale() string {
	return c.opts.Formatter.Locale()
}

// MinQueryLength returns the minimum trimmed query length that permits a search
func (c *Controller) MinQueryLength() int {
	return c.opts.MinQueryLength
}

// Permits reports whether the trimmed query is long enough to search
func (c *Controller) Permits(query string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(query)) >= c.opts.MinQueryLength
}

// HandleEvent dispatches an input signal. The bool reports whether a search ran.
func (c *Controller) HandleEvent(ev Event) (SearchResult, bool, error) {
	action, ok := eventActions[ev.Kind]
	if !ok {
		c.logger.Debug("Ignoring unknown event", zap.Int("kind", int(ev.Kind)))
		return SearchResult{}, false, nil
	}
	return action(c, ev)
}

func (c *Controller) onKeyUp(ev Event) (SearchResult, bool, error) {
	permitted := c.Permits(ev.Text)
	c.view.SetTriggerEnabled(permitted)

	if ev.Key != EnterKey || !permitted {
		return SearchResult{}, false, nil
	}
	result, err := c.Search(ev.Text)
	return result, err == nil, err
}

func (c *Controller) onSubmit(ev Event) (SearchResult, bool, error) {
	if !c.Permits(ev.Text) {
		return SearchResult{}, false, nil
	}
	result, err := c.Search(ev.Text)
	return result, err == nil, err
}

// Query filters the directory and aggregates the result without rendering
func (c *Controller) Query(query string) (SearchResult, error) {
	users, err := c.store.Filter(query)
	if err != nil {
		return SearchResult{}, err
	}

	stats := Aggregate(users)
	return SearchResult{
		Query:     NormalizeQuery(query),
		Users:     users,
		Stats:     stats,
		Formatted: c.opts.Formatter.FormatStatistics(stats),
	}, nil
}

// Search runs Query and renders the result to the view
func (c *Controller) Search(query string) (SearchResult, error) {
	result, err := c.Query(query)
	if err != nil {
		return SearchResult{}, err
	}

	c.logger.Debug("Search",
		zap.String("query", result.Query),
		zap.Int("matches", len(result.Users)))

	Present(c.view, result)
	return result, nil
}
