package supervisor

import (
	"go.uber.org/zap"

	"github.com/ScientiaCapital/robot-brain/dispatch"
	"github.com/ScientiaCapital/robot-brain/memory"
	"github.com/ScientiaCapital/robot-brain/routing"
)

type options struct {
	logger    *zap.Logger
	history   memory.HistoryProvider
	catalog   routing.Catalog
	rules     []routing.CollaborationRule
	collector *dispatch.Collector
}

// Option customizes a Supervisor at construction.
type Option func(*options)

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithHistory sets the conversation history provider. Memory enhancement
// also requires MemoryEnabled in the config.
func WithHistory(provider memory.HistoryProvider) Option {
	return func(o *options) { o.history = provider }
}

// WithCatalog replaces the default skill catalog.
func WithCatalog(catalog routing.Catalog) Option {
	return func(o *options) { o.catalog = catalog }
}

// WithCollaborationRules replaces the default collaboration rules.
func WithCollaborationRules(rules []routing.CollaborationRule) Option {
	return func(o *options) { o.rules = rules }
}

// WithCollector enables dispatch metrics.
func WithCollector(collector *dispatch.Collector) Option {
	return func(o *options) { o.collector = collector }
}
