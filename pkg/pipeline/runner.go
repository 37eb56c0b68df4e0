package pipeline

import (
	"context"
	"fmt"
	stdio "io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/cattree/pkg/category"
	"github.com/matzehuels/cattree/pkg/config"
	errs "github.com/matzehuels/cattree/pkg/errors"
	"github.com/matzehuels/cattree/pkg/io"
	"github.com/matzehuels/cattree/pkg/observability"
	"github.com/matzehuels/cattree/pkg/source"
	"github.com/matzehuels/cattree/pkg/source/mongo"
	"github.com/matzehuels/cattree/pkg/source/redis"
)

// Opener turns source settings into a query and a function releasing any
// connections it holds.
type Opener func(ctx context.Context, src config.Source) (category.QueryFunc, func(), error)

// Runner executes runs. It holds no per-run state, so one Runner can serve
// concurrent callers.
type Runner struct {
	Logger *log.Logger
	Open   Opener
}

// NewRunner creates a runner logging to logger (log.Default() if nil) and
// opening sources with [OpenSource].
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger, Open: OpenSource}
}

// Execute opens the source, builds the tree and returns it. The only errors
// are invalid options, a source that cannot be opened and cancellation of
// ctx.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := r.Logger.With("run", runID[:8])
	ctx = category.WithLogger(ctx, logger)
	ctx = observability.WithSource(ctx, opts.Source.Kind)

	open := r.Open
	if open == nil {
		open = OpenSource
	}
	q, release, err := open(ctx, opts.Source)
	if err != nil {
		return nil, err
	}
	defer release()

	logger.Debug("querying categories", "source", opts.Source.Kind)
	start := time.Now()
	nodes := category.NewBuilder(category.WithPolicy(opts.Policy)).FromQuery(ctx, q)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID: runID,
		Nodes: nodes,
		Stats: Stats{
			Source:   opts.Source.Kind,
			TopLevel: len(nodes),
			Total:    category.Count(nodes),
			Home:     len(category.HomeNodes(nodes)),
			Duration: time.Since(start),
		},
	}
	if opts.HomeOnly {
		result.Nodes = category.HomeNodes(nodes)
	}

	logger.Info("built category tree",
		"source", result.Stats.Source,
		"top", result.Stats.TopLevel,
		"nodes", result.Stats.Total,
		"home", result.Stats.Home,
		"duration", result.Stats.Duration)
	return result, nil
}

// OpenSource is the default [Opener]. It supports every kind in
// [config.Kinds].
func OpenSource(ctx context.Context, src config.Source) (category.QueryFunc, func(), error) {
	noop := func() {}
	switch src.Kind {
	case config.KindFile:
		return source.File(src.Path), noop, nil
	case config.KindHTTP:
		opts := []source.HTTPOption{source.WithHeaders(src.Headers)}
		if src.Attempts > 0 {
			opts = append(opts, source.WithAttempts(src.Attempts))
		}
		return source.HTTP(src.URL, opts...), noop, nil
	case config.KindMongo:
		q, disconnect, err := mongo.Connect(ctx, src.Mongo.URI, src.Mongo.Database, src.Mongo.Collection)
		if err != nil {
			return nil, nil, err
		}
		release := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = disconnect(ctx)
		}
		return q, release, nil
	case config.KindRedis:
		q, closeFn := redis.Dial(src.Redis.Addr, src.Redis.Password, src.Redis.DB, src.Redis.Key)
		return q, func() { _ = closeFn() }, nil
	}
	return nil, nil, errs.New(errs.ErrCodeInvalidConfig, "unknown source kind %q", src.Kind)
}

// Export writes the result's nodes to w.
func Export(w stdio.Writer, result *Result, format io.Format) error {
	if err := io.WriteTree(w, result.Nodes, format); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
