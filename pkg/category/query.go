package category

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cattree/pkg/observability"
)

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a context carrying l for [FromQuery] to log through.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// LoggerFromContext returns the logger attached to ctx, or log.Default().
func LoggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

const unknownError = "unknown error"

// errUnknown stands in for panic values that carry no message.
var errUnknown = errors.New(unknownError)

// result is the outcome of one query: either the raw categories or the
// failure that prevented getting them.
type result struct {
	categories []Category
	err        error
}

// FromQuery runs q once and builds the tree from its data. It never returns
// an error and never panics: a failing or panicking query, a nil response
// and empty data all produce an empty, non-nil slice. Failures are logged.
func (b *Builder) FromQuery(ctx context.Context, q QueryFunc) []*Node {
	logger := LoggerFromContext(ctx)

	res := query(ctx, q)
	if res.err != nil {
		logger.Error("Error building category tree", "err", errorMessage(res.err))
		return []*Node{}
	}
	if len(res.categories) == 0 {
		logger.Debug("query returned no categories")
		return []*Node{}
	}

	start := time.Now()
	nodes := b.BuildTree(res.categories)
	stats := observability.BuildStats{
		TopLevel: len(nodes),
		Total:    Count(nodes),
		Home:     len(HomeNodes(nodes)),
		Duration: time.Since(start),
	}
	observability.Build().OnBuildComplete(ctx, stats)

	logger.Debug("built category tree",
		"top", stats.TopLevel,
		"nodes", stats.Total,
		"home", stats.Home,
		"duration", stats.Duration)
	return nodes
}

// FromQuery runs q with the default builder.
func FromQuery(ctx context.Context, q QueryFunc) []*Node {
	return defaultBuilder.FromQuery(ctx, q)
}

func query(ctx context.Context, q QueryFunc) (res result) {
	hooks := observability.Query()
	hooks.OnQueryStart(ctx)
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res = result{err: panicError(r)}
		}
		hooks.OnQueryComplete(ctx, len(res.categories), time.Since(start), res.err)
	}()

	if q == nil {
		return result{err: errors.New("no query function")}
	}
	resp, err := q(ctx)
	if err != nil {
		return result{err: err}
	}
	if resp == nil {
		return result{}
	}
	return result{categories: resp.Data}
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return errUnknown
}

func errorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return unknownError
}
