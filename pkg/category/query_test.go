package category

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/cattree/pkg/observability"
)

func logContext(buf *bytes.Buffer) context.Context {
	l := log.New(buf)
	l.SetLevel(log.DebugLevel)
	return WithLogger(context.Background(), l)
}

func TestFromQuerySuccess(t *testing.T) {
	q := func(context.Context) (*Response, error) {
		return &Response{Data: flat("2", "1#", "3")}, nil
	}

	result := FromQuery(context.Background(), q)

	require.Len(t, result, 3)
	assert.Equal(t, 2, result[0].ID)
	assert.True(t, result[0].ShowOnHome)
}

func TestFromQueryError(t *testing.T) {
	var buf bytes.Buffer
	q := func(context.Context) (*Response, error) {
		return nil, errors.New("API Error")
	}

	result := FromQuery(logContext(&buf), q)

	assert.NotNil(t, result)
	assert.Empty(t, result)
	assert.Contains(t, buf.String(), "Error building category tree")
	assert.Contains(t, buf.String(), "API Error")
}

func TestFromQueryPanicWithError(t *testing.T) {
	var buf bytes.Buffer
	q := func(context.Context) (*Response, error) {
		panic(errors.New("decoder exploded"))
	}

	assert.NotPanics(t, func() {
		assert.Empty(t, FromQuery(logContext(&buf), q))
	})
	assert.Contains(t, buf.String(), "decoder exploded")
}

func TestFromQueryPanicWithoutMessage(t *testing.T) {
	var buf bytes.Buffer
	q := func(context.Context) (*Response, error) {
		panic("String error")
	}

	result := FromQuery(logContext(&buf), q)

	assert.Empty(t, result)
	assert.Contains(t, buf.String(), "unknown error")
	assert.NotContains(t, buf.String(), "String error")
}

func TestFromQueryEmptyData(t *testing.T) {
	for name, q := range map[string]QueryFunc{
		"empty data":   func(context.Context) (*Response, error) { return &Response{Data: []Category{}}, nil },
		"nil data":     func(context.Context) (*Response, error) { return &Response{}, nil },
		"nil response": func(context.Context) (*Response, error) { return nil, nil },
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			result := FromQuery(logContext(&buf), q)
			assert.NotNil(t, result)
			assert.Empty(t, result)
			assert.NotContains(t, buf.String(), "Error building category tree")
		})
	}
}

func TestFromQueryNilFunc(t *testing.T) {
	var buf bytes.Buffer
	assert.Empty(t, FromQuery(logContext(&buf), nil))
	assert.Contains(t, buf.String(), "no query function")
}

func TestFromQueryCallsOnce(t *testing.T) {
	calls := 0
	q := func(context.Context) (*Response, error) {
		calls++
		return nil, errors.New("fail")
	}
	FromQuery(context.Background(), q)
	assert.Equal(t, 1, calls)
}

func TestFromQueryPassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "tenant-a")

	var seen any
	q := func(ctx context.Context) (*Response, error) {
		seen = ctx.Value(key{})
		return &Response{Data: flat("1")}, nil
	}
	FromQuery(ctx, q)
	assert.Equal(t, "tenant-a", seen)
}

func TestFromQueryUsesBuilderPolicy(t *testing.T) {
	b := NewBuilder(WithPolicy(Policy{HomeLimit: 1, DefaultHome: 2}))
	q := func(context.Context) (*Response, error) {
		return &Response{Data: flat("1", "2", "3")}, nil
	}
	assert.Equal(t, []bool{true, true, false}, flags(b.FromQuery(context.Background(), q)))
}

type recordingHooks struct {
	observability.NoopQueryHooks
	observability.NoopBuildHooks
	started   int
	records   int
	queryErr  error
	buildStat *observability.BuildStats
}

func (h *recordingHooks) OnQueryStart(context.Context) { h.started++ }

func (h *recordingHooks) OnQueryComplete(_ context.Context, records int, _ time.Duration, err error) {
	h.records = records
	h.queryErr = err
}

func (h *recordingHooks) OnBuildComplete(_ context.Context, s observability.BuildStats) {
	h.buildStat = &s
}

func TestFromQueryReportsHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()

	h := &recordingHooks{}
	observability.SetQueryHooks(h)
	observability.SetBuildHooks(h)

	data := flat("1", "2", "3", "4", "5", "6")
	data[0].Children = flat("1")
	FromQuery(context.Background(), func(context.Context) (*Response, error) {
		return &Response{Data: data}, nil
	})

	assert.Equal(t, 1, h.started)
	assert.Equal(t, 6, h.records)
	assert.NoError(t, h.queryErr)
	require.NotNil(t, h.buildStat)
	assert.Equal(t, 6, h.buildStat.TopLevel)
	assert.Equal(t, 7, h.buildStat.Total)
	assert.Equal(t, 3, h.buildStat.Home)

	h.buildStat = nil
	FromQuery(context.Background(), func(context.Context) (*Response, error) {
		panic("boom")
	})
	assert.Error(t, h.queryErr)
	assert.Nil(t, h.buildStat)
}

func TestLoggerFromContextDefault(t *testing.T) {
	assert.Same(t, log.Default(), LoggerFromContext(context.Background()))
}
