package db

import (
	"context"
	"database/sql"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fr0stylo/socialsync/internal/db/queries"
	"github.com/fr0stylo/socialsync/internal/observability"
)

// QueryLatencyStats is the running total for one named sqlc query.
type QueryLatencyStats struct {
	Name  string
	Count int
	Total time.Duration
	Max   time.Duration
}

// Mean is the average call duration.
func (s QueryLatencyStats) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

type queryTotals struct {
	mu     sync.Mutex
	byName map[string]*QueryLatencyStats
}

func (t *queryTotals) add(name string, elapsed time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.byName == nil {
		t.byName = make(map[string]*QueryLatencyStats)
	}
	stat, ok := t.byName[name]
	if !ok {
		stat = &QueryLatencyStats{Name: name}
		t.byName[name] = stat
	}
	stat.Count++
	stat.Total += elapsed
	stat.Max = max(stat.Max, elapsed)
}

// QueryLatencyStats returns per-query totals, slowest worst case first.
func (c *Database) QueryLatencyStats() []QueryLatencyStats {
	if c == nil || c.totals == nil {
		return nil
	}
	c.totals.mu.Lock()
	defer c.totals.mu.Unlock()

	out := make([]QueryLatencyStats, 0, len(c.totals.byName))
	for _, stat := range c.totals.byName {
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Max == out[j].Max {
			return out[i].Name < out[j].Name
		}
		return out[i].Max > out[j].Max
	})
	return out
}

// LogQueryLatency writes the current latency summary.
func (c *Database) LogQueryLatency(log *slog.Logger) {
	if log == nil {
		return
	}
	for _, stat := range c.QueryLatencyStats() {
		log.Info("db query latency", "query", stat.Name, "count", stat.Count, "mean", stat.Mean(), "max", stat.Max)
	}
}

// tracedDBTX wraps sqlc's DBTX with a span and a latency sample per call.
type tracedDBTX struct {
	inner  queries.DBTX
	totals *queryTotals
}

func newTracedDBTX(inner queries.DBTX, totals *queryTotals) queries.DBTX {
	return &tracedDBTX{inner: inner, totals: totals}
}

// begin opens the span for one statement; the returned func closes it.
func (d *tracedDBTX) begin(ctx context.Context, query, op string) (context.Context, func(error)) {
	name := queryName(query)
	ctx, span := observability.StartDBSpan(ctx, name, op)
	started := time.Now()
	return ctx, func(err error) {
		d.totals.add(name, time.Since(started))
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}
}

func (d *tracedDBTX) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	ctx, done := d.begin(ctx, query, "exec")
	result, err := d.inner.ExecContext(ctx, query, args...)
	done(err)
	return result, err
}

func (d *tracedDBTX) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	ctx, done := d.begin(ctx, query, "prepare")
	stmt, err := d.inner.PrepareContext(ctx, query)
	done(err)
	return stmt, err
}

func (d *tracedDBTX) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	ctx, done := d.begin(ctx, query, "query")
	rows, err := d.inner.QueryContext(ctx, query, args...)
	done(err)
	return rows, err
}

// QueryRowContext defers errors to Scan, so only dispatch is measured.
func (d *tracedDBTX) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	ctx, done := d.begin(ctx, query, "query_row")
	row := d.inner.QueryRowContext(ctx, query, args...)
	done(nil)
	return row
}

// queryName reads the "-- name: X :kind" header sqlc puts on every query.
func queryName(query string) string {
	header, _, _ := strings.Cut(strings.TrimSpace(query), "\n")
	name, ok := strings.CutPrefix(strings.TrimSpace(header), "-- name:")
	if !ok {
		return "unknown"
	}
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "unknown"
	}
	return fields[0]
}
