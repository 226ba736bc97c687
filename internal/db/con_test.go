package db

import (
	"context"
	"errors"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fr0stylo/socialsync/internal/db/queries"
)

func TestNewAppliesMigrationsAndTracksLatency(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database, err := New(filepath.Join(t.TempDir(), "nested", "migrate-test"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if _, err := database.CreateStore(ctx, queries.CreateStoreParams{ID: "store-1", TenantID: "tenant-1", Name: "Main", DefaultCurrency: "UGX"}); err != nil {
		t.Fatalf("create store: %v", err)
	}
	store, err := database.GetStoreByID(ctx, "store-1")
	if err != nil {
		t.Fatalf("get store: %v", err)
	}
	if store.DefaultCurrency != "UGX" || store.CreatedAt == "" {
		t.Fatalf("unexpected store row: %+v", store)
	}

	stats := database.QueryLatencyStats()
	names := map[string]bool{}
	for _, stat := range stats {
		names[stat.Name] = true
		if stat.Count == 0 || stat.Mean() > stat.Max {
			t.Fatalf("unexpected totals for %s: %+v", stat.Name, stat)
		}
	}
	if !names["CreateStore"] || !names["GetStoreByID"] {
		t.Fatalf("expected named query stats, got %+v", stats)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database, err := New(filepath.Join(t.TempDir(), "tx-test"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	err = database.WithTx(ctx, func(q *queries.Queries) error {
		if _, err := q.CreateStore(ctx, queries.CreateStoreParams{ID: "store-1", TenantID: "tenant-1"}); err != nil {
			return err
		}
		_, err := q.CreateStore(ctx, queries.CreateStoreParams{ID: "store-1", TenantID: "tenant-1"})
		return err
	})
	if err == nil {
		t.Fatal("expected duplicate primary key error")
	}

	if _, err := database.GetStoreByID(ctx, "store-1"); err == nil {
		t.Fatal("expected store insert to be rolled back")
	}
}

func TestWithTxKeepsCallbackErrorWhenContextCancelled(t *testing.T) {
	t.Parallel()

	database, err := New(filepath.Join(t.TempDir(), "tx-cancel-test"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	errStop := errors.New("stop")
	ctx, cancel := context.WithCancel(context.Background())
	err = database.WithTx(ctx, func(q *queries.Queries) error {
		if _, err := q.CreateStore(ctx, queries.CreateStoreParams{ID: "store-1", TenantID: "tenant-1"}); err != nil {
			return err
		}
		cancel()
		return errStop
	})
	if !errors.Is(err, errStop) {
		t.Fatalf("expected callback error to survive rollback, got %v", err)
	}

	if _, err := database.GetStoreByID(context.Background(), "store-1"); err == nil {
		t.Fatal("expected store insert to be rolled back")
	}
}

func TestSQLiteDSNUsesImmediateTransactions(t *testing.T) {
	dsn := sqliteDSN("data/app", "&_pragma=cache_size(-2000)")
	if !strings.HasPrefix(dsn, "file:data/app.sqlite?") {
		t.Fatalf("unexpected dsn prefix: %s", dsn)
	}
	values, err := url.ParseQuery(strings.SplitN(dsn, "?", 2)[1])
	if err != nil {
		t.Fatalf("parse dsn: %v", err)
	}
	if values.Get("_txlock") != "immediate" {
		t.Fatalf("expected immediate txlock, got %q", values.Get("_txlock"))
	}
	pragmas := strings.Join(values["_pragma"], ",")
	for _, want := range []string{"foreign_keys(ON)", "busy_timeout(5000)", "cache_size(-2000)"} {
		if !strings.Contains(pragmas, want) {
			t.Fatalf("expected pragma %s in %s", want, pragmas)
		}
	}
}

func TestQueryName(t *testing.T) {
	if got := queryName("-- name: CreateStore :one\nINSERT INTO stores"); got != "CreateStore" {
		t.Fatalf("expected CreateStore, got %q", got)
	}
	if got := queryName("SELECT 1"); got != "unknown" {
		t.Fatalf("expected unknown, got %q", got)
	}
}
