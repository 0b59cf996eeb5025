package main

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pressly/goose/v3"
)

func repoMigrationsDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "db", "migrations")
}

func TestCollectMigrations_StartsWithPlacesTable(t *testing.T) {
	migrations, err := goose.CollectMigrations(repoMigrationsDir(t), 0, goose.MaxVersion)
	if err != nil {
		t.Fatalf("collect migrations: %v", err)
	}
	if len(migrations) == 0 {
		t.Fatal("no migrations found")
	}

	first := migrations[0]
	if first.Version != 1 {
		t.Fatalf("first migration version = %d, want 1", first.Version)
	}
	if got := filepath.Base(first.Source); got != "00001_create_places.sql" {
		t.Fatalf("first migration = %s, want 00001_create_places.sql", got)
	}
}
