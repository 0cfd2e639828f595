package database

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"journal/internal/observability"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestQueryOperationAndTable(t *testing.T) {
	tests := []struct {
		sql       string
		operation string
		table     string
	}{
		{`SELECT * FROM "articles" WHERE slug = $1`, "select", "articles"},
		{`SELECT count(*) FROM "articles"`, "select", "articles"},
		{`INSERT INTO "users" ("name") VALUES ($1)`, "insert", `users`},
		{`UPDATE "site_settings" SET "site_name"=$1`, "update", "site_settings"},
		{`DELETE FROM "media" WHERE id = $1`, "delete", "media"},
		{`BEGIN`, "other", "unknown"},
		{``, "other", "unknown"},
	}
	for _, tt := range tests {
		op, table := queryOperationAndTable(tt.sql)
		assert.Equal(t, tt.operation, op, tt.sql)
		assert.Equal(t, tt.table, table, tt.sql)
	}
}

func TestGormLoggerTrace_RecordsQueryLatency(t *testing.T) {
	l := &CustomGormLogger{
		logger:  slog.Default(),
		metrics: observability.NewDatabaseMetrics(nil),
		Config:  logger.Config{LogLevel: logger.Silent},
	}

	before := testutil.CollectAndCount(observability.DatabaseQueryLatency)
	l.Trace(context.Background(), time.Now().Add(-5*time.Millisecond), func() (string, int64) {
		return `SELECT * FROM "gorm_trace_sample_table"`, 1
	}, nil)
	after := testutil.CollectAndCount(observability.DatabaseQueryLatency)

	// A fresh operation/table pair shows up even with logging silenced.
	assert.Greater(t, after, before)
}
