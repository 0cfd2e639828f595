package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "journal_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "journal_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// MediaUploads counts media upload attempts by outcome.
	MediaUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "journal_media_uploads_total",
		Help: "Total number of media upload attempts by outcome",
	}, []string{"status"})

	// MediaUploadBytes records the size of accepted uploads.
	MediaUploadBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "journal_media_upload_bytes",
		Help:    "Size in bytes of accepted media uploads",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	})

	// StorageOrphanedObjects counts objects left in storage after a failed
	// metadata insert. They are logged, not collected.
	StorageOrphanedObjects = promauto.NewCounter(prometheus.CounterOpts{
		Name: "journal_storage_orphaned_objects_total",
		Help: "Total number of storage objects orphaned by failed metadata writes",
	})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct {
	db *gorm.DB
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(db *gorm.DB) *DatabaseMetrics {
	return &DatabaseMetrics{db: db}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}

// RecordUpload increments the upload counter for the outcome and records the
// accepted payload size.
func RecordUpload(status string, size int64) {
	MediaUploads.WithLabelValues(status).Inc()
	if status == "success" && size > 0 {
		MediaUploadBytes.Observe(float64(size))
	}
}
