// Package metrics exposes process counters in Prometheus text format.
package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	batchesProcessedTotal atomic.Uint64
	resumesProcessedTotal atomic.Uint64
	emailsSentTotal       atomic.Uint64
	emailsFailedTotal     atomic.Uint64

	batchDuration = newHistogram([]float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000})
)

// IncBatchesProcessed increments the processed-batches counter.
func IncBatchesProcessed() {
	batchesProcessedTotal.Add(1)
}

// AddResumesProcessed adds n to the processed-resumes counter.
func AddResumesProcessed(n int) {
	if n > 0 {
		resumesProcessedTotal.Add(uint64(n))
	}
}

// IncEmailsSent increments the delivered-emails counter.
func IncEmailsSent() {
	emailsSentTotal.Add(1)
}

// IncEmailsFailed increments the failed-emails counter.
func IncEmailsFailed() {
	emailsFailedTotal.Add(1)
}

// ObserveBatchDurationMs records one batch processing duration in milliseconds.
func ObserveBatchDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	batchDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders all metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "batches_processed_total", "Total resume batches processed", batchesProcessedTotal.Load())
	writeCounter(&buf, "resumes_processed_total", "Total resumes processed", resumesProcessedTotal.Load())
	writeCounter(&buf, "emails_sent_total", "Total notification emails delivered", emailsSentTotal.Load())
	writeCounter(&buf, "emails_failed_total", "Total notification emails that failed to send", emailsFailedTotal.Load())
	writeHistogram(&buf, "batch_processing_duration_ms", "Batch processing duration in milliseconds", batchDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu     sync.Mutex
	bounds []float64
	counts []uint64
	sum    float64
	count  uint64
}

type histogramSnapshot struct {
	bounds []float64
	counts []uint64
	sum    float64
	count  uint64
}

func newHistogram(bounds []float64) *histogram {
	return &histogram{
		bounds: bounds,
		counts: make([]uint64, len(bounds)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.bounds {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		bounds: append([]float64(nil), h.bounds...),
		counts: append([]uint64(nil), h.counts...),
		sum:    h.sum,
		count:  h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.bounds {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
