package observability

import (
	"strconv"
	"time"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sparelab"

// Metrics records HTTP traffic and job-card lifecycle events. A nil *Metrics
// is a valid no-op recorder.
type Metrics struct {
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	jobCardsCreated   prometheus.Counter
	statusUpdates     *prometheus.CounterVec
	partItemsDropped  prometheus.Counter
	jobCardsAmountSum prometheus.Counter
}

var _ interfaces.IJobCardEvents = (*Metrics)(nil)

// NewMetrics registers the collectors on reg. A nil registerer yields a
// recorder that drops everything.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		jobCardsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobcards_created_total",
			Help:      "Job cards created.",
		}),
		statusUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobcard_status_updates_total",
			Help:      "Job card status updates by target status.",
		}, []string{"status"}),
		partItemsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobcard_part_items_dropped_total",
			Help:      "Part line items dropped because the part id did not resolve.",
		}),
		jobCardsAmountSum: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobcards_total_amount_sum",
			Help:      "Sum of totalAmount over created job cards.",
		}),
	}
	reg.MustRegister(m.httpRequests, m.httpDuration, m.jobCardsCreated, m.statusUpdates, m.partItemsDropped, m.jobCardsAmountSum)
	return m
}

func (m *Metrics) JobCardCreated(card entities.JobCard) {
	if m == nil {
		return
	}
	m.jobCardsCreated.Inc()
	if card.TotalAmount > 0 {
		m.jobCardsAmountSum.Add(card.TotalAmount)
	}
}

func (m *Metrics) StatusUpdated(_, to entities.JobCardStatus) {
	if m == nil {
		return
	}
	m.statusUpdates.WithLabelValues(to.String()).Inc()
}

func (m *Metrics) PartItemsDropped(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.partItemsDropped.Add(float64(count))
}

// GinMiddleware observes every request under its route template, so path
// parameters do not explode label cardinality.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
