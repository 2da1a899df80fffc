package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector tracks pipeline job counters for Prometheus scraping.
type Collector struct {
	jobsSubmitted prometheus.Counter
	jobsCompleted prometheus.Counter
	jobsFailed    prometheus.Counter
	jobsRunning   prometheus.Gauge
	jobDuration   prometheus.Histogram
}

// NewCollector registers pipeline metrics on the given registerer.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		jobsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "studypipe_jobs_submitted_total",
			Help: "Total number of submitted jobs.",
		}),
		jobsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "studypipe_jobs_completed_total",
			Help: "Total number of jobs that reached completed state.",
		}),
		jobsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "studypipe_jobs_failed_total",
			Help: "Total number of jobs that reached error state.",
		}),
		jobsRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "studypipe_jobs_running",
			Help: "Number of jobs currently in a non-terminal state.",
		}),
		jobDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "studypipe_job_duration_seconds",
			Help:    "Wall-clock duration of finished jobs.",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200},
		}),
	}
	reg.MustRegister(c.jobsSubmitted, c.jobsCompleted, c.jobsFailed, c.jobsRunning, c.jobDuration)
	return c
}

// RecordSubmit counts a newly submitted job.
func (c *Collector) RecordSubmit() {
	c.jobsSubmitted.Inc()
	c.jobsRunning.Inc()
}

// RecordCompleted counts a successful job and its duration.
func (c *Collector) RecordCompleted(d time.Duration) {
	c.jobsCompleted.Inc()
	c.jobsRunning.Dec()
	c.jobDuration.Observe(d.Seconds())
}

// RecordFailed counts a failed job and its duration.
func (c *Collector) RecordFailed(d time.Duration) {
	c.jobsFailed.Inc()
	c.jobsRunning.Dec()
	c.jobDuration.Observe(d.Seconds())
}
