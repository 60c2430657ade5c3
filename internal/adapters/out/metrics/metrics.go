// Package metrics exposes Prometheus collectors for the reconciliation job,
// the alerting supervisor and the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "visadesk"

type Recorder struct {
	registry *prometheus.Registry

	jobRuns             *prometheus.CounterVec
	jobDuration         *prometheus.HistogramVec
	retiredOrders       prometheus.Counter
	retiredApplications prometheus.Counter
	alerts              *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
}

// NewRecorder registers all collectors on a private registry together with
// the Go runtime and process collectors.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		jobRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_runs_total",
			Help:      "Scheduled job runs by job and outcome.",
		}, []string{"job", "outcome"}),
		jobDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "job_duration_seconds",
			Help:      "Duration of scheduled job runs.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"job"}),
		retiredOrders: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retired_orders_total",
			Help:      "Orders moved from complete to past.",
		}),
		retiredApplications: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retired_applications_total",
			Help:      "Applications moved to past by the reconciliation job.",
		}),
		alerts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_total",
			Help:      "Errors reported to the supervisor by source and delivery result.",
		}, []string{"source", "result"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (r *Recorder) JobFinished(job string, took time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	r.jobRuns.WithLabelValues(job, outcome).Inc()
	r.jobDuration.WithLabelValues(job).Observe(took.Seconds())
}

func (r *Recorder) Retired(orders, applications int) {
	r.retiredOrders.Add(float64(orders))
	r.retiredApplications.Add(float64(applications))
}

// Alert counts a reported error. result is one of "sent", "failed" or
// "dropped".
func (r *Recorder) Alert(source, result string) {
	r.alerts.WithLabelValues(source, result).Inc()
}

func (r *Recorder) HTTPRequest(method, route string, code int, took time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(took.Seconds())
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
