package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/algoforge/katarun/internal/logging"
)

// Metrics collects Prometheus metrics for suite execution. Each instance
// owns its own registry so repeated construction never double-registers.
type Metrics struct {
	registry      *prometheus.Registry
	handler       http.Handler
	casesTotal    *prometheus.CounterVec
	caseDuration  *prometheus.HistogramVec
	suiteDuration prometheus.Gauge
}

// NewMetrics creates the metric collectors and the HTTP handler exposing them.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		registry: registry,
		casesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "katarun_cases_total",
			Help: "Number of executed cases by exercise and outcome.",
		}, []string{"exercise", "outcome"}),
		caseDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "katarun_case_duration_seconds",
			Help:    "Wall-clock duration of individual cases.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"exercise"}),
		suiteDuration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "katarun_suite_duration_seconds",
			Help: "Wall-clock duration of the last suite run.",
		}),
	}

	registry.MustRegister(collectors.NewGoCollector())
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// ObserveCase records one finished case. It satisfies the harness recorder
// contract.
func (m *Metrics) ObserveCase(exercise string, passed bool, duration time.Duration) {
	outcome := "pass"
	if !passed {
		outcome = "fail"
	}
	m.casesTotal.WithLabelValues(exercise, outcome).Inc()
	m.caseDuration.WithLabelValues(exercise).Observe(duration.Seconds())
}

// ObserveSuite records the total run duration.
func (m *Metrics) ObserveSuite(duration time.Duration) {
	m.suiteDuration.Set(duration.Seconds())
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// Serve exposes /metrics on addr until ctx is canceled. It blocks; run it
// in its own goroutine alongside the suite.
func (m *Metrics) Serve(ctx context.Context, addr string, logger logging.Logger) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", m.WritePrometheus)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("metrics listener started", logging.String("addr", addr))
		errChan <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errChan
		return nil
	case err := <-errChan:
		if err != nil && err != http.ErrServerClosed {
			logger.Error("metrics listener failed", logging.Err(err))
			return err
		}
		return nil
	}
}
