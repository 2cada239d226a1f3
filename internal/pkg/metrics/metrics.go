package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tokengate"

type chainMetrics struct {
	calls   *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

type discountMetrics struct {
	applies       *prometheus.CounterVec
	verifications *prometheus.CounterVec
	ruleOutcomes  *prometheus.CounterVec
}

type httpMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

var (
	chainOnce sync.Once
	chainReg  *chainMetrics

	discountOnce sync.Once
	discountReg  *discountMetrics

	httpOnce sync.Once
	httpReg  *httpMetrics
)

// Chain returns the lazily registered oracle call metrics.
func Chain() *chainMetrics {
	chainOnce.Do(func() {
		chainReg = &chainMetrics{
			calls: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "chain",
				Name:      "calls_total",
				Help:      "Token contract calls segmented by chain, method and outcome.",
			}, []string{"chain_id", "method", "outcome"}),
			latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "chain",
				Name:      "call_duration_seconds",
				Help:      "Latency of token contract calls.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"chain_id", "method"}),
		}
		prometheus.MustRegister(chainReg.calls, chainReg.latency)
	})
	return chainReg
}

func (m *chainMetrics) Observe(chainID int64, method string, started time.Time, err error) {
	if m == nil {
		return
	}
	id := strconv.FormatInt(chainID, 10)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.calls.WithLabelValues(id, method, outcome).Inc()
	m.latency.WithLabelValues(id, method).Observe(time.Since(started).Seconds())
}

// Discount returns the lazily registered verification and issuance metrics.
func Discount() *discountMetrics {
	discountOnce.Do(func() {
		discountReg = &discountMetrics{
			applies: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "discount",
				Name:      "apply_total",
				Help:      "Discount apply attempts by outcome.",
			}, []string{"outcome"}),
			verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "session",
				Name:      "verifications_total",
				Help:      "Signature verification attempts by resulting status.",
			}, []string{"status"}),
			ruleOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "eligibility",
				Name:      "rule_outcomes_total",
				Help:      "Per-rule eligibility results (eligible, ineligible, skipped).",
			}, []string{"outcome"}),
		}
		prometheus.MustRegister(discountReg.applies, discountReg.verifications, discountReg.ruleOutcomes)
	})
	return discountReg
}

func (m *discountMetrics) Apply(outcome string) {
	if m == nil {
		return
	}
	m.applies.WithLabelValues(outcome).Inc()
}

func (m *discountMetrics) Verification(status string) {
	if m == nil {
		return
	}
	m.verifications.WithLabelValues(status).Inc()
}

func (m *discountMetrics) RuleOutcome(outcome string) {
	if m == nil {
		return
	}
	m.ruleOutcomes.WithLabelValues(outcome).Inc()
}

// HTTP returns the lazily registered request metrics.
func HTTP() *httpMetrics {
	httpOnce.Do(func() {
		httpReg = &httpMetrics{
			requests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by route and status code.",
			}, []string{"method", "route", "status"}),
			latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency by route.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"method", "route"}),
		}
		prometheus.MustRegister(httpReg.requests, httpReg.latency)
	})
	return httpReg
}

func (m *httpMetrics) Observe(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
