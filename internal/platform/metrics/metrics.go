// Package metrics exposes the bot's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jupiter"

type Metrics struct {
	registry *prometheus.Registry

	giveawaysCreated prometheus.Counter
	giveawaysClosed  *prometheus.CounterVec
	joins            *prometheus.CounterVec
	rerolls          *prometheus.CounterVec
	sweepFailures    prometheus.Counter
	slotConsumes     *prometheus.CounterVec
	slotReleases     prometheus.Counter
	auctionsPosted   *prometheus.CounterVec
	auctionsClosed   *prometheus.CounterVec
	messages         prometheus.Counter
	dispatchDuration *prometheus.HistogramVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		giveawaysCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "giveaway", Name: "created_total",
			Help: "Giveaways created.",
		}),
		giveawaysClosed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "giveaway", Name: "closed_total",
			Help: "Giveaways closed, by outcome.",
		}, []string{"outcome"}),
		joins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "giveaway", Name: "joins_total",
			Help: "Join attempts, by result.",
		}, []string{"result"}),
		rerolls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "giveaway", Name: "rerolls_total",
			Help: "Rerolls, by kind.",
		}, []string{"kind"}),
		sweepFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "giveaway", Name: "sweep_failures_total",
			Help: "Giveaways the sweep failed to close.",
		}),
		slotConsumes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "slots", Name: "consumes_total",
			Help: "Premium slot consume attempts, by result.",
		}, []string{"result"}),
		slotReleases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "slots", Name: "releases_total",
			Help: "Premium slot releases.",
		}),
		auctionsPosted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "auction", Name: "posted_total",
			Help: "Auctions posted.",
		}, []string{"premium"}),
		auctionsClosed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "auction", Name: "closed_total",
			Help: "Auctions closed, by final status.",
		}, []string{"status"}),
		messages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "stats", Name: "messages_total",
			Help: "Member messages counted.",
		}),
		dispatchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "dispatch", Name: "duration_seconds",
			Help:    "Command execution time, by command and error code.",
			Buckets: prometheus.DefBuckets,
		}, []string{"command", "code"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.giveawaysCreated,
		m.giveawaysClosed,
		m.joins,
		m.rerolls,
		m.sweepFailures,
		m.slotConsumes,
		m.slotReleases,
		m.auctionsPosted,
		m.auctionsClosed,
		m.messages,
		m.dispatchDuration,
	)
	return m
}

// Registry is the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) GiveawayCreated() {
	if m == nil {
		return
	}
	m.giveawaysCreated.Inc()
}

// GiveawayClosed counts a close. empty is true when nobody joined.
func (m *Metrics) GiveawayClosed(empty bool) {
	if m == nil {
		return
	}
	outcome := "winners"
	if empty {
		outcome = "no_participants"
	}
	m.giveawaysClosed.WithLabelValues(outcome).Inc()
}

// Join counts a join attempt. reason is empty for admitted joins.
func (m *Metrics) Join(reason string) {
	if m == nil {
		return
	}
	if reason == "" {
		reason = "admitted"
	}
	m.joins.WithLabelValues(reason).Inc()
}

func (m *Metrics) Reroll(targeted bool) {
	if m == nil {
		return
	}
	kind := "all"
	if targeted {
		kind = "specific"
	}
	m.rerolls.WithLabelValues(kind).Inc()
}

func (m *Metrics) SweepFailure() {
	if m == nil {
		return
	}
	m.sweepFailures.Inc()
}

func (m *Metrics) SlotConsume(ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "denied"
	}
	m.slotConsumes.WithLabelValues(result).Inc()
}

func (m *Metrics) SlotRelease() {
	if m == nil {
		return
	}
	m.slotReleases.Inc()
}

func (m *Metrics) AuctionPosted(premium bool) {
	if m == nil {
		return
	}
	m.auctionsPosted.WithLabelValues(strconv.FormatBool(premium)).Inc()
}

func (m *Metrics) AuctionClosed(status string) {
	if m == nil {
		return
	}
	m.auctionsClosed.WithLabelValues(status).Inc()
}

func (m *Metrics) Message() {
	if m == nil {
		return
	}
	m.messages.Inc()
}

// ObserveDispatch records a command's duration. code is empty on success.
func (m *Metrics) ObserveDispatch(command, code string, d time.Duration) {
	if m == nil {
		return
	}
	if code == "" {
		code = "OK"
	}
	m.dispatchDuration.WithLabelValues(command, code).Observe(d.Seconds())
}
