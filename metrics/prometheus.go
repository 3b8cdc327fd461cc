package metrics

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bitcoinrpc"

// CallObserver counts RPC calls and times them, labelled by method and
// outcome. Its ObserveCall signature matches what the client expects from
// an observability hook.
type CallObserver struct {
	calls     *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewCallObserver builds the call instruments and registers them with the
// given registerer, or the default one when nil.
func NewCallObserver(registerer prometheus.Registerer) (*CallObserver, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	o := &CallObserver{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calls_total",
				Help:      "Number of RPC calls, by method and outcome",
			},
			[]string{"method", "outcome"},
		),
		durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "call_duration_seconds",
				Help:      "Duration of RPC calls, by method",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}

	for _, col := range []prometheus.Collector{o.calls, o.durations} {
		if err := registerer.Register(col); err != nil {
			return nil, fmt.Errorf("couldn't register the call instruments: %w", err)
		}
	}
	return o, nil
}

// ObserveCall records one completed call.
func (o *CallObserver) ObserveCall(method, outcome string, duration time.Duration) {
	if o == nil {
		return
	}
	o.calls.WithLabelValues(method, outcome).Inc()
	o.durations.WithLabelValues(method).Observe(duration.Seconds())
}

// Start exposes the default registry over HTTP (given config).
func Start(conf Config) {
	if !conf.Enabled {
		return
	}
	http.Handle(conf.Path, promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", conf.Port), nil))
	}()
}
